package booking

import (
	"reflect"
	"testing"
)

func TestGenerateTimeSlots(t *testing.T) {
	tests := []struct {
		name    string
		opening string
		closing string
		want    int
		first   string
		last    string
	}{
		{
			name:    "standard day",
			opening: "6:00 AM",
			closing: "9:00 PM",
			want:    15,
			first:   "06:00 AM - 07:00 AM",
			last:    "08:00 PM - 09:00 PM",
		},
		{
			name:    "wraps past midnight",
			opening: "10:00 PM",
			closing: "2:00 AM",
			want:    4,
			first:   "10:00 PM - 11:00 PM",
			last:    "01:00 AM - 02:00 AM",
		},
		{
			name:    "noon boundary",
			opening: "11:00 AM",
			closing: "1:00 PM",
			want:    2,
			first:   "11:00 AM - 12:00 PM",
			last:    "12:00 PM - 01:00 PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateTimeSlots(tt.opening, tt.closing)
			if err != nil {
				t.Fatalf("GenerateTimeSlots(%q, %q) error: %v", tt.opening, tt.closing, err)
			}
			if len(got) != tt.want {
				t.Fatalf("got %d slots, want %d: %v", len(got), tt.want, got)
			}
			if got[0] != tt.first {
				t.Errorf("first slot = %q, want %q", got[0], tt.first)
			}
			if got[len(got)-1] != tt.last {
				t.Errorf("last slot = %q, want %q", got[len(got)-1], tt.last)
			}
		})
	}
}

func TestGenerateTimeSlotsEqualHoursYieldsNone(t *testing.T) {
	got, err := GenerateTimeSlots("8:00 AM", "8:00 AM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no slots, got %v", got)
	}
}

func TestGenerateTimeSlotsInvalidInput(t *testing.T) {
	for _, bad := range []string{"", "25:00 AM", "6:00", "six AM", "6:00 XM", "6 AM", "6:99 AM", "6:-1 AM"} {
		if _, err := GenerateTimeSlots(bad, "9:00 PM"); err == nil {
			t.Errorf("expected error for opening time %q", bad)
		}
		if _, err := GenerateTimeSlots("6:00 AM", bad); err == nil {
			t.Errorf("expected error for closing time %q", bad)
		}
	}
}

func TestGenerateTimeSlotsDeterministic(t *testing.T) {
	a, _ := GenerateTimeSlots("6:00 AM", "9:00 PM")
	b, _ := GenerateTimeSlots("6:00 AM", "9:00 PM")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same operating hours produced different grids: %v vs %v", a, b)
	}
}
