package notification

import (
	"testing"
	"time"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.AddDate(0, 0, -2), "2d ago"},
	}

	for _, tt := range tests {
		if got := TimeAgo(tt.at, now); got != tt.want {
			t.Errorf("TimeAgo(%v) = %q, want %q", tt.at, got, tt.want)
		}
	}
}
