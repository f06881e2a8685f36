package models

// Booking session stages. A session moves editing -> confirming -> submitting
// -> pendingPayment; closing the pending-payment dialog deletes the session.
const (
	StageEditing        = "editing"
	StageConfirming     = "confirming"
	StageSubmitting     = "submitting"
	StagePendingPayment = "pendingPayment"
)

// BookingSession holds the in-progress reservation state between the first
// page load and the final submission. Stored in Redis, fresh per visit.
type BookingSession struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	AreaID    string `json:"areaId"`
	// Area is a snapshot taken at session start; availability is filtered
	// against its denormalized bookings list.
	Area *Area `json:"area"`

	SelectedCourtID string `json:"selectedCourtId,omitempty"`
	// SelectedDates is kept sorted ascending; keys of Slots are always a
	// subset of it.
	SelectedDates []string            `json:"selectedDates"`
	Slots         map[string][]string `json:"slots"`     // dateKey -> slot labels
	Equipments    map[string]int      `json:"equipments"` // equipmentId -> quantity

	TotalAmount int    `json:"totalAmount"`
	Stage       string `json:"stage"`
	BookingID   string `json:"bookingId,omitempty"` // set once submitted
}

// SessionAction is a tagged reducer action applied to a booking session.
type SessionAction struct {
	Type        string   `json:"type" binding:"required"` // toggleSlot | setDates | applyAllDates | selectCourt | setEquipment
	Date        string   `json:"date,omitempty"`
	Slot        string   `json:"slot,omitempty"`
	Dates       []string `json:"dates,omitempty"`
	SourceDate  string   `json:"sourceDate,omitempty"`
	CourtID     string   `json:"courtId,omitempty"`
	EquipmentID string   `json:"equipmentId,omitempty"`
	Quantity    int      `json:"quantity,omitempty"`
}

// Session action types.
const (
	ActionToggleSlot    = "toggleSlot"
	ActionSetDates      = "setDates"
	ActionApplyAllDates = "applyAllDates"
	ActionSelectCourt   = "selectCourt"
	ActionSetEquipment  = "setEquipment"
)

// ContactDetails are the user-entered contact fields bound at submission.
type ContactDetails struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	GcashNumber string `json:"gcashNumber" binding:"required"`
}

// BookingSummary is returned when a session enters the confirming stage.
type BookingSummary struct {
	AreaName    string            `json:"areaName"`
	CourtName   string            `json:"courtName"`
	CourtRate   int               `json:"courtRate"`
	TotalHours  int               `json:"totalHours"`
	TotalAmount int               `json:"totalAmount"`
	Slots       []DateSlots       `json:"dateTimeSlots"`
	Equipments  []RentedEquipment `json:"selectedEquipments,omitempty"`
	Manager     ManagerInfo       `json:"manager"`
}
