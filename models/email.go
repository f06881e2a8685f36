package models

// BookingEmailPayload is the queued payload for a booking-details email.
type BookingEmailPayload struct {
	BookingID string `json:"bookingId"`
	Email     string `json:"email"`
}
