package models

import "time"

// Booking statuses.
const (
	BookingStatusPendingPayment = "pending_payment"
	BookingStatusApproved       = "approved"
	BookingStatusRejected       = "rejected"
)

// Booking represents a persisted reservation record.
type Booking struct {
	ID          string            `bson:"id" json:"id"` // server-assigned UUID
	UserID      string            `bson:"user_id" json:"userId"`
	FirstName   string            `bson:"first_name" json:"firstName"`
	LastName    string            `bson:"last_name" json:"lastName"`
	Email       string            `bson:"email" json:"email"`
	GcashNumber string            `bson:"gcash_number" json:"gcashNumber"`
	AreaID      string            `bson:"area_id" json:"areaId"`
	AreaName    string            `bson:"area_name" json:"areaName"`
	CourtID     string            `bson:"court_id" json:"courtId"`
	CourtName   string            `bson:"court_name" json:"courtName"`
	Slots       []DateSlots       `bson:"slots" json:"slots"`
	Amount      int               `bson:"amount" json:"amount"`
	Equipments  []RentedEquipment `bson:"equipments,omitempty" json:"rentedEquipments,omitempty"`
	IsApproved  *bool             `bson:"is_approved,omitempty" json:"isApproved"` // nil while payment is unverified
	Status      string            `bson:"status" json:"status"`
	CreatedAt   time.Time         `bson:"created_at" json:"createdAt"`
}

// RentedEquipment is one equipment line item on a booking.
type RentedEquipment struct {
	EquipmentID string `bson:"equipment_id" json:"equipmentId"`
	Name        string `bson:"name" json:"name"`
	Quantity    int    `bson:"quantity" json:"quantity"`
	Price       int    `bson:"price" json:"price"` // unit price at booking time
}

// BookingStats summarizes a user's bookings for the dashboard.
type BookingStats struct {
	TotalBookings  int `bson:"totalBookings" json:"totalBookings"`
	PendingPayment int `bson:"pendingPayment" json:"pendingPayment"`
	Approved       int `bson:"approved" json:"approved"`
	Upcoming       int `bson:"upcoming" json:"upcoming"`
}
