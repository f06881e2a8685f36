package models

// Area represents a physical facility with courts, equipment inventory,
// manager payment details, and its currently reserved time slots.
type Area struct {
	ID           string      `bson:"id" json:"id"`
	AreaName     string      `bson:"areaName" json:"areaName"`
	OpeningTime  string      `bson:"openingTime" json:"openingTime"` // e.g. "6:00 AM"
	ClosingTime  string      `bson:"closingTime" json:"closingTime"` // e.g. "9:00 PM"
	AreaImageURL string      `bson:"areaImageUrl,omitempty" json:"areaImageUrl,omitempty"`
	Lat          float64     `bson:"lat" json:"lat"`
	Lng          float64     `bson:"lng" json:"lng"`
	Courts       []Court     `bson:"courts" json:"courts"`
	Equipments   []Equipment `bson:"equipments,omitempty" json:"equipments,omitempty"`
	Manager      ManagerInfo `bson:"manager" json:"manager"`
	// Bookings holds reserved slots denormalized from confirmed bookings so a
	// single area read is enough to filter availability.
	Bookings []DateSlots `bson:"bookings,omitempty" json:"bookings"`
}

// Court is a bookable court inside an area.
type Court struct {
	CourtID       string `bson:"courtId" json:"courtId"`
	CourtName     string `bson:"courtName" json:"courtName"`
	Status        string `bson:"status" json:"status"` // e.g. "open", "maintenance"
	Rate          int    `bson:"rate" json:"rate"`     // pesos per hour
	CourtImageURL string `bson:"courtImageUrl,omitempty" json:"courtImageUrl,omitempty"`
}

// Equipment is a rentable item with a unit price and available stock.
type Equipment struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Price    int    `bson:"price" json:"price"`
	Quantity int    `bson:"quantity" json:"quantity"` // available stock
}

// ManagerInfo holds the facility manager's GCash payment details shown to the
// user while a booking is pending manual payment.
type ManagerInfo struct {
	FirstName   string `bson:"firstName" json:"firstName"`
	LastName    string `bson:"lastName" json:"lastName"`
	GcashNumber string `bson:"gcashNumber" json:"gcashNumber"`
	QRCode      string `bson:"qrCode,omitempty" json:"qrCode,omitempty"`
}

// DateSlots groups time-slot labels reserved or selected for one calendar date.
type DateSlots struct {
	Date string   `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time []string `bson:"time" json:"time"` // e.g. "06:00 AM - 07:00 AM"
}
