package models

// DashboardSummary is the top-of-dashboard card data.
type DashboardSummary struct {
	Stats               BookingStats `json:"stats"`
	UnreadNotifications int          `json:"unreadNotifications"`
	RecentBookings      []Booking    `json:"recentBookings"`
}
