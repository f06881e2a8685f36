package handlers

import (
	"pickbook/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	User       *UserHandler
	Area       *AreaHandler
	Booking    *BookingHandler
	Dashboard  *DashboardHandler
	Directions *DirectionsHandler
	Storage    *StorageHandler
}
