package models

// Reservation is a booking made by a user at a restaurant. Date is
// YYYY-MM-DD and Time is HH:MM, as sent by the client.
type Reservation struct {
	ID           string
	UserID       string
	RestaurantID string
	Date         string
	Time         string
	PeopleCount  int

	// Denormalized names filled in by listing queries.
	RestaurantName string
	UserName       string
}
