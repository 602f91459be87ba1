package models

// Restaurant is a bookable venue. PhotoKey is the object-storage key of the
// venue photo, empty when no photo has been uploaded.
type Restaurant struct {
	ID          string
	Name        string
	Location    string
	Description string
	PhotoKey    string
}
