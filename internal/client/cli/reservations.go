package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/mbelyaev/bookatable/internal/client/api"
)

// uploadToPresignedURL is a test seam for api.UploadToPresignedURL.
var uploadToPresignedURL = api.UploadToPresignedURL

// Restaurants lists restaurants, optionally filtered by a search term.
func (a *App) Restaurants(ctx context.Context, search string) {

	list, err := a.api.Restaurants(ctx, search)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if len(list) == 0 {
		fmt.Println("No restaurants found.")
		return
	}

	for _, r := range list {
		fmt.Printf("%s  %s (%s)\n", r.ID, r.Name, r.Location)
	}
}

// Reserve prompts for booking details and creates a reservation.
func (a *App) Reserve(ctx context.Context) {

	restaurantID, err := GetSimpleText(a.reader, "Restaurant id", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	date, err := GetSimpleText(a.reader, "Date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	timeOfDay, err := GetSimpleText(a.reader, "Time (HH:MM)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	peopleText, err := GetSimpleText(a.reader, "Party size", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	people, err := strconv.Atoi(peopleText)
	if err != nil {
		fmt.Println("Party size must be a number")
		return
	}

	if err := a.api.CreateReservation(ctx, restaurantID, date, timeOfDay, people); err != nil {
		fmt.Println("Reservation failed:", err)
		return
	}

	fmt.Println("Reservation created.")
}

// My lists the caller's reservations.
func (a *App) My(ctx context.Context) {

	list, err := a.api.MyReservations(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if len(list) == 0 {
		fmt.Println("No reservations yet.")
		return
	}

	for _, r := range list {
		fmt.Printf("%s  %s %s at %s, party of %d\n", r.ID, r.RestaurantName, r.Date, r.Time, r.PeopleCount)
	}
}

// Cancel deletes one of the caller's reservations by id.
func (a *App) Cancel(ctx context.Context, id string) {

	if err := a.api.CancelReservation(ctx, id); err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Reservation cancelled.")
}

// Photo uploads a restaurant photo through a presigned URL. Admin only.
func (a *App) Photo(ctx context.Context, restaurantID, path string) {

	file, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	url, err := a.api.PresignRestaurantPhoto(ctx, restaurantID)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if err := uploadToPresignedURL(url, file); err != nil {
		fmt.Println("Upload failed:", err)
		return
	}

	fmt.Println("Photo uploaded.")
}
