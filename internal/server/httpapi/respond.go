package httpapi

import "github.com/labstack/echo/v4"

// Stable client-facing messages. Several internally distinct failures
// deliberately share one message so the response does not reveal which
// check failed.
const (
	msgUserExists         = "User already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgNoToken            = "Access denied. No token provided."
	msgInvalidToken       = "Invalid token."
	msgAdminsOnly         = "Access denied. Admins only."
	msgServerError        = "Server error"
	msgUserNotFound       = "User not found"
	msgReservationMissing = "Reservation not found"
)

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"message": msg})
}
