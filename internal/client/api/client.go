// Package api is a thin HTTP client for the reservation backend. It keeps
// the bearer token obtained at login and attaches it to later requests.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Token returns the bearer token stored by Login, empty if not logged in.
func (c *Client) Token() string {
	return c.token
}

// User mirrors the /api/users/me response.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Restaurant mirrors a /api/restaurants list element.
type Restaurant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	PhotoKey    string `json:"photo_key"`
}

// Reservation mirrors a reservation list element.
type Reservation struct {
	ID             string `json:"id"`
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	PeopleCount    int    `json:"people_count"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// do sends a JSON request and decodes a JSON response into out (when out is
// non-nil). Non-2xx responses are turned into errors carrying the server's
// message text.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := &messageResponse{}
		if err := json.NewDecoder(resp.Body).Decode(msg); err == nil && msg.Message != "" {
			return fmt.Errorf("%s", msg.Message)
		}
		return fmt.Errorf("server answered %s", resp.Status)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/users/register", body, nil)
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}

	out := struct {
		Token string `json:"token"`
	}{}
	if err := c.do(ctx, http.MethodPost, "/api/users/login", body, &out); err != nil {
		return err
	}

	c.token = out.Token
	return nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	user := &User{}
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) Restaurants(ctx context.Context, search string) ([]Restaurant, error) {
	path := "/api/restaurants"
	if search != "" {
		path += "?search=" + search
	}

	var result []Restaurant
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) CreateReservation(ctx context.Context, restaurantID, date, timeOfDay string, peopleCount int) error {
	body := map[string]any{
		"restaurant_id": restaurantID,
		"date":          date,
		"time":          timeOfDay,
		"people_count":  peopleCount,
	}
	return c.do(ctx, http.MethodPost, "/api/reservations", body, nil)
}

func (c *Client) MyReservations(ctx context.Context) ([]Reservation, error) {
	var result []Reservation
	if err := c.do(ctx, http.MethodGet, "/api/reservations/my", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) CancelReservation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/reservations/"+id, nil, nil)
}

// PresignRestaurantPhoto asks the backend for a presigned photo upload URL.
// Requires an admin token.
func (c *Client) PresignRestaurantPhoto(ctx context.Context, restaurantID string) (string, error) {
	out := struct {
		ObjectKey string `json:"object_key"`
		UploadURL string `json:"upload_url"`
	}{}
	if err := c.do(ctx, http.MethodPut, "/api/admin/restaurants/"+restaurantID+"/photo", nil, &out); err != nil {
		return "", err
	}
	return out.UploadURL, nil
}

// UploadToPresignedURL PUTs file contents to an S3 presigned URL.
func UploadToPresignedURL(url string, file []byte) error {
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(file))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}
	return nil
}
