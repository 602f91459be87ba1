package cli

import (
	"context"
	"fmt"
	"os"
)

// Register prompts for account details and creates an account.
func (a *App) Register(ctx context.Context) {

	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	email, err := GetSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if err := a.api.Register(ctx, name, email, password); err != nil {
		fmt.Println("Registration failed:", err)
		return
	}

	fmt.Println("Registered. You can now log in.")
}

// Login prompts for credentials and obtains a token.
func (a *App) Login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if err := a.api.Login(ctx, email, password); err != nil {
		fmt.Println("Login failed:", err)
		return
	}

	a.userName = email
	fmt.Println("Logged in as", email)
}

// Me prints the caller's profile.
func (a *App) Me(ctx context.Context) {

	user, err := a.api.Me(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
}
