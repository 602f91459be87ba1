// Package cli implements the interactive console client for the reservation
// backend.
package cli

import (
	"bufio"
	"os"

	"github.com/mbelyaev/bookatable/internal/client/api"
	"github.com/mbelyaev/bookatable/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *api.Client
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.New(c.ServerBaseURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.api.Token() != ""
}
