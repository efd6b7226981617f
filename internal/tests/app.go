package tests

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/services"
)

const TestToken = "test-token"

// NewTestApp builds an app without Redis and Postgres.
func NewTestApp() *fiber.App {
	cfg := &config.ServerConfig{
		ServerHost: "localhost",
		ServerPort: "3000",
		Token:      TestToken,
		Prefork:    false,
	}

	return internal.BuildApp(cfg, &services.Services{})
}

// NewJSONRequest creates a request with payload encoded as JSON body.
func NewJSONRequest(method, url string, payload any) (*http.Request, error) {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, url, &body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	return req, nil
}
