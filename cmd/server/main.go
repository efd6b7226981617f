package main

import (
	"log"
	"time"

	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"golang.org/x/exp/rand"
)

func main() {
	config.SetLogLevel()
	rand.Seed(uint64(time.Now().UnixNano()))

	// Setup app
	app, cfg, services := internal.SetupApp()
	defer services.Close()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	if err := app.Listen(address); err != nil {
		services.Close()
		log.Fatal(err)
	}
}
