package main

import (
	"log"

	"doodleboard/internal/config"
	"doodleboard/internal/ui"
)

func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Println("Starting board")
	ui.RunApp(cfg)
}
