package main

import (
	"log"

	"github.com/pindrop/pindrop/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ pindrop failed to start: %v", err)
	}
}
