package main

import (
	"log"

	"github.com/MrSnakeDoc/brainstorm/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ brainstorm failed to start: %v", err)
	}
}
