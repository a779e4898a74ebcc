// Command server runs the learning-log HTTP API.
//
// Configuration comes from environment variables, or from a YAML file when
// CONFIG_PATH is set. See internal/config for the full list of options.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"

	"github.com/okazimirov/learnlog-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
