// Command server runs the candidate test web application.
//
// Configuration is read from CONFIG_PATH (fallback ./config.yaml), a .env
// file in the working directory, and the environment.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/eulerq-candidate-test/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
