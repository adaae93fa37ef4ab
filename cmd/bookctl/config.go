package main

import (
	"os"

	"github.com/joho/godotenv"
)

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func serverURL() string {
	if v := os.Getenv("BOOKCTL_URL"); v != "" {
		return v
	}
	return "http://localhost:3000"
}
