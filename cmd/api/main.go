package main

import (
	"log"

	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/app"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
