package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/TheSubMish/nutrify-v2-sub000/config"
	"github.com/TheSubMish/nutrify-v2-sub000/controllers"
	"github.com/TheSubMish/nutrify-v2-sub000/routes"
	"github.com/TheSubMish/nutrify-v2-sub000/services"
	"github.com/TheSubMish/nutrify-v2-sub000/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	// realtime calendar updates
	hub := services.NewRealtimeHub()
	controllers.InitRealtime(hub)

	// AI assistant: optional, the rest of the app works without it
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		llm, err := services.NewGeminiClient(context.Background(), key, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("Gemini client init failed: %v", err)
		}

		vision, err := services.NewVisionService()
		if err != nil {
			log.Fatalf("Rekognition init failed: %v", err)
		}

		limiter := services.NewRateLimiter(10, time.Minute)
		controllers.InitChat(services.NewChatService(config.DB, llm, limiter), vision)
	} else {
		log.Printf("GEMINI_API_KEY not set, assistant endpoints disabled")
	}

	r := routes.SetupRouter()
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
