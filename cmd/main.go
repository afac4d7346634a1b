package main

import (
	"log"
	"os"

	"backend/config"
	"backend/routes"
	"backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	if err := utils.EnsureUploadDir(); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
