package controllers

import (
	"io"
	"log"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/food — multipart/form-data with key "image"
func UploadFood(c *gin.Context) {
	userID := c.GetUint("userID")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No image file provided"})
		return
	}
	if fileHeader.Filename == "" || !utils.AllowedImageFile(fileHeader.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing image file"})
		return
	}
	if fileHeader.Size > utils.MaxUploadBytes() {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Image too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}

	uniqueName := utils.UniqueImageName(fileHeader.Filename)
	savePath := filepath.Join(utils.UploadDir(), uniqueName)
	if err := os.WriteFile(savePath, data, 0o644); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	imageRef := savePath
	if utils.S3Enabled() {
		contentType := mime.TypeByExtension(filepath.Ext(uniqueName))
		if url, err := utils.UploadImageToS3(data, uniqueName, contentType); err == nil {
			imageRef = url
		} else {
			log.Printf("S3 mirror failed for %s, keeping local path: %v", uniqueName, err)
		}
	}

	// Recognition never fails; worst case the result is "unknown".
	result := services.NewRecognitionService().Recognize(savePath)

	entry, err := services.RecordEntry(userID, imageRef, result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save entry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"entry_id":   entry.ID,
		"food_name":  entry.FoodName,
		"calories":   entry.Calories,
		"confidence": entry.Confidence,
	})
}

// GET /api/food — the caller's history, newest first
func ListFoodEntries(c *gin.Context) {
	userID := c.GetUint("userID")

	entries, err := services.ListEntriesForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load entries"})
		return
	}

	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		out = append(out, gin.H{
			"entry_id":   e.ID,
			"food_name":  e.FoodName,
			"calories":   e.Calories,
			"confidence": e.Confidence,
			"image_path": e.ImagePath,
			"created_on": e.CreatedOn.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{"entries": out})
}
