package controllers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/AmitC04/fitlife-lk/config"
	"github.com/AmitC04/fitlife-lk/services"
	"github.com/AmitC04/fitlife-lk/utils"

	"github.com/gin-gonic/gin"
)

const maxMenuSize = 10 << 20 // 10 MB

var menuContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".pdf":  "application/pdf",
}

type UploadController struct {
	OCR *services.OCRService
}

func NewUploadController(ocr *services.OCRService) *UploadController {
	return &UploadController{OCR: ocr}
}

// UploadMenu stores a mess/hostel menu file in S3 and remembers its key
// on the user record. For images, text extraction runs best-effort and
// the result is handed back so the client can pass it to diet
// generation later.
func (uc *UploadController) UploadMenu(c *gin.Context) {
	userID := c.GetUint("userID")
	user, err := services.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	fileHeader, err := c.FormFile("menu")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}
	if fileHeader.Size > maxMenuSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File too large (max 10 MB)"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := menuContentTypes[ext]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only JPG, PNG, PDF allowed"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Upload failed"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Upload failed"})
		return
	}

	key, err := utils.UploadMenuToS3(data, contentType, fileHeader.Filename, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Upload failed", "detail": err.Error()})
		return
	}

	user.UploadedMenuPath = key
	if err := config.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Upload failed"})
		return
	}

	// Best-effort OCR on images; a failure just means no extracted text.
	menuText := ""
	if uc.OCR != nil && contentType != "application/pdf" {
		if text, err := uc.OCR.ExtractMenuText(data); err == nil {
			menuText = text
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Menu uploaded successfully",
		"path":     key,
		"filename": fileHeader.Filename,
		"menuText": menuText,
	})
}
