package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kinlog/backend/internal/service"
)

// 10 MB, matches the nginx client_max_body_size in front of the API.
const maxUploadBytes = 10 << 20

// ImageHandler accepts meal photo uploads and returns the stored URL
type ImageHandler struct {
	store service.ImageStore
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(store service.ImageStore) *ImageHandler {
	return &ImageHandler{
		store: store,
	}
}

// RegisterRoutes registers the image routes
func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	images := router.Group("/images")
	{
		images.POST("/upload", h.Upload)
	}
}

func (h *ImageHandler) Upload(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds the 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	url, err := h.store.UploadMealPhoto(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
