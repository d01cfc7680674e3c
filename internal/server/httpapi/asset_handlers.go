package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ganeshpodishetti/portfolio-api/internal/server/storage"
)

// AssetHandlers hands out presigned object-storage URLs for the resume file.
// Project images go through ProjectHandlers because they need an ownership
// check against the project row.
type AssetHandlers struct {
	assets *storage.AssetStorage
}

func NewAssetHandlers(assets *storage.AssetStorage) *AssetHandlers {
	return &AssetHandlers{assets: assets}
}

type presignURLResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

func (h *AssetHandlers) available(c *gin.Context) bool {
	if h.assets == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "asset storage is not configured"})
		return false
	}
	return true
}

func (h *AssetHandlers) ResumeUploadURL(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok || !h.available(c) {
		return
	}

	key := storage.ResumeKey(userID)
	url, err := h.assets.PresignedPutURL(c.Request.Context(), key)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, presignURLResponse{URL: url, Key: key})
}

func (h *AssetHandlers) ResumeDownloadURL(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok || !h.available(c) {
		return
	}

	key := storage.ResumeKey(userID)
	url, err := h.assets.PresignedGetURL(c.Request.Context(), key)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, presignURLResponse{URL: url, Key: key})
}
