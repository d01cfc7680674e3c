package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/services"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/storage"
)

// ProjectHandlers serves project CRUD plus the cover-image upload flow.
// Images live in object storage; the handlers only move presigned URLs and
// keys around.
type ProjectHandlers struct {
	service *services.ProjectService
	assets  *storage.AssetStorage
}

func NewProjectHandlers(service *services.ProjectService, assets *storage.AssetStorage) *ProjectHandlers {
	return &ProjectHandlers{service: service, assets: assets}
}

type projectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	RepoURL     string `json:"repo_url"`
	LiveURL     string `json:"live_url"`
}

type projectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	RepoURL     string    `json:"repo_url"`
	LiveURL     string    `json:"live_url"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (h *ProjectHandlers) toResponse(c *gin.Context, p *models.Project) projectResponse {
	resp := projectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		RepoURL:     p.RepoURL,
		LiveURL:     p.LiveURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if h.assets != nil && p.ImageKey != "" {
		url, err := h.assets.PresignedGetURL(c.Request.Context(), p.ImageKey)
		if err == nil {
			resp.ImageURL = url
		}
	}
	return resp
}

func (h *ProjectHandlers) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	items, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		renderError(c, err)
		return
	}

	out := make([]projectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, h.toResponse(c, p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProjectHandlers) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	p, err := h.service.Get(c.Request.Context(), id, userID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toResponse(c, p))
}

func (h *ProjectHandlers) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p, err := h.service.Create(c.Request.Context(), &models.Project{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		RepoURL:     req.RepoURL,
		LiveURL:     req.LiveURL,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.toResponse(c, p))
}

func (h *ProjectHandlers) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	err = h.service.Update(c.Request.Context(), &models.Project{
		ID:          id,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		RepoURL:     req.RepoURL,
		LiveURL:     req.LiveURL,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "updated"})
}

func (h *ProjectHandlers) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "deleted"})
}

type presignUploadResponse struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
}

// PresignImageUpload returns a presigned PUT URL for the project's cover
// image and records the key on the project. The client uploads directly to
// object storage.
func (h *ProjectHandlers) PresignImageUpload(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if h.assets == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "asset storage is not configured"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	// Ownership check before touching storage.
	if _, err := h.service.Get(c.Request.Context(), id, userID); err != nil {
		renderError(c, err)
		return
	}

	key := storage.ProjectImageKey(userID, id)
	url, err := h.assets.PresignedPutURL(c.Request.Context(), key)
	if err != nil {
		renderError(c, err)
		return
	}

	if err := h.service.AttachImage(c.Request.Context(), id, userID, key); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, presignUploadResponse{UploadURL: url, Key: key})
}
