package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/services"
)

type SocialLinkHandlers struct {
	service *services.SocialLinkService
}

func NewSocialLinkHandlers(service *services.SocialLinkService) *SocialLinkHandlers {
	return &SocialLinkHandlers{service: service}
}

type socialLinkRequest struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
}

type socialLinkResponse struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toSocialLinkResponse(l *models.SocialLink) socialLinkResponse {
	return socialLinkResponse{
		ID:        l.ID.String(),
		Platform:  l.Platform,
		URL:       l.URL,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (h *SocialLinkHandlers) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	items, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		renderError(c, err)
		return
	}

	out := make([]socialLinkResponse, 0, len(items))
	for _, l := range items {
		out = append(out, toSocialLinkResponse(l))
	}
	c.JSON(http.StatusOK, out)
}

func (h *SocialLinkHandlers) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	l, err := h.service.Get(c.Request.Context(), id, userID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSocialLinkResponse(l))
}

func (h *SocialLinkHandlers) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req socialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	l, err := h.service.Create(c.Request.Context(), &models.SocialLink{
		UserID:   userID,
		Platform: req.Platform,
		URL:      req.URL,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSocialLinkResponse(l))
}

func (h *SocialLinkHandlers) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	var req socialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	err = h.service.Update(c.Request.Context(), &models.SocialLink{
		ID:       id,
		UserID:   userID,
		Platform: req.Platform,
		URL:      req.URL,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "updated"})
}

func (h *SocialLinkHandlers) Delete(c *gin.Context) {
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
