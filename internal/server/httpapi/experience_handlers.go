package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/services"
)

type ExperienceHandlers struct {
	service *services.ExperienceService
}

func NewExperienceHandlers(service *services.ExperienceService) *ExperienceHandlers {
	return &ExperienceHandlers{service: service}
}

type experienceRequest struct {
	Title       string     `json:"title" binding:"required"`
	CompanyName string     `json:"company_name" binding:"required"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
}

type experienceResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	CompanyName string     `json:"company_name"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toExperienceResponse(e *models.Experience) experienceResponse {
	return experienceResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		CompanyName: e.CompanyName,
		Location:    e.Location,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (h *ExperienceHandlers) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	items, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		renderError(c, err)
		return
	}

	out := make([]experienceResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toExperienceResponse(e))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ExperienceHandlers) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	e, err := h.service.Get(c.Request.Context(), id, userID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toExperienceResponse(e))
}

func (h *ExperienceHandlers) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	e, err := h.service.Create(c.Request.Context(), &models.Experience{
		UserID:      userID,
		Title:       req.Title,
		CompanyName: req.CompanyName,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toExperienceResponse(e))
}

func (h *ExperienceHandlers) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	err = h.service.Update(c.Request.Context(), &models.Experience{
		ID:          id,
		UserID:      userID,
		Title:       req.Title,
		CompanyName: req.CompanyName,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "updated"})
}

func (h *ExperienceHandlers) Delete(c *gin.Context) {
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
