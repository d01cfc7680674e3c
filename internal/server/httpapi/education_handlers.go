package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/services"
)

type EducationHandlers struct {
	service *services.EducationService
}

func NewEducationHandlers(service *services.EducationService) *EducationHandlers {
	return &EducationHandlers{service: service}
}

type educationRequest struct {
	School       string     `json:"school" binding:"required"`
	Degree       string     `json:"degree" binding:"required"`
	FieldOfStudy string     `json:"field_of_study"`
	StartDate    time.Time  `json:"start_date" binding:"required"`
	EndDate      *time.Time `json:"end_date"`
	Description  string     `json:"description"`
}

type educationResponse struct {
	ID           string     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Description  string     `json:"description"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func toEducationResponse(e *models.Education) educationResponse {
	return educationResponse{
		ID:           e.ID.String(),
		School:       e.School,
		Degree:       e.Degree,
		FieldOfStudy: e.FieldOfStudy,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Description:  e.Description,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (h *EducationHandlers) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	items, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		renderError(c, err)
		return
	}

	out := make([]educationResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toEducationResponse(e))
	}
	c.JSON(http.StatusOK, out)
}

func (h *EducationHandlers) Get(c *gin.Context) {
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

	c.JSON(http.StatusOK, toEducationResponse(e))
}

func (h *EducationHandlers) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	e, err := h.service.Create(c.Request.Context(), &models.Education{
		UserID:       userID,
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Description:  req.Description,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toEducationResponse(e))
}

func (h *EducationHandlers) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	err = h.service.Update(c.Request.Context(), &models.Education{
		ID:           id,
		UserID:       userID,
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Description:  req.Description,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "updated"})
}

func (h *EducationHandlers) Delete(c *gin.Context) {
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
