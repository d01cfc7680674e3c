package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/services"
)

type SkillHandlers struct {
	service *services.SkillService
}

func NewSkillHandlers(service *services.SkillService) *SkillHandlers {
	return &SkillHandlers{service: service}
}

type skillRequest struct {
	Name        string `json:"name" binding:"required"`
	Proficiency int    `json:"proficiency" binding:"required,min=1,max=5"`
}

type skillResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Proficiency int       `json:"proficiency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toSkillResponse(sk *models.Skill) skillResponse {
	return skillResponse{
		ID:          sk.ID.String(),
		Name:        sk.Name,
		Proficiency: sk.Proficiency,
		CreatedAt:   sk.CreatedAt,
		UpdatedAt:   sk.UpdatedAt,
	}
}

func (h *SkillHandlers) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	items, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		renderError(c, err)
		return
	}

	out := make([]skillResponse, 0, len(items))
	for _, sk := range items {
		out = append(out, toSkillResponse(sk))
	}
	c.JSON(http.StatusOK, out)
}

func (h *SkillHandlers) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	sk, err := h.service.Get(c.Request.Context(), id, userID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSkillResponse(sk))
}

func (h *SkillHandlers) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	sk, err := h.service.Create(c.Request.Context(), &models.Skill{
		UserID:      userID,
		Name:        req.Name,
		Proficiency: req.Proficiency,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSkillResponse(sk))
}

func (h *SkillHandlers) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	err = h.service.Update(c.Request.Context(), &models.Skill{
		ID:          id,
		UserID:      userID,
		Name:        req.Name,
		Proficiency: req.Proficiency,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "updated"})
}

func (h *SkillHandlers) Delete(c *gin.Context) {
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
