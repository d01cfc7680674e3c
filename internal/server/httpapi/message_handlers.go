package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/services"
)

// MessageHandlers serves the contact-form inbox. Submit is the only public
// endpoint; listing, reading, and deleting require the owner's token.
type MessageHandlers struct {
	service *services.MessageService
}

func NewMessageHandlers(service *services.MessageService) *MessageHandlers {
	return &MessageHandlers{service: service}
}

type submitMessageRequest struct {
	OwnerID     string `json:"owner_id" binding:"required,uuid"`
	SenderName  string `json:"sender_name" binding:"required"`
	SenderEmail string `json:"sender_email" binding:"required,email"`
	Subject     string `json:"subject"`
	Body        string `json:"body" binding:"required"`
}

type messageResponse struct {
	ID          string    `json:"id"`
	SenderName  string    `json:"sender_name"`
	SenderEmail string    `json:"sender_email"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

func toMessageResponse(m *models.Message) messageResponse {
	return messageResponse{
		ID:          m.ID.String(),
		SenderName:  m.SenderName,
		SenderEmail: m.SenderEmail,
		Subject:     m.Subject,
		Body:        m.Body,
		Read:        m.Read,
		CreatedAt:   m.CreatedAt,
	}
}

// Submit accepts a contact-form message from an anonymous visitor.
func (h *MessageHandlers) Submit(c *gin.Context) {
	var req submitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		badRequest(c, err)
		return
	}

	m, err := h.service.Submit(c.Request.Context(), &models.Message{
		UserID:      ownerID,
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Subject:     req.Subject,
		Body:        req.Body,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, messageResponse{ID: m.ID.String(), CreatedAt: m.CreatedAt})
}

func (h *MessageHandlers) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	items, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		renderError(c, err)
		return
	}

	out := make([]messageResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toMessageResponse(m))
	}
	c.JSON(http.StatusOK, out)
}

func (h *MessageHandlers) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	m, err := h.service.Get(c.Request.Context(), id, userID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMessageResponse(m))
}

func (h *MessageHandlers) MarkRead(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id, userID); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "marked read"})
}

func (h *MessageHandlers) Delete(c *gin.Context) {
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
