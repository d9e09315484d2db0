package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "memedrop.backend/internal/domain/errors"
	"memedrop.backend/internal/interfaces/http/response"
	"memedrop.backend/internal/usecases"
)

// WaitlistHandler handles waitlist email capture
type WaitlistHandler struct {
	waitlistUsecase *usecases.WaitlistUsecase
}

// NewWaitlistHandler creates a new waitlist handler
func NewWaitlistHandler(waitlistUsecase *usecases.WaitlistUsecase) *WaitlistHandler {
	return &WaitlistHandler{waitlistUsecase: waitlistUsecase}
}

// JoinWaitlist registers an email for the launch waitlist
// POST /api/v1/waitlist
func (h *WaitlistHandler) JoinWaitlist(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, domainerrors.BadRequest(usecases.MsgInvalidEmail))
		return
	}

	entry, err := h.waitlistUsecase.Join(c.Request.Context(), body.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Successfully registered for waitlist",
		"data":    entry,
	})
}
