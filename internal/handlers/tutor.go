package handlers

import (
	"net/http"

	"github.com/Divina-s/DigiChamp/internal/services"

	"github.com/gin-gonic/gin"
)

type TutorHandler struct {
	tutorService *services.TutorService
}

func NewTutorHandler(tutorService *services.TutorService) *TutorHandler {
	return &TutorHandler{tutorService: tutorService}
}

type TutorRequest struct {
	Question string `json:"question" binding:"required" example:"What does RAM stand for?"`
	TopicID  *uint  `json:"topic_id,omitempty" example:"1"`
}

type TutorResponse struct {
	Answer string `json:"answer"`
}

// Ask godoc
// @Summary      Ask the AI tutor
// @Description  Forward a question to the tutor model; upstream failures come back as answer text
// @Tags         tutor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TutorRequest true "Question plus optional topic context"
// @Success      200 {object} TutorResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/ai-tutor [post]
func (h *TutorHandler) Ask(c *gin.Context) {
	var req TutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Question is required"})
		return
	}

	answer := h.tutorService.Ask(c.Request.Context(), req.Question, req.TopicID)
	c.JSON(http.StatusOK, TutorResponse{Answer: answer})
}
