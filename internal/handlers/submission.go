package handlers

import (
	"net/http"
	"strconv"

	"github.com/Divina-s/DigiChamp/internal/services"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	submissionService *services.SubmissionService
}

func NewSubmissionHandler(submissionService *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

type SubmitQuizRequest struct {
	// Answers maps question id to the selected option id. Partial maps are
	// allowed; unanswered questions still count toward the score denominator.
	Answers map[uint]uint `json:"answers"`
}

type SubmitSingleAnswerRequest struct {
	QuestionID       uint `json:"question_id" binding:"required" example:"1"`
	SelectedOptionID uint `json:"selected_option_id" binding:"required" example:"3"`
}

// SubmitQuiz godoc
// @Summary      Submit a full quiz
// @Description  Grade the submitted answers, record them, and update the user's topic level
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Param        request body SubmitQuizRequest true "Answers keyed by question id"
// @Success      200 {object} services.QuizResult
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/submit [post]
func (h *SubmissionHandler) SubmitQuiz(c *gin.Context) {
	userID := c.GetUint("user_id")

	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.Answers == nil {
		req.Answers = map[uint]uint{}
	}

	result, err := h.submissionService.SubmitQuiz(userID, uint(quizID), req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SubmitSingleAnswer godoc
// @Summary      Submit a single answer
// @Description  Record one answer and reveal the correct option(s) for the question
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubmitSingleAnswerRequest true "Answer data"
// @Success      200 {object} services.SingleAnswerResult
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quiz/submit-answer [post]
func (h *SubmissionHandler) SubmitSingleAnswer(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req SubmitSingleAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.submissionService.SubmitSingleAnswer(userID, req.QuestionID, req.SelectedOptionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
