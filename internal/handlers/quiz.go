package handlers

import (
	"net/http"
	"strconv"

	"github.com/Divina-s/DigiChamp/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// ListTopics godoc
// @Summary      List all topics
// @Description  Get all topics with their quizzes, questions and options
// @Tags         quizzes
// @Produce      json
// @Success      200 {array} services.TopicView
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/topics [get]
func (h *QuizHandler) ListTopics(c *gin.Context) {
	topics, err := h.quizService.ListTopics()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

// GetQuiz godoc
// @Summary      Get a quiz
// @Description  Get a quiz with its questions and options
// @Tags         quizzes
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Success      200 {object} services.QuizView
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	quiz, err := h.quizService.GetQuiz(uint(quizID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// QuestionsByTopicAndLevel godoc
// @Summary      Get questions for a topic and level
// @Description  Get the question set of the quiz matching a topic and difficulty level
// @Tags         quizzes
// @Produce      json
// @Param        topic_id query int true "Topic ID"
// @Param        level query string false "Difficulty level (default beginner)"
// @Success      200 {array} services.QuestionView
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quiz/questions [get]
func (h *QuizHandler) QuestionsByTopicAndLevel(c *gin.Context) {
	topicIDStr := c.Query("topic_id")
	if topicIDStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Topic ID is required"})
		return
	}
	topicID, err := strconv.ParseUint(topicIDStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid topic_id"})
		return
	}

	questions, err := h.quizService.QuestionsByTopicAndLevel(uint(topicID), c.Query("level"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}
