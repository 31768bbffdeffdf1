package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Divina-s/DigiChamp/internal/models"

	"go.uber.org/zap"
	"google.golang.org/genai"
	"gorm.io/gorm"
)

const defaultTutorModel = "gemini-2.0-flash"

// TutorService proxies student questions to the Gemini API. Failures never
// surface as errors: the caller always gets an answer string, possibly the
// apology fallback.
type TutorService struct {
	db      *gorm.DB
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *zap.SugaredLogger
}

func NewTutorService(ctx context.Context, db *gorm.DB, apiKey, model string, log *zap.SugaredLogger) (*TutorService, error) {
	s := &TutorService{
		db:      db,
		model:   model,
		timeout: 30 * time.Second,
		log:     log,
	}
	if s.model == "" {
		s.model = defaultTutorModel
	}

	if apiKey == "" {
		log.Warnw("GEMINI_API_KEY not set, AI tutor disabled")
		return s, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	s.client = client
	return s, nil
}

func (s *TutorService) IsAvailable() bool {
	return s.client != nil
}

// Ask forwards the question to the model, with the topic name folded into the
// prompt when a known topic id is supplied. An unknown topic id is ignored.
func (s *TutorService) Ask(ctx context.Context, question string, topicID *uint) string {
	var topicName string
	if topicID != nil {
		var topic models.Topic
		if err := s.db.First(&topic, *topicID).Error; err == nil {
			topicName = topic.Name
		}
	}
	prompt := buildTutorPrompt(question, topicName)

	if !s.IsAvailable() {
		return tutorFallback("AI tutoring is not configured")
	}

	answer, err := s.generate(ctx, prompt)
	if err != nil && isTransient(err) {
		answer, err = s.generate(ctx, prompt)
	}
	if err != nil {
		s.log.Warnw("tutor request failed", "error", err)
		return tutorFallback(err.Error())
	}
	return answer
}

func (s *TutorService) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}
	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

func buildTutorPrompt(question, topicName string) string {
	prompt := "You are an AI tutor. Help the student with this question: " + question
	if topicName != "" {
		prompt += " The topic is: " + topicName + "."
	}
	return prompt
}

func tutorFallback(reason string) string {
	return "Sorry, I couldn't answer your question because:\n\n" + reason
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= 500
	}
	return false
}
