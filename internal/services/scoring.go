package services

import "github.com/Divina-s/DigiChamp/internal/models"

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

type ScoreResult struct {
	TotalQuestions int
	CorrectCount   int
	Percentage     float64
}

// Score grades a set of selections against a quiz's question set. Keys of
// selections are question IDs, values are the chosen option IDs. Unanswered
// questions count toward the denominator. A selection only counts as correct
// when the option both is marked correct and belongs to the referenced
// question; entries that don't resolve are skipped.
func (s *ScoringService) Score(questions []models.Question, selections map[uint]uint) ScoreResult {
	result := ScoreResult{TotalQuestions: len(questions)}

	for _, q := range questions {
		optionID, answered := selections[q.ID]
		if !answered {
			continue
		}
		for _, o := range q.Options {
			if o.ID == optionID {
				if o.IsCorrect {
					result.CorrectCount++
				}
				break
			}
		}
	}

	if result.TotalQuestions > 0 {
		result.Percentage = float64(result.CorrectCount) / float64(result.TotalQuestions) * 100
	}
	return result
}

// LevelForScore maps a score percentage to a proficiency label. Bands are
// inclusive on their lower bound.
func (s *ScoringService) LevelForScore(pct float64) string {
	switch {
	case pct >= 80:
		return LevelAdvanced
	case pct >= 50:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}
