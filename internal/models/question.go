package models

type Question struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	QuizID  uint     `gorm:"not null;index" json:"quiz_id"`
	Text    string   `gorm:"type:text;not null" json:"text"`
	Options []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}
