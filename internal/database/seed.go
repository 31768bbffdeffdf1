package database

import (
	"github.com/Divina-s/DigiChamp/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type seedQuestion struct {
	Text    string
	Options []string
	Answer  string
}

type seedTopic struct {
	Name      string
	Questions []seedQuestion
}

var seedData = []seedTopic{
	{
		Name: "Hardware Components and Their Functions",
		Questions: []seedQuestion{
			{Text: "Which of these is the brain of the computer?",
				Options: []string{"Keyboard", "Mouse", "CPU", "Monitor"}, Answer: "CPU"},
			{Text: "Which device is used to display information visually?",
				Options: []string{"Scanner", "Monitor", "Printer", "Hard Drive"}, Answer: "Monitor"},
			{Text: "A mouse is mainly used for:",
				Options: []string{"Input", "Output", "Storage", "Processing"}, Answer: "Input"},
			{Text: "Which device stores permanent data even when the computer is off?",
				Options: []string{"RAM", "Hard Disk", "CPU", "Monitor"}, Answer: "Hard Disk"},
			{Text: "What does RAM stand for?",
				Options: []string{"Random Access Memory", "Read Access Memory", "Read and Monitor", "Run Any Machine"}, Answer: "Random Access Memory"},
		},
	},
	{
		Name: "Internet Safety and Security",
		Questions: []seedQuestion{
			{Text: "A strong password should include:",
				Options: []string{"Only your name", "Letters, numbers, and symbols", "Just numbers", "Only small letters"}, Answer: "Letters, numbers, and symbols"},
			{Text: "What is phishing?",
				Options: []string{"Playing games online", "Sending fake messages to steal information", "Buying products on the internet", "A type of computer virus"}, Answer: "Sending fake messages to steal information"},
			{Text: "Which of these is safe online behavior?",
				Options: []string{"Sharing your password with friends", "Using public Wi-Fi for banking", "Clicking on unknown links", "Using antivirus software"}, Answer: "Using antivirus software"},
			{Text: "What does HTTPS in a website address mean?",
				Options: []string{"High Tech Password System", "Safe and Secure Website", "Hyper Text Transfer Protocol Secure", "Hidden Text Transfer Protocol"}, Answer: "Hyper Text Transfer Protocol Secure"},
			{Text: "Which of these is an example of personal information you should protect online?",
				Options: []string{"Favorite color", "Date of birth", "Nickname", "Hobby"}, Answer: "Date of birth"},
		},
	},
}

// Seed loads the reference topics, quizzes, questions and options. It is a
// no-op when topics already exist.
func Seed(db *gorm.DB, log *zap.SugaredLogger) error {
	var count int64
	if err := db.Model(&models.Topic{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Infow("seed skipped, topics already present", "topics", count)
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, st := range seedData {
			topic := models.Topic{Name: st.Name}
			if err := tx.Create(&topic).Error; err != nil {
				return err
			}

			quiz := models.Quiz{
				TopicID: topic.ID,
				Title:   st.Name,
				Level:   models.QuizLevelBeginner,
			}
			if err := tx.Create(&quiz).Error; err != nil {
				return err
			}

			for _, sq := range st.Questions {
				question := models.Question{QuizID: quiz.ID, Text: sq.Text}
				if err := tx.Create(&question).Error; err != nil {
					return err
				}
				for _, optText := range sq.Options {
					opt := models.Option{
						QuestionID: question.ID,
						Text:       optText,
						IsCorrect:  optText == sq.Answer,
					}
					if err := tx.Create(&opt).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Infow("database seeded", "topics", len(seedData))
	return nil
}
