package classroom

import "time"

// Question is a learner's submitted question.
type Question struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Question  string    `json:"question"`
	Timestamp time.Time `json:"timestamp"`
}

// Summary is the list view of a question, linked to its answer once one exists.
type Summary struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Question string `json:"question"`
	AnswerID string `json:"answerId,omitempty"`
}

// Answer holds the explanation and the animated visualization for one question.
type Answer struct {
	ID            string        `json:"id"`
	QuestionID    string        `json:"questionId"`
	Text          string        `json:"text"`
	Visualization Visualization `json:"visualization"`
	Timestamp     time.Time     `json:"timestamp"`
}

// Receipt is returned to the asker once the answer is stored.
type Receipt struct {
	QuestionID string `json:"questionId"`
	AnswerID   string `json:"answerId"`
}
