package classroom

// Event types pushed to live subscribers.
const (
	EventConnected       = "connected"
	EventKeepalive       = "keepalive"
	EventQuestionCreated = "question_created"
	EventAnswerCreated   = "answer_created"
)

// Event is a feed entry. Exactly one of Question or Answer is set for creation events.
type Event struct {
	Type     string    `json:"type"`
	Question *Question `json:"question,omitempty"`
	Answer   *Answer   `json:"answer,omitempty"`
}
