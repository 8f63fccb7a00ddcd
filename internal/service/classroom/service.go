package classroom

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kino-avatar/kino/internal/model/classroom"
	"github.com/kino-avatar/kino/internal/service/ai"
)

var (
	ErrQuestionRequired = errors.New("userId and question are required")
	ErrAnswerNotFound   = errors.New("answer not found")
)

// Explainer produces the answer content for a question.
type Explainer interface {
	Explain(ctx context.Context, question string) (ai.Explanation, error)
}

// Service stores questions and answers in memory and announces them on the hub.
type Service struct {
	explainer Explainer
	hub       *Hub

	mu        sync.RWMutex
	questions []classroom.Question
	answers   map[string]classroom.Answer
	// answer id by question id
	answerOf map[string]string
}

// NewService bootstraps the in-memory classroom.
func NewService(explainer Explainer, hub *Hub) *Service {
	return &Service{
		explainer: explainer,
		hub:       hub,
		answers:   make(map[string]classroom.Answer),
		answerOf:  make(map[string]string),
	}
}

// Hub returns the event hub used for broadcasts.
func (s *Service) Hub() *Hub {
	return s.hub
}

// Ask records a question, generates its answer and stores it. Both steps are
// broadcast. The question stays listed even when explaining fails.
func (s *Service) Ask(ctx context.Context, userID, question string) (classroom.Receipt, error) {
	userID = strings.TrimSpace(userID)
	question = strings.TrimSpace(question)
	if userID == "" || question == "" {
		return classroom.Receipt{}, ErrQuestionRequired
	}

	q := classroom.Question{
		ID:        "q_" + uuid.NewString(),
		UserID:    userID,
		Question:  question,
		Timestamp: time.Now().UTC(),
	}

	s.mu.Lock()
	s.questions = append(s.questions, q)
	s.mu.Unlock()

	s.hub.Broadcast(classroom.Event{Type: classroom.EventQuestionCreated, Question: &q})

	explanation, err := s.explainer.Explain(ctx, question)
	if err != nil {
		return classroom.Receipt{}, fmt.Errorf("failed to explain question %s: %w", q.ID, err)
	}

	a := classroom.Answer{
		ID:            "a_" + uuid.NewString(),
		QuestionID:    q.ID,
		Text:          explanation.Text,
		Visualization: explanation.Visualization,
		Timestamp:     time.Now().UTC(),
	}

	s.mu.Lock()
	s.answers[a.ID] = a
	s.answerOf[q.ID] = a.ID
	s.mu.Unlock()

	s.hub.Broadcast(classroom.Event{Type: classroom.EventAnswerCreated, Answer: &a})

	log.Printf("[classroom] answered question=%s answer=%s user=%s", q.ID, a.ID, userID)
	return classroom.Receipt{QuestionID: q.ID, AnswerID: a.ID}, nil
}

// List returns every question in submission order.
func (s *Service) List(_ context.Context) []classroom.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]classroom.Summary, 0, len(s.questions))
	for _, q := range s.questions {
		out = append(out, classroom.Summary{
			ID:       q.ID,
			UserID:   q.UserID,
			Question: q.Question,
			AnswerID: s.answerOf[q.ID],
		})
	}
	return out
}

// Answer retrieves an answer by identifier.
func (s *Service) Answer(_ context.Context, answerID string) (classroom.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.answers[answerID]
	if !ok {
		return classroom.Answer{}, ErrAnswerNotFound
	}
	return a, nil
}
