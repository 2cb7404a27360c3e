package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wordwheel/wheelbot/ent"
	"github.com/wordwheel/wheelbot/ent/question"
)

// QuestionService manages the question pool the games draw from
type QuestionService struct {
	client *ent.Client
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(client *ent.Client) *QuestionService {
	return &QuestionService{client: client}
}

// CreateQuestion adds a question to the pool. Answers are compared
// case-insensitively during games, so the text is stored as given.
func (s *QuestionService) CreateQuestion(ctx context.Context, text, answer string) (*ent.Question, error) {
	if text == "" {
		return nil, NewValidationError("question", "required")
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, NewValidationError("answer", "required")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	q, err := s.client.Question.Create().
		SetQuestion(text).
		SetAnswer(answer).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return q, nil
}

// DeleteQuestion removes a question from the pool
func (s *QuestionService) DeleteQuestion(ctx context.Context, id int) error {
	if id <= 0 {
		return NewValidationError("question_id", "required")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.client.Question.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete question: %w", err)
	}

	return nil
}

// GetQuestion returns a question by id
func (s *QuestionService) GetQuestion(ctx context.Context, id int) (*ent.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	q, err := s.client.Question.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	return q, nil
}

// ListQuestions returns the whole pool ordered by id
func (s *QuestionService) ListQuestions(ctx context.Context) ([]*ent.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	qs, err := s.client.Question.Query().
		Order(ent.Asc(question.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	return qs, nil
}

// GetRandomQuestion draws a uniformly random question for a new game.
// Returns ErrNoQuestions when the pool is empty.
func (s *QuestionService) GetRandomQuestion(ctx context.Context) (*ent.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	q, err := s.client.Question.Query().
		Order(func(sel *sql.Selector) {
			sel.OrderExpr(sql.Expr("random()"))
		}).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoQuestions
		}
		return nil, fmt.Errorf("failed to get random question: %w", err)
	}

	return q, nil
}
