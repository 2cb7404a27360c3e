package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testdb "github.com/wordwheel/wheelbot/test/database"
)

func TestQuestionService_CreateQuestion(t *testing.T) {
	client := testdb.NewTestClient(t)
	questionService := NewQuestionService(client.Client)
	ctx := context.Background()

	t.Run("creates question", func(t *testing.T) {
		q, err := questionService.CreateQuestion(ctx, "Столица Франции", "Париж")
		require.NoError(t, err)
		assert.Equal(t, "Столица Франции", q.Question)
		assert.Equal(t, "Париж", q.Answer)
	})

	t.Run("trims answer whitespace", func(t *testing.T) {
		q, err := questionService.CreateQuestion(ctx, "Столица Италии", "  Рим ")
		require.NoError(t, err)
		assert.Equal(t, "Рим", q.Answer)
	})

	t.Run("rejects duplicate question", func(t *testing.T) {
		_, err := questionService.CreateQuestion(ctx, "Столица Франции", "Лион")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates question required", func(t *testing.T) {
		_, err := questionService.CreateQuestion(ctx, "", "Ответ")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates answer required", func(t *testing.T) {
		_, err := questionService.CreateQuestion(ctx, "Вопрос без ответа", "   ")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestQuestionService_DeleteQuestion(t *testing.T) {
	client := testdb.NewTestClient(t)
	questionService := NewQuestionService(client.Client)
	ctx := context.Background()

	t.Run("deletes existing question", func(t *testing.T) {
		q := seedQuestion(t, client.Client, "Временный вопрос", "ВРЕМЯ")

		err := questionService.DeleteQuestion(ctx, q.ID)
		require.NoError(t, err)

		_, err = questionService.GetQuestion(ctx, q.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns ErrNotFound for missing question", func(t *testing.T) {
		err := questionService.DeleteQuestion(ctx, 99999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestQuestionService_ListQuestions(t *testing.T) {
	client := testdb.NewTestClient(t)
	questionService := NewQuestionService(client.Client)
	ctx := context.Background()

	t.Run("empty pool lists nothing", func(t *testing.T) {
		qs, err := questionService.ListQuestions(ctx)
		require.NoError(t, err)
		assert.Empty(t, qs)
	})

	t.Run("lists in id order", func(t *testing.T) {
		first := seedQuestion(t, client.Client, "Первый вопрос", "ОДИН")
		second := seedQuestion(t, client.Client, "Второй вопрос", "ДВА")

		qs, err := questionService.ListQuestions(ctx)
		require.NoError(t, err)
		require.Len(t, qs, 2)
		assert.Equal(t, first.ID, qs[0].ID)
		assert.Equal(t, second.ID, qs[1].ID)
	})
}

func TestQuestionService_GetRandomQuestion(t *testing.T) {
	client := testdb.NewTestClient(t)
	questionService := NewQuestionService(client.Client)
	ctx := context.Background()

	t.Run("empty pool returns ErrNoQuestions", func(t *testing.T) {
		_, err := questionService.GetRandomQuestion(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoQuestions)
	})

	t.Run("draws from the pool", func(t *testing.T) {
		seeded := seedQuestion(t, client.Client, "Единственный вопрос", "СЛОВО")

		q, err := questionService.GetRandomQuestion(ctx)
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, q.ID)
	})
}
