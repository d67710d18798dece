package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSubMish/nutrify-v2-sub000/models"
)

type stubLLM struct {
	reply string
	err   error
	calls int
}

func (s *stubLLM) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func (s *stubLLM) Close() error { return nil }

func TestNutritionLookupParsesStrictJSON(t *testing.T) {
	llm := &stubLLM{reply: `{"calories": 620, "protein": 42, "carbs": 55, "fat": 21}`}
	svc := NewChatService(nil, llm, NewRateLimiter(10, time.Minute))

	facts, err := svc.NutritionLookup(context.Background(), 1, "salmon bowl")
	require.NoError(t, err)
	assert.Equal(t, 620.0, facts.Calories)
	assert.Equal(t, 42.0, facts.Protein)
	assert.Equal(t, 55.0, facts.Carbs)
	assert.Equal(t, 21.0, facts.Fat)
}

func TestNutritionLookupToleratesCodeFences(t *testing.T) {
	llm := &stubLLM{reply: "```json\n{\"calories\": 95, \"protein\": 0.5, \"carbs\": 25, \"fat\": 0.3}\n```"}
	svc := NewChatService(nil, llm, NewRateLimiter(10, time.Minute))

	facts, err := svc.NutritionLookup(context.Background(), 1, "apple")
	require.NoError(t, err)
	assert.Equal(t, 95.0, facts.Calories)
}

func TestNutritionLookupRejectsGarbage(t *testing.T) {
	llm := &stubLLM{reply: "about 200 calories, give or take"}
	svc := NewChatService(nil, llm, NewRateLimiter(10, time.Minute))

	_, err := svc.NutritionLookup(context.Background(), 1, "mystery stew")
	assert.Error(t, err)
}

func TestNutritionLookupRateLimited(t *testing.T) {
	llm := &stubLLM{reply: `{"calories": 1, "protein": 0, "carbs": 0, "fat": 0}`}
	svc := NewChatService(nil, llm, NewRateLimiter(1, time.Minute))

	_, err := svc.NutritionLookup(context.Background(), 9, "rice")
	require.NoError(t, err)

	_, err = svc.NutritionLookup(context.Background(), 9, "rice")
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 1, llm.calls, "limited call must not reach the model")
}

func TestNutritionLookupEmptyFood(t *testing.T) {
	svc := NewChatService(nil, &stubLLM{}, NewRateLimiter(10, time.Minute))
	_, err := svc.NutritionLookup(context.Background(), 1, "  ")
	assert.Error(t, err)
}

func TestChronologicalReversesNewestFirstPage(t *testing.T) {
	page := []models.ChatMessage{
		{Role: "assistant", Content: "third"},
		{Role: "user", Content: "second"},
		{Role: "user", Content: "first"},
	}

	out := chronological(page)

	require.Len(t, out, 3)
	assert.Equal(t, "first", out[0].Content)
	assert.Equal(t, "second", out[1].Content)
	assert.Equal(t, "third", out[2].Content)

	assert.Empty(t, chronological(nil))
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}
