package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/TheSubMish/nutrify-v2-sub000/models"

	"gorm.io/gorm"
)

var ErrRateLimited = errors.New("too many assistant requests, try again in a minute")

type ChatService struct {
	db      *gorm.DB
	llm     LLMClient
	limiter *RateLimiter
}

func NewChatService(db *gorm.DB, llm LLMClient, limiter *RateLimiter) *ChatService {
	return &ChatService{db: db, llm: llm, limiter: limiter}
}

// Ask sends one user turn to the assistant, with the user's goals and
// preferences folded into the prompt, and persists both sides of the
// exchange.
func (s *ChatService) Ask(ctx context.Context, userID uint, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errors.New("message is empty")
	}
	if !s.limiter.Allow(userID) {
		return "", ErrRateLimited
	}

	prompt := s.buildPrompt(userID, message)

	reply, err := s.llm.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("assistant error: %w", err)
	}

	for _, msg := range []models.ChatMessage{
		{UserID: userID, Role: "user", Content: message},
		{UserID: userID, Role: "assistant", Content: reply},
	} {
		if err := s.db.Create(&msg).Error; err != nil {
			log.Printf("failed to persist chat message for user %d: %v", userID, err)
		}
	}

	return reply, nil
}

// History returns the newest messages, capped at limit, in chronological
// order. Fetching ascending would cap away the recent turns instead.
func (s *ChatService) History(userID uint, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var msgs []models.ChatMessage
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return chronological(msgs), nil
}

// chronological reverses a newest-first page in place.
func chronological(msgs []models.ChatMessage) []models.ChatMessage {
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs
}

type NutritionFacts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// NutritionLookup asks the model for macro estimates of a food as strict
// JSON and parses the reply. Used to prefill the meal form.
func (s *ChatService) NutritionLookup(ctx context.Context, userID uint, food string) (*NutritionFacts, error) {
	if strings.TrimSpace(food) == "" {
		return nil, errors.New("food name is empty")
	}
	if !s.limiter.Allow(userID) {
		return nil, ErrRateLimited
	}

	prompt := fmt.Sprintf(
		"Estimate the nutrition of one typical serving of %q. "+
			"Reply with ONLY a JSON object of the form "+
			`{"calories": <kcal>, "protein": <g>, "carbs": <g>, "fat": <g>}`+
			" and nothing else.", food)

	raw, err := s.llm.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("assistant error: %w", err)
	}

	var facts NutritionFacts
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &facts); err != nil {
		return nil, fmt.Errorf("could not parse nutrition reply: %v", err)
	}
	return &facts, nil
}

func (s *ChatService) buildPrompt(userID uint, message string) string {
	var sb strings.Builder
	sb.WriteString("You are a pragmatic nutrition assistant for a meal-planning app. ")
	sb.WriteString("Answer briefly and concretely.\n")

	goal, err := GetGoal(userID)
	if err == nil && goal.Calories > 0 {
		sb.WriteString(fmt.Sprintf(
			"The user's daily targets: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat.\n",
			goal.Calories, goal.Protein, goal.Carbs, goal.Fat))
	}
	if goal != nil && goal.TargetWeight > 0 {
		sb.WriteString(fmt.Sprintf("Target weight: %.1f kg (%.1f kg/week).\n",
			goal.TargetWeight, goal.WeeklyChange))
	}

	pref, err := GetPreferences(userID)
	if err == nil {
		if pref.DietType != "" {
			sb.WriteString("Diet type: " + pref.DietType + ".\n")
		}
		if pref.Restrictions != "" {
			sb.WriteString("Dietary restrictions: " + pref.Restrictions + ".\n")
		}
		if pref.Allergies != "" {
			sb.WriteString("Allergies (never suggest these): " + pref.Allergies + ".\n")
		}
	}

	sb.WriteString("\nUser: ")
	sb.WriteString(message)
	return sb.String()
}

// stripCodeFences tolerates models wrapping JSON in ``` blocks.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}
