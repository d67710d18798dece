package services

import (
	"time"

	"github.com/TheSubMish/nutrify-v2-sub000/models"
	"github.com/TheSubMish/nutrify-v2-sub000/utils"

	"gorm.io/gorm"
)

type WeightService struct {
	db *gorm.DB
}

func NewWeightService(db *gorm.DB) *WeightService {
	return &WeightService{db: db}
}

// AddEntry appends a weight measurement. History is never edited in place.
func (s *WeightService) AddEntry(userID uint, weightKg float64, recordedAt time.Time) (*models.WeightEntry, error) {
	if weightKg <= 10 || weightKg > 300 {
		return nil, &utils.ValidationError{Reason: "weight must be between 10 and 300 kg"}
	}
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	entry := &models.WeightEntry{
		UserID:     userID,
		RecordedAt: recordedAt,
		WeightKg:   weightKg,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	// keep the profile's current weight in sync with the latest entry
	s.db.Model(&models.User{}).Where("id = ?", userID).Update("weight", weightKg)

	return entry, nil
}

func (s *WeightService) ListEntries(userID uint) ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("recorded_at ASC").
		Find(&entries).Error
	return entries, err
}

type WeightSummary struct {
	Entries int     `json:"entries"`
	First   float64 `json:"first"`
	Last    float64 `json:"last"`
	Delta   float64 `json:"delta"` // last - first
}

func (s *WeightService) Summary(userID uint) (*WeightSummary, error) {
	entries, err := s.ListEntries(userID)
	if err != nil {
		return nil, err
	}

	sum := &WeightSummary{Entries: len(entries)}
	if len(entries) > 0 {
		sum.First = entries[0].WeightKg
		sum.Last = entries[len(entries)-1].WeightKg
		sum.Delta = sum.Last - sum.First
	}
	return sum, nil
}
