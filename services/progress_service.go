package services

import (
	"context"
	"math"
	"time"

	"github.com/TheSubMish/nutrify-v2-sub000/models"

	"gorm.io/gorm"
)

type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// DayMacros is one point in the calorie/macro chart series.
type DayMacros struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MacroSeries aggregates meal totals per day over [from, to], with zero rows
// for days that have no meals so the chart axis stays continuous.
func (s *ProgressService) MacroSeries(ctx context.Context, userID uint, from, to time.Time) ([]DayMacros, error) {
	start := dayStartLocal(from)
	end := dayStartLocal(to).AddDate(0, 0, 1)

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	var keys []string
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format("2006-01-02"))
	}

	series := make([]DayMacros, len(keys))
	index := make(map[string]int, len(keys))
	for i, key := range keys {
		series[i] = DayMacros{Date: key}
		index[key] = i
	}

	for _, m := range meals {
		i, ok := index[m.Date.Format("2006-01-02")]
		if !ok {
			continue
		}
		series[i].Calories += m.Calories
		series[i].Protein += m.Protein
		series[i].Carbs += m.Carbs
		series[i].Fat += m.Fat
	}
	return series, nil
}

// ProgressSummary drives the dashboard: today's consumption against the
// goal, the weight trend, and the water counter.
type ProgressSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Macros map[string]map[string]float64 `json:"macros"` // consumed/goal/percent per nutrient

	Weight *WeightSummary `json:"weight"`

	Water struct {
		Glasses float64 `json:"glasses"`
		Goal    float64 `json:"goal"`
	} `json:"water"`
}

func (s *ProgressService) Summary(ctx context.Context, userID uint, from, to time.Time) (*ProgressSummary, error) {
	series, err := s.MacroSeries(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	var cals, prot, carbs, fat float64
	for _, d := range series {
		cals += d.Calories
		prot += d.Protein
		carbs += d.Carbs
		fat += d.Fat
	}
	days := float64(len(series))
	if days == 0 {
		days = 1
	}

	goal, err := GetGoal(userID)
	if err != nil {
		return nil, err
	}

	out := &ProgressSummary{}
	out.Range.From = dayStartLocal(from).Format("2006-01-02")
	out.Range.To = dayStartLocal(to).Format("2006-01-02")

	out.Macros = map[string]map[string]float64{
		"calories": nutrientProgress(cals/days, goal.Calories),
		"protein":  nutrientProgress(prot/days, goal.Protein),
		"carbs":    nutrientProgress(carbs/days, goal.Carbs),
		"fat":      nutrientProgress(fat/days, goal.Fat),
	}

	ws := NewWeightService(s.db)
	out.Weight, err = ws.Summary(userID)
	if err != nil {
		return nil, err
	}

	glasses, err := GetWaterIntake(userID)
	if err != nil {
		return nil, err
	}
	pref, err := GetPreferences(userID)
	if err != nil {
		return nil, err
	}
	out.Water.Glasses = glasses
	out.Water.Goal = pref.WaterGoal

	return out, nil
}

func nutrientProgress(consumed, goal float64) map[string]float64 {
	return map[string]float64{
		"consumed": round2(consumed),
		"goal":     goal,
		"percent":  pct(consumed, goal),
	}
}

// pct returns consumed/goal as a percentage capped at 100.
func pct(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	p := (consumed / goal) * 100.0
	if p > 100 {
		p = 100
	}
	return round2(p)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
