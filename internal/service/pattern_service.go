package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"moodlens/internal/domain"
	"moodlens/internal/emotion"
	"moodlens/internal/repository"
)

// EmotionStat resume la frecuencia de una categoría dentro de la ventana.
type EmotionStat struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Insight es una observación derivada del historial de check-ins.
type Insight struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Priority string `json:"priority"`
}

// PatternSummary agrega los check-ins recientes de un usuario.
type PatternSummary struct {
	TotalCheckIns   int                    `json:"total_check_ins"`
	EmotionSummary  map[string]EmotionStat `json:"emotion_summary"`
	Insights        []Insight              `json:"insights"`
	Recommendations []string               `json:"recommendations"`
	TimeRange       string                 `json:"time_range"`
}

// PatternService deriva patrones e insights del historial persistido.
type PatternService struct {
	logger   *zap.Logger
	checkIns repository.CheckInRepository
}

func NewPatternService(logger *zap.Logger, checkIns repository.CheckInRepository) *PatternService {
	return &PatternService{
		logger:   logger,
		checkIns: checkIns,
	}
}

// Summary agrega los check-ins de los últimos días. Sin check-ins devuelve
// un resumen vacío, nunca error.
func (s *PatternService) Summary(ctx context.Context, userID string, days int) (PatternSummary, error) {
	if s.checkIns == nil {
		return PatternSummary{}, errors.New("pattern service not configured")
	}
	if days <= 0 {
		days = 7
	}
	since := time.Now().UTC().AddDate(0, 0, -days)
	recent, err := s.checkIns.ListSince(ctx, userID, since)
	if err != nil {
		return PatternSummary{}, err
	}

	summary := PatternSummary{
		TotalCheckIns:   len(recent),
		EmotionSummary:  map[string]EmotionStat{},
		Insights:        []Insight{},
		Recommendations: []string{},
		TimeRange:       fmt.Sprintf("Last %d days", days),
	}
	if len(recent) == 0 {
		return summary, nil
	}

	counts := map[string]int{}
	for _, c := range recent {
		counts[c.Category]++
	}
	total := len(recent)
	for category, count := range counts {
		summary.EmotionSummary[category] = EmotionStat{
			Count:      count,
			Percentage: math.Round(float64(count)/float64(total)*1000) / 10,
		}
	}

	summary.Insights = buildInsights(recent, counts)
	summary.Recommendations = buildRecommendations(recent, counts)
	return summary, nil
}

// EmotionHistory devuelve los check-ins de una categoría en la ventana.
func (s *PatternService) EmotionHistory(ctx context.Context, userID string, category emotion.Category, days int) ([]domain.CheckIn, error) {
	if s.checkIns == nil {
		return nil, errors.New("pattern service not configured")
	}
	if days <= 0 {
		days = 30
	}
	since := time.Now().UTC().AddDate(0, 0, -days)
	recent, err := s.checkIns.ListSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	var history []domain.CheckIn
	for _, c := range recent {
		if c.Category == string(category) {
			history = append(history, c)
		}
	}
	return history, nil
}

// buildInsights replica tres familias de observaciones: emoción más
// frecuente, patrones horarios sobre los últimos 10 check-ins y rachas
// recientes de una misma emoción.
func buildInsights(recent []domain.CheckIn, counts map[string]int) []Insight {
	var insights []Insight

	if category, count := mostCommonCategory(counts); count > 0 {
		insights = append(insights, Insight{
			Type:     "most_common_emotion",
			Text:     fmt.Sprintf("You've felt %s most often (%d times)", category, count),
			Priority: "medium",
		})
	}

	if len(recent) >= 3 {
		window := recent
		if len(window) > 10 {
			window = window[len(window)-10:]
		}
		hourCategories := map[int][]string{}
		for _, c := range window {
			hour := c.CreatedAt.Hour()
			hourCategories[hour] = append(hourCategories[hour], c.Category)
		}
		hours := make([]int, 0, len(hourCategories))
		for hour := range hourCategories {
			hours = append(hours, hour)
		}
		sort.Ints(hours)
		for _, hour := range hours {
			categories := hourCategories[hour]
			if len(categories) < 2 {
				continue
			}
			perHour := map[string]int{}
			for _, cat := range categories {
				perHour[cat]++
			}
			if category, count := mostCommonCategory(perHour); count >= 2 {
				insights = append(insights, Insight{
					Type:     "time_pattern",
					Text:     fmt.Sprintf("You often feel %s during %s", category, timePeriod(hour)),
					Priority: "low",
				})
			}
		}
	}

	if len(recent) >= 3 {
		last := recent[len(recent)-3:]
		if last[0].Category == last[1].Category && last[1].Category == last[2].Category {
			insights = append(insights, Insight{
				Type:     "recent_trend",
				Text:     fmt.Sprintf("You've been feeling %s consistently", last[0].Category),
				Priority: "medium",
			})
		}
	}

	return insights
}

func buildRecommendations(recent []domain.CheckIn, counts map[string]int) []string {
	var recommendations []string

	total := len(recent)
	if category, count := mostCommonCategory(counts); count > 0 && total > 0 {
		percentage := float64(count) / float64(total) * 100
		if percentage >= 50 {
			switch category {
			case "anxious":
				recommendations = append(recommendations, "Consider daily stress management techniques")
			case "sad":
				recommendations = append(recommendations, "You might benefit from talking to someone")
			case "overwhelmed":
				recommendations = append(recommendations, "Try breaking tasks into smaller steps")
			case "tired":
				recommendations = append(recommendations, "Consider your sleep schedule and rest needs")
			}
		}
	}

	switch {
	case total >= 5:
		recommendations = append(recommendations, "Great job checking in regularly!")
	case total >= 2:
		recommendations = append(recommendations, "Consider checking in daily for better insights")
	default:
		recommendations = append(recommendations, "Try checking in more often to build patterns")
	}

	if total > 0 {
		last := recent
		if len(last) > 3 {
			last = last[len(last)-3:]
		}
		sum := 0
		for _, c := range last {
			sum += c.CreatedAt.Hour()
		}
		avgHour := float64(sum) / float64(len(last))
		if avgHour < 10 {
			recommendations = append(recommendations, "You tend to check in early - consider evening reflection too")
		} else if avgHour > 18 {
			recommendations = append(recommendations, "You check in late - morning check-ins might help start your day")
		}
	}

	if len(recommendations) > 3 {
		recommendations = recommendations[:3]
	}
	return recommendations
}

// mostCommonCategory desempata por orden del registro de categorías para
// que los resúmenes sean deterministas.
func mostCommonCategory(counts map[string]int) (string, int) {
	best := ""
	bestCount := 0
	for _, cat := range emotion.Categories() {
		if counts[string(cat)] > bestCount {
			best = string(cat)
			bestCount = counts[string(cat)]
		}
	}
	return best, bestCount
}

func timePeriod(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 21:
		return "evening"
	default:
		return "night"
	}
}
