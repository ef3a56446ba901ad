package service

import (
	"math"

	"github.com/velichkin/innerpath/internal/catalog"
	"github.com/velichkin/innerpath/models"
)

type aggregationService struct {
	catalog *catalog.Catalog
}

func NewAggregationService(catalog *catalog.Catalog) AggregationService {
	return &aggregationService{catalog: catalog}
}

// TraditionScores folds the user's ratings into per-tradition totals. Every
// selected tradition gets an entry even with zero ratings, so downstream
// percentage maps always cover the full selected set. Ratings whose
// tradition is outside the selected set are skipped, which can happen after
// a user narrows their selection mid-journey.
func (a *aggregationService) TraditionScores(user models.User, ratings []models.RatedPassage) map[string]*models.TraditionScore {
	selected := user.SelectedTraditions
	if len(selected) == 0 {
		selected = a.catalog.Traditions()
	}

	scores := make(map[string]*models.TraditionScore, len(selected))
	for _, tradition := range selected {
		scores[tradition] = &models.TraditionScore{}
	}

	for _, rating := range ratings {
		score, ok := scores[rating.Tradition]
		if !ok {
			continue
		}
		score.Total += rating.Score
		score.Count++
	}

	for _, score := range scores {
		if score.Count > 0 {
			score.Avg = float64(score.Total) / float64(score.Count)
		}
	}

	return scores
}

// TraditionPercentages normalizes the per-tradition averages against their
// sum, rounding each entry. With no rated traditions every percentage is
// zero rather than undefined.
func (a *aggregationService) TraditionPercentages(scores map[string]*models.TraditionScore) map[string]int {
	var sum float64
	for _, score := range scores {
		sum += score.Avg
	}

	percentages := make(map[string]int, len(scores))
	for tradition, score := range scores {
		if sum > 0 {
			percentages[tradition] = int(math.Round(score.Avg / sum * 100))
		} else {
			percentages[tradition] = 0
		}
	}

	return percentages
}
