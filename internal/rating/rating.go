// Package rating aggregates tutor reviews into the figures shown on the
// tutor profile.
package rating

import (
	"math"
	"strings"

	"github.com/a2sh3r/mindflex/internal/models"
)

const maxStars = 5

// AverageRating returns the mean rating rounded to one decimal, 0 without
// reviews.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10
}

// SuccessRate maps an average rating to a percentage. Every missing star
// costs two points; a tutor without reviews starts at 100.
func SuccessRate(avg float64) float64 {
	if avg == 0 {
		return 100
	}
	rate := 100 - (maxStars-avg)*2
	return math.Max(0, math.Min(100, rate))
}

// Stars renders a rating as five glyphs, full stars first.
func Stars(avg float64) string {
	full := int(math.Floor(avg))
	if full < 0 {
		full = 0
	}
	if full > maxStars {
		full = maxStars
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", maxStars-full)
}
