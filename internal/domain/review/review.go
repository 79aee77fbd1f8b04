package review

import (
	"math"
	"unicode/utf8"

	"github.com/BruksfildServices01/flatmate-finder/internal/models"
	"github.com/BruksfildServices01/flatmate-finder/internal/validators"
)

const (
	MessageDuplicate = "You have already reviewed this listing"
	MessageOwn       = "You cannot review your own listing"
)

type Patch struct {
	Rating  *int
	Comment *string
}

func (p Patch) Apply(r *models.Review) {
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.Comment != nil {
		r.Comment = *p.Comment
	}
}

func Validate(r *models.Review) error {
	var errs validators.Errors
	if r.Rating < 1 || r.Rating > 5 {
		errs.Add("rating", "Rating must be between 1 and 5")
	}
	if utf8.RuneCountInString(r.Comment) > 1000 {
		errs.Add("comment", "Comment cannot exceed 1000 characters")
	}
	return errs.Err()
}

// Aggregate computes a listing rating from the ratings of its reviews:
// the mean rounded to two decimals and the count. No ratings yields 0/0.
func Aggregate(ratings []int) models.Rating {
	if len(ratings) == 0 {
		return models.Rating{}
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	avg := float64(sum) / float64(len(ratings))
	return models.Rating{
		Average: math.Round(avg*100) / 100,
		Count:   len(ratings),
	}
}
