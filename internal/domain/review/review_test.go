package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    models.Rating
	}{
		{"none", nil, models.Rating{Average: 0, Count: 0}},
		{"single", []int{4}, models.Rating{Average: 4, Count: 1}},
		{"thirds", []int{5, 4, 4}, models.Rating{Average: 4.33, Count: 3}},
		{"round up", []int{5, 5, 4}, models.Rating{Average: 4.67, Count: 3}},
		{"half", []int{4, 5}, models.Rating{Average: 4.5, Count: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.ratings))
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(&models.Review{Rating: 5}))
	require.Error(t, Validate(&models.Review{Rating: 0}))
	require.Error(t, Validate(&models.Review{Rating: 6}))
	require.Error(t, Validate(&models.Review{Rating: 3, Comment: strings.Repeat("x", 1001)}))
}

func TestPatchApply(t *testing.T) {
	r := &models.Review{Rating: 2, Comment: "meh"}
	rating := 4

	Patch{Rating: &rating}.Apply(r)

	assert.Equal(t, 4, r.Rating)
	assert.Equal(t, "meh", r.Comment)
}
