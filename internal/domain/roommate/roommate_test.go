package roommate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/flatmate-finder/internal/models"
	"github.com/BruksfildServices01/flatmate-finder/internal/validators"
)

func validRequest() *models.RoommateRequest {
	r := &models.RoommateRequest{
		Title:      "Looking for a calm flatmate",
		Bio:        "Software engineer, tidy and quiet.",
		Location:   "Indiranagar",
		Budget:     models.Budget{Min: 15000, Max: 25000},
		RoomType:   "Shared Room",
		MoveInDate: time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	ApplyDefaults(r)
	return r
}

func TestApplyDefaults(t *testing.T) {
	r := validRequest()

	assert.Equal(t, 3, r.Lifestyle.Cleanliness)
	assert.Equal(t, 3, r.Lifestyle.SocialLevel)
	assert.Equal(t, "9-5", r.Lifestyle.WorkSchedule)
	assert.Equal(t, "flexible", r.Lifestyle.SleepSchedule)
	assert.Equal(t, "both", r.ContactPreference)
	assert.NotNil(t, r.PreferredAreas)
	require.NoError(t, Validate(r))
}

func TestCheckBudget(t *testing.T) {
	require.NoError(t, CheckBudget(models.Budget{Min: 30000, Max: 40000}))

	for _, b := range []models.Budget{{Min: 40000, Max: 30000}, {Min: 30000, Max: 30000}} {
		err := CheckBudget(b)
		var errs validators.Errors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, MessageBudgetRange, errs[0].Message)
	}
}

func TestValidateLifestyleBounds(t *testing.T) {
	r := validRequest()
	r.Lifestyle.Cleanliness = 6
	r.Lifestyle.WorkSchedule = "weekends"

	var errs validators.Errors
	require.ErrorAs(t, Validate(r), &errs)

	fields := map[string]bool{}
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	assert.True(t, fields["lifestyle.cleanliness"])
	assert.True(t, fields["lifestyle.workSchedule"])
	assert.Len(t, errs, 2)
}

func TestPatchApply(t *testing.T) {
	r := validRequest()
	budgetMax := 12000.0
	pets := true

	Patch{BudgetMax: &budgetMax, Lifestyle: &LifestylePatch{Pets: &pets}}.Apply(r)

	assert.Equal(t, 12000.0, r.Budget.Max)
	assert.True(t, r.Lifestyle.Pets)
	assert.Equal(t, 3, r.Lifestyle.Cleanliness)
	require.Error(t, CheckBudget(r.Budget))
}
