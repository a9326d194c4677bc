package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateCategoriesMapping(t *testing.T) {
	categories := AggregateCategories(TestScores{
		PushUp:           Calculated(4),
		FarmerCarry:      Calculated(2),
		ToeTouch:         Calculated(3),
		ShoulderMobility: Calculated(3),
		SingleLegBalance: Calculated(1),
		OverheadSquat:    Calculated(4),
		HarvardStep:      Calculated(2),
	})

	// strength: mean(4,2)=3 -> 66.7, mobility: 3 -> 66.7,
	// balance: mean(1,4)=2.5 -> 50, cardio: 2 -> 33.3.
	require.NotNil(t, categories.Strength)
	assert.Equal(t, 66.7, *categories.Strength)
	require.NotNil(t, categories.Mobility)
	assert.Equal(t, 66.7, *categories.Mobility)
	require.NotNil(t, categories.Balance)
	assert.Equal(t, 50.0, *categories.Balance)
	require.NotNil(t, categories.Cardio)
	assert.Equal(t, 33.3, *categories.Cardio)
}

func TestAggregateCategoriesNormalizationEndpoints(t *testing.T) {
	categories := AggregateCategories(TestScores{
		PushUp:      Calculated(1),
		FarmerCarry: Calculated(1),
		HarvardStep: Calculated(4),
	})

	require.NotNil(t, categories.Strength)
	assert.Equal(t, 0.0, *categories.Strength)
	require.NotNil(t, categories.Cardio)
	assert.Equal(t, 100.0, *categories.Cardio)
}

// A skipped test is excluded from its category average, never counted as
// zero.
func TestAggregateCategoriesSkippedMember(t *testing.T) {
	categories := AggregateCategories(TestScores{
		PushUp: Calculated(4),
		// FarmerCarry skipped.
	})

	require.NotNil(t, categories.Strength)
	assert.Equal(t, 100.0, *categories.Strength)
	assert.Nil(t, categories.Mobility)
	assert.Nil(t, categories.Balance)
	assert.Nil(t, categories.Cardio)
}

func TestAggregateCategoriesAllNil(t *testing.T) {
	categories := AggregateCategories(TestScores{})

	assert.Nil(t, categories.Strength)
	assert.Nil(t, categories.Mobility)
	assert.Nil(t, categories.Balance)
	assert.Nil(t, categories.Cardio)
}

// Overridden scores feed the averages the same way calculated ones do.
func TestAggregateCategoriesOverriddenMember(t *testing.T) {
	categories := AggregateCategories(TestScores{
		SingleLegBalance: Calculated(4),
		OverheadSquat:    Overridden(3.4),
	})

	// mean(4, 3.4) = 3.7 -> 90.
	require.NotNil(t, categories.Balance)
	assert.Equal(t, 90.0, *categories.Balance)
}
