package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAgeBand(t *testing.T) {
	tests := []struct {
		age      int
		min, max int
	}{
		{0, 0, 19},
		{19, 0, 19},
		{20, 20, 29},
		{29, 20, 29},
		{30, 30, 39},
		{45, 40, 49},
		{59, 50, 59},
		{60, 60, 120},
		{120, 60, 120},
	}
	for _, tt := range tests {
		band, err := ResolveAgeBand(tt.age)
		require.NoError(t, err, "age %d", tt.age)
		assert.Equal(t, AgeBand{tt.min, tt.max}, band, "age %d", tt.age)
	}

	_, err := ResolveAgeBand(-1)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, ErrKindNegative, validationErr.Kind)

	_, err = ResolveAgeBand(121)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, ErrKindOutOfRange, validationErr.Kind)
}

func TestScoreFromBands(t *testing.T) {
	higher := &StandardBands{Cutoffs: [3]float64{10, 20, 30}, Direction: HigherIsBetter}
	tests := []struct {
		value    float64
		expected int
	}{
		{5, 1},
		{10, 2},
		{19.9, 2},
		{20, 3},
		{30, 4},
		{1000, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ScoreFromBands(tt.value, higher), "value %v", tt.value)
	}

	lower := &StandardBands{Cutoffs: [3]float64{30, 20, 10}, Direction: LowerIsBetter}
	tests = []struct {
		value    float64
		expected int
	}{
		{35, 1},
		{30, 2},
		{20, 3},
		{10, 4},
		{0, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ScoreFromBands(tt.value, lower), "value %v", tt.value)
	}
}

func TestCacheKeySharedAcrossBand(t *testing.T) {
	key25, err := CacheKey(TestPushUp, "male", 25, PushUpVariationStandard)
	require.NoError(t, err)
	assert.Equal(t, "push_up:male:20-29:standard", key25)

	// Every age in a band shares one key.
	key29, err := CacheKey(TestPushUp, "male", 29, PushUpVariationStandard)
	require.NoError(t, err)
	assert.Equal(t, key25, key29)

	key30, err := CacheKey(TestPushUp, "male", 30, PushUpVariationStandard)
	require.NoError(t, err)
	assert.NotEqual(t, key25, key30)

	_, err = CacheKey(TestPushUp, "male", -1, PushUpVariationStandard)
	assert.Error(t, err)
}

func TestFallbackSourceCoversEveryDefaultRow(t *testing.T) {
	src := NewFallbackSource()

	for _, row := range DefaultStandards() {
		bands, err := src.GetStandard(row.TestName, row.Gender, row.AgeMin, row.Variation)
		require.NoError(t, err, "%s/%s/%d", row.TestName, row.Gender, row.AgeMin)
		assert.Equal(t, row.Cutoffs, bands.Cutoffs)
		assert.Equal(t, row.Direction, bands.Direction)
	}
}

func TestFallbackSourceUnknownTest(t *testing.T) {
	src := NewFallbackSource()

	_, err := src.GetStandard("vertical_jump", "male", 25, "")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, ErrKindUnknownValue, validationErr.Kind)
}

type countingSource struct {
	inner StandardsSource
	calls int
}

func (c *countingSource) GetStandard(testName, gender string, age int, variation string) (*StandardBands, error) {
	c.calls++
	return c.inner.GetStandard(testName, gender, age, variation)
}

func TestCachedSourceMemoizesPerBand(t *testing.T) {
	counting := &countingSource{inner: NewFallbackSource()}
	cached := NewCachedSource(counting)

	for i := 0; i < 5; i++ {
		_, err := cached.GetStandard(TestPushUp, "male", 25, PushUpVariationStandard)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, counting.calls)

	// Same band, different age: still one underlying lookup.
	_, err := cached.GetStandard(TestPushUp, "male", 29, PushUpVariationStandard)
	require.NoError(t, err)
	assert.Equal(t, 1, counting.calls)

	_, err = cached.GetStandard(TestPushUp, "male", 35, PushUpVariationStandard)
	require.NoError(t, err)
	assert.Equal(t, 2, counting.calls)

	cached.Invalidate()
	_, err = cached.GetStandard(TestPushUp, "male", 25, PushUpVariationStandard)
	require.NoError(t, err)
	assert.Equal(t, 3, counting.calls)
}
