package scoring

import "sync"

// DefaultStandard is one row of the built-in fallback table. The same
// rows seed the configurable standards store.
type DefaultStandard struct {
	TestName  string
	Gender    string
	AgeMin    int
	AgeMax    int
	Variation string
	Cutoffs   [3]float64
	Direction Direction
}

// bandCutoffs lists cutoffs for the six default age bands, in band order.
type bandCutoffs [6][3]float64

func expand(testName, gender, variation string, dir Direction, cutoffs bandCutoffs) []DefaultStandard {
	rows := make([]DefaultStandard, 0, len(defaultAgeBands))
	for i, band := range defaultAgeBands {
		rows = append(rows, DefaultStandard{
			TestName:  testName,
			Gender:    gender,
			AgeMin:    band.Min,
			AgeMax:    band.Max,
			Variation: variation,
			Cutoffs:   cutoffs[i],
			Direction: dir,
		})
	}
	return rows
}

// Fallback thresholds, ACSM-style adult norms adjusted per age band.
// Cutoffs are the minimum raw values for scores 2, 3 and 4.
func defaultStandardRows() []DefaultStandard {
	var rows []DefaultStandard
	add := func(r []DefaultStandard) { rows = append(rows, r...) }

	// Push-ups: repetitions to fatigue, variation-specific rows.
	add(expand(TestPushUp, "male", PushUpVariationStandard, HigherIsBetter, bandCutoffs{
		{24, 31, 39}, {22, 29, 36}, {17, 24, 30}, {11, 18, 25}, {9, 14, 21}, {6, 10, 18},
	}))
	add(expand(TestPushUp, "female", PushUpVariationStandard, HigherIsBetter, bandCutoffs{
		{18, 25, 32}, {15, 21, 30}, {13, 20, 27}, {11, 15, 24}, {7, 11, 21}, {5, 10, 17},
	}))
	add(expand(TestPushUp, "male", PushUpVariationModified, HigherIsBetter, bandCutoffs{
		{20, 26, 33}, {18, 24, 31}, {14, 20, 26}, {9, 15, 21}, {7, 12, 18}, {5, 8, 15},
	}))
	add(expand(TestPushUp, "female", PushUpVariationModified, HigherIsBetter, bandCutoffs{
		{15, 21, 27}, {13, 18, 25}, {11, 17, 23}, {9, 13, 20}, {6, 9, 17}, {4, 8, 14},
	}))
	add(expand(TestPushUp, "male", PushUpVariationWall, HigherIsBetter, bandCutoffs{
		{28, 36, 45}, {26, 34, 42}, {21, 28, 36}, {15, 22, 30}, {12, 18, 26}, {8, 14, 22},
	}))
	add(expand(TestPushUp, "female", PushUpVariationWall, HigherIsBetter, bandCutoffs{
		{22, 30, 38}, {20, 27, 36}, {16, 24, 32}, {13, 19, 28}, {10, 15, 25}, {7, 13, 20},
	}))

	// Single-leg balance: hold seconds of the weaker side, eyes open.
	add(expand(TestSingleLegBalance, "male", "", HigherIsBetter, bandCutoffs{
		{18, 32, 43}, {15, 30, 40}, {12, 25, 37}, {10, 20, 30}, {8, 15, 24}, {5, 10, 18},
	}))
	add(expand(TestSingleLegBalance, "female", "", HigherIsBetter, bandCutoffs{
		{18, 32, 43}, {15, 30, 40}, {12, 25, 36}, {9, 19, 29}, {7, 14, 22}, {4, 9, 16},
	}))

	// Farmer's carry: total hold time in seconds, endurance framing
	// (longer is better).
	add(expand(TestFarmerCarry, "male", "", HigherIsBetter, bandCutoffs{
		{32, 48, 62}, {30, 45, 60}, {27, 40, 55}, {24, 35, 48}, {20, 30, 40}, {15, 24, 33},
	}))
	add(expand(TestFarmerCarry, "female", "", HigherIsBetter, bandCutoffs{
		{27, 40, 52}, {25, 38, 50}, {22, 34, 46}, {19, 29, 40}, {16, 24, 33}, {12, 19, 27},
	}))

	// Toe touch: signed reach distance in cm past the toes.
	add(expand(TestToeTouch, "male", "", HigherIsBetter, bandCutoffs{
		{-9, 1, 6}, {-10, 0, 5}, {-12, -2, 4}, {-14, -4, 2}, {-16, -6, 0}, {-18, -8, -2},
	}))
	add(expand(TestToeTouch, "female", "", HigherIsBetter, bandCutoffs{
		{-4, 3, 9}, {-5, 2, 8}, {-7, 0, 6}, {-9, -2, 4}, {-11, -4, 2}, {-13, -6, 0},
	}))

	// Harvard step test: physical efficiency index. The index formula
	// already accounts for recovery heart rate, so the bands are shared
	// across ages.
	stepBands := bandCutoffs{
		{54, 65, 75}, {54, 65, 75}, {54, 65, 75}, {54, 65, 75}, {54, 65, 75}, {54, 65, 75},
	}
	add(expand(TestHarvardStep, "male", "", HigherIsBetter, stepBands))
	add(expand(TestHarvardStep, "female", "", HigherIsBetter, stepBands))

	return rows
}

// DefaultStandards returns the built-in fallback threshold table.
func DefaultStandards() []DefaultStandard {
	return defaultStandardRows()
}

type fallbackSource struct {
	once  sync.Once
	index map[string]*StandardBands
}

// NewFallbackSource returns a StandardsSource backed solely by the
// built-in default table. Production code wraps it behind the configurable
// store; tests use it directly for deterministic thresholds.
func NewFallbackSource() StandardsSource {
	return &fallbackSource{}
}

func (f *fallbackSource) buildIndex() {
	f.index = make(map[string]*StandardBands)
	for _, row := range defaultStandardRows() {
		key, err := CacheKey(row.TestName, row.Gender, row.AgeMin, row.Variation)
		if err != nil {
			continue
		}
		f.index[key] = &StandardBands{Cutoffs: row.Cutoffs, Direction: row.Direction}
	}
}

func (f *fallbackSource) GetStandard(testName, gender string, age int, variation string) (*StandardBands, error) {
	f.once.Do(f.buildIndex)
	key, err := CacheKey(testName, gender, age, variation)
	if err != nil {
		return nil, err
	}
	if bands, ok := f.index[key]; ok {
		return bands, nil
	}
	return nil, errUnknownValue("test_name", testName+"/"+variation)
}

// CachedSource memoizes lookups from an underlying source for the
// duration of a batch calculation. Safe for concurrent readers.
type CachedSource struct {
	source StandardsSource
	mu     sync.RWMutex
	cache  map[string]*StandardBands
}

func NewCachedSource(source StandardsSource) *CachedSource {
	return &CachedSource{
		source: source,
		cache:  make(map[string]*StandardBands),
	}
}

func (c *CachedSource) GetStandard(testName, gender string, age int, variation string) (*StandardBands, error) {
	key, err := CacheKey(testName, gender, age, variation)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	bands, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return bands, nil
	}

	bands, err = c.source.GetStandard(testName, gender, age, variation)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[key] = bands
	c.mu.Unlock()
	return bands, nil
}

// Invalidate drops all memoized entries. Callers must invalidate after
// the underlying standards are edited.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.cache = make(map[string]*StandardBands)
	c.mu.Unlock()
}
