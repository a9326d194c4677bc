package norms

// DefaultNormativeDatum is one row of the built-in normative table used
// to seed the configurable store. Unlike scoring standards there is no
// runtime fallback: a missing normative row simply yields nil results.
type DefaultNormativeDatum struct {
	TestName string
	Gender   string
	AgeMin   int
	AgeMax   int
	Mean     float64
	StdDev   float64
	Sample   string
}

type bandStat struct {
	mean float64
	sd   float64
}

func expand(testName, gender, sample string, stats [6]bandStat) []DefaultNormativeDatum {
	bands := [6][2]int{{0, 19}, {20, 29}, {30, 39}, {40, 49}, {50, 59}, {60, 120}}
	rows := make([]DefaultNormativeDatum, 0, len(bands))
	for i, band := range bands {
		rows = append(rows, DefaultNormativeDatum{
			TestName: testName,
			Gender:   gender,
			AgeMin:   band[0],
			AgeMax:   band[1],
			Mean:     stats[i].mean,
			StdDev:   stats[i].sd,
			Sample:   sample,
		})
	}
	return rows
}

// DefaultNormativeRows returns the built-in population statistics,
// ACSM-style adult reference values.
func DefaultNormativeRows() []DefaultNormativeDatum {
	const sample = "ACSM adult reference population"
	var rows []DefaultNormativeDatum
	add := func(r []DefaultNormativeDatum) { rows = append(rows, r...) }

	add(expand("push_up", "male", sample, [6]bandStat{
		{30, 9}, {28.5, 8.2}, {22.5, 7.8}, {17, 7.1}, {13, 6.4}, {10, 5.8},
	}))
	add(expand("push_up", "female", sample, [6]bandStat{
		{24, 8.5}, {21, 8.0}, {19, 7.4}, {15, 6.8}, {11, 6.0}, {9, 5.2},
	}))

	add(expand("single_leg_balance", "male", sample, [6]bandStat{
		{33, 12}, {30, 11}, {26, 10}, {21, 9}, {16, 8}, {11, 6},
	}))
	add(expand("single_leg_balance", "female", sample, [6]bandStat{
		{33, 12}, {30, 11}, {25, 10}, {20, 9}, {15, 7}, {10, 6},
	}))

	add(expand("farmer_carry", "male", sample, [6]bandStat{
		{48, 14}, {45, 13}, {41, 12}, {36, 11}, {30, 10}, {24, 8},
	}))
	add(expand("farmer_carry", "female", sample, [6]bandStat{
		{40, 12}, {38, 12}, {34, 11}, {29, 10}, {24, 8}, {19, 7},
	}))

	add(expand("toe_touch", "male", sample, [6]bandStat{
		{1, 8}, {0, 8}, {-2, 8}, {-4, 9}, {-6, 9}, {-8, 9},
	}))
	add(expand("toe_touch", "female", sample, [6]bandStat{
		{4, 7}, {3, 7}, {1, 7}, {-1, 8}, {-3, 8}, {-5, 8},
	}))

	add(expand("harvard_step", "male", sample, [6]bandStat{
		{66, 12}, {65, 12}, {63, 12}, {61, 11}, {58, 11}, {55, 10},
	}))
	add(expand("harvard_step", "female", sample, [6]bandStat{
		{64, 12}, {63, 12}, {61, 11}, {59, 11}, {56, 10}, {53, 10},
	}))

	return rows
}
