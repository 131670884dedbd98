package config

// Parameters is the full extraction parameter set.
type Parameters struct {
	// Image preprocessing.
	IntensityScaling float64 `yaml:"intensity-scaling"` // 0 selects 1/max intensity
	Smoothing        float64 `yaml:"smoothing"`         // Gaussian sigma for 3-D gradients

	// Candidate generation.
	RidgeThreshold float64 `yaml:"grad-diff"`
	Foreground     float64 `yaml:"foreground"`
	Background     float64 `yaml:"background"`
	InitZ          bool    `yaml:"init-z"`

	// Snake shape and evolution.
	Spacing         float64 `yaml:"spacing"`
	MinimumLength   float64 `yaml:"minimum-size"`
	MaxIterations   int     `yaml:"max-iterations"`
	ChangeThreshold float64 `yaml:"change-threshold"`
	CheckPeriod     int     `yaml:"check-period"`
	Alpha           float64 `yaml:"alpha"`
	Beta            float64 `yaml:"beta"`
	Gamma           float64 `yaml:"gamma"`
	Weight          float64 `yaml:"weight"`
	Stretch         float64 `yaml:"stretch"`
	NSector         int     `yaml:"nsector"`
	RadialNear      int     `yaml:"radial-near"`
	RadialFar       int     `yaml:"radial-far"`
	Delta           int     `yaml:"delta"`
	DampZ           bool    `yaml:"damp-z"`

	// Overlap and network reconstruction.
	OverlapThreshold          float64 `yaml:"overlap-threshold"`
	GroupingDistanceThreshold float64 `yaml:"grouping-distance-threshold"`
	GroupingDelta             int     `yaml:"grouping-delta"`
	DirectionThreshold        float64 `yaml:"direction-threshold"`
}

// Default returns the stock parameter set.
func Default() Parameters {
	return Parameters{
		IntensityScaling: 0,
		Smoothing:        1.0,

		RidgeThreshold: 0.01,
		Foreground:     65535,
		Background:     0,
		InitZ:          false,

		Spacing:         1.0,
		MinimumLength:   10,
		MaxIterations:   10000,
		ChangeThreshold: 0.1,
		CheckPeriod:     100,
		Alpha:           0.01,
		Beta:            0.1,
		Gamma:           2,
		Weight:          0.1,
		Stretch:         0.2,
		NSector:         8,
		RadialNear:      4,
		RadialFar:       8,
		Delta:           4,
		DampZ:           false,

		OverlapThreshold:          1,
		GroupingDistanceThreshold: 4,
		GroupingDelta:             8,
		DirectionThreshold:        2.1,
	}
}
