package config

import "fmt"

// Validate checks parameter ranges.
func (p Parameters) Validate() error {
	switch {
	case p.Spacing <= 0:
		return fmt.Errorf("spacing must be > 0: %w", ErrInvalidParameter)
	case p.MinimumLength < 0:
		return fmt.Errorf("minimum-size must be >= 0: %w", ErrInvalidParameter)
	case p.MaxIterations <= 0:
		return fmt.Errorf("max-iterations must be > 0: %w", ErrInvalidParameter)
	case p.CheckPeriod <= 0:
		return fmt.Errorf("check-period must be > 0: %w", ErrInvalidParameter)
	case p.ChangeThreshold < 0:
		return fmt.Errorf("change-threshold must be >= 0: %w", ErrInvalidParameter)
	case p.Alpha < 0 || p.Beta < 0:
		return fmt.Errorf("alpha and beta must be >= 0: %w", ErrInvalidParameter)
	case p.Gamma <= 0:
		return fmt.Errorf("gamma must be > 0: %w", ErrInvalidParameter)
	case p.Foreground < p.Background:
		return fmt.Errorf("foreground must be >= background: %w", ErrInvalidParameter)
	case p.RidgeThreshold < 0:
		return fmt.Errorf("grad-diff must be >= 0: %w", ErrInvalidParameter)
	case p.NSector <= 0:
		return fmt.Errorf("nsector must be > 0: %w", ErrInvalidParameter)
	case p.RadialNear < 0 || p.RadialFar < p.RadialNear:
		return fmt.Errorf("radial-near must be in [0, radial-far]: %w", ErrInvalidParameter)
	case p.Delta < 1:
		return fmt.Errorf("delta must be >= 1: %w", ErrInvalidParameter)
	case p.OverlapThreshold < 0 || p.GroupingDistanceThreshold < 0:
		return fmt.Errorf("distance thresholds must be >= 0: %w", ErrInvalidParameter)
	case p.GroupingDelta < 1:
		return fmt.Errorf("grouping-delta must be >= 1: %w", ErrInvalidParameter)
	case p.DirectionThreshold < 0:
		return fmt.Errorf("direction-threshold must be >= 0: %w", ErrInvalidParameter)
	}

	return nil
}
