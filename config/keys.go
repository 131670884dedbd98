package config

import (
	"fmt"
	"strconv"
)

// field binds one key to its Parameters slot.
type field struct {
	key string
	get func(*Parameters) string
	set func(*Parameters, string) error
}

func floatField(key string, ptr func(*Parameters) *float64) field {
	return field{
		key: key,
		get: func(p *Parameters) string { return strconv.FormatFloat(*ptr(p), 'g', -1, 64) },
		set: func(p *Parameters, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s=%q: %w", key, v, ErrInvalidValue)
			}
			*ptr(p) = f
			return nil
		},
	}
}

func intField(key string, ptr func(*Parameters) *int) field {
	return field{
		key: key,
		get: func(p *Parameters) string { return strconv.Itoa(*ptr(p)) },
		set: func(p *Parameters, v string) error {
			i, err := strconv.Atoi(v)
			if err != nil {
				// Parameter files written by other tools may carry "10.0".
				f, ferr := strconv.ParseFloat(v, 64)
				if ferr != nil || f != float64(int(f)) {
					return fmt.Errorf("%s=%q: %w", key, v, ErrInvalidValue)
				}
				i = int(f)
			}
			*ptr(p) = i
			return nil
		},
	}
}

func boolField(key string, ptr func(*Parameters) *bool) field {
	return field{
		key: key,
		get: func(p *Parameters) string { return strconv.FormatBool(*ptr(p)) },
		set: func(p *Parameters, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s=%q: %w", key, v, ErrInvalidValue)
			}
			*ptr(p) = b
			return nil
		},
	}
}

// fields lists every key in write order.
var fields = []field{
	floatField("intensity-scaling", func(p *Parameters) *float64 { return &p.IntensityScaling }),
	floatField("smoothing", func(p *Parameters) *float64 { return &p.Smoothing }),
	floatField("grad-diff", func(p *Parameters) *float64 { return &p.RidgeThreshold }),
	floatField("foreground", func(p *Parameters) *float64 { return &p.Foreground }),
	floatField("background", func(p *Parameters) *float64 { return &p.Background }),
	floatField("spacing", func(p *Parameters) *float64 { return &p.Spacing }),
	boolField("init-z", func(p *Parameters) *bool { return &p.InitZ }),
	floatField("minimum-size", func(p *Parameters) *float64 { return &p.MinimumLength }),
	intField("max-iterations", func(p *Parameters) *int { return &p.MaxIterations }),
	floatField("change-threshold", func(p *Parameters) *float64 { return &p.ChangeThreshold }),
	intField("check-period", func(p *Parameters) *int { return &p.CheckPeriod }),
	floatField("alpha", func(p *Parameters) *float64 { return &p.Alpha }),
	floatField("beta", func(p *Parameters) *float64 { return &p.Beta }),
	floatField("gamma", func(p *Parameters) *float64 { return &p.Gamma }),
	floatField("weight", func(p *Parameters) *float64 { return &p.Weight }),
	floatField("stretch", func(p *Parameters) *float64 { return &p.Stretch }),
	intField("nsector", func(p *Parameters) *int { return &p.NSector }),
	intField("radial-near", func(p *Parameters) *int { return &p.RadialNear }),
	intField("radial-far", func(p *Parameters) *int { return &p.RadialFar }),
	intField("delta", func(p *Parameters) *int { return &p.Delta }),
	floatField("overlap-threshold", func(p *Parameters) *float64 { return &p.OverlapThreshold }),
	floatField("grouping-distance-threshold", func(p *Parameters) *float64 { return &p.GroupingDistanceThreshold }),
	intField("grouping-delta", func(p *Parameters) *int { return &p.GroupingDelta }),
	floatField("direction-threshold", func(p *Parameters) *float64 { return &p.DirectionThreshold }),
	boolField("damp-z", func(p *Parameters) *bool { return &p.DampZ }),
}

var fieldIndex = func() map[string]int {
	m := make(map[string]int, len(fields))
	for i, f := range fields {
		m[f.key] = i
	}
	return m
}()

// Keys returns every parameter key in write order.
func Keys() []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.key
	}

	return out
}

// IsKey reports whether name is a parameter key.
func IsKey(name string) bool {
	_, ok := fieldIndex[name]
	return ok
}

// Assign parses value for the parameter named name.
// On error p is left unchanged.
func (p *Parameters) Assign(name, value string) error {
	i, ok := fieldIndex[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownParameter)
	}

	return fields[i].set(p, value)
}

// Value returns the text form of the parameter named name.
func (p Parameters) Value(name string) (string, error) {
	i, ok := fieldIndex[name]
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownParameter)
	}

	return fields[i].get(&p), nil
}
