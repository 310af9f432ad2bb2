package chartspec

import "math"

// RenderableValidator rejects specs the plot backend cannot draw even
// though they are structurally well-formed: non-finite values, or a
// histogram over a zero-width value range.
type RenderableValidator struct{}

func (v *RenderableValidator) Name() string { return "renderable" }

func (v *RenderableValidator) Validate(s *ChartSpec, _ Kind) *ValidationError {
	for _, ser := range s.Series {
		for _, x := range ser.X {
			if !isFinite(x) {
				return &ValidationError{
					Validator: v.Name(),
					Message:   "series \"" + ser.Name + "\" contains a non-finite x value",
					Retryable: true,
				}
			}
		}
		for _, y := range ser.Y {
			if !isFinite(y) {
				return &ValidationError{
					Validator: v.Name(),
					Message:   "series \"" + ser.Name + "\" contains a non-finite y value",
					Retryable: true,
				}
			}
		}
	}

	if s.Kind == KindHistogram && len(s.Series) == 1 && len(s.Series[0].Y) > 0 {
		vals := s.Series[0].Y
		min, max := vals[0], vals[0]
		for _, y := range vals {
			min = math.Min(min, y)
			max = math.Max(max, y)
		}
		if min == max {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "histogram values are all identical",
				Retryable: true,
			}
		}
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// DefaultValidators returns the standard validator chain, run in order.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&RenderableValidator{},
	}
}
