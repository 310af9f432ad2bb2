package chartspec

import "fmt"

// Limits on series shape. The point of the tool is legible chart images;
// anything past these bounds renders as noise at 800x600.
const (
	maxSeries          = 8
	maxPointsPerSeries = 64
	minHistogramValues = 5
)

// StructuralValidator checks that required fields are present, the kind
// matches the request, and the series shapes are internally consistent.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(s *ChartSpec, requested Kind) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf(format, args...),
			Retryable: true,
		}
	}

	if !s.Kind.Valid() {
		return fail("unknown chart kind %q", s.Kind)
	}
	if requested != "" && s.Kind != requested {
		return fail("chart kind %q does not match requested %q", s.Kind, requested)
	}
	if s.Title == "" {
		return fail("title is empty")
	}
	if len(s.Series) == 0 {
		return fail("no data series")
	}
	if len(s.Series) > maxSeries {
		return fail("%d series exceeds the maximum of %d", len(s.Series), maxSeries)
	}

	for i, ser := range s.Series {
		if ser.Name == "" {
			return fail("series %d has no name", i)
		}
		if len(ser.Y) == 0 {
			return fail("series %q has no values", ser.Name)
		}
		if len(ser.Y) > maxPointsPerSeries {
			return fail("series %q has %d values, maximum is %d", ser.Name, len(ser.Y), maxPointsPerSeries)
		}
	}

	switch s.Kind {
	case KindBar, KindGroupedBar:
		if len(s.Categories) == 0 {
			return fail("%s chart requires category labels", s.Kind)
		}
		for _, ser := range s.Series {
			if len(ser.Y) != len(s.Categories) {
				return fail("series %q has %d values for %d categories", ser.Name, len(ser.Y), len(s.Categories))
			}
		}
		if s.Kind == KindGroupedBar && len(s.Series) < 2 {
			return fail("grouped bar chart requires at least 2 series")
		}

	case KindLine, KindScatter, KindArea:
		for _, ser := range s.Series {
			if len(ser.X) != len(ser.Y) {
				return fail("series %q has %d x values for %d y values", ser.Name, len(ser.X), len(ser.Y))
			}
			if len(ser.Y) < 2 {
				return fail("series %q needs at least 2 points", ser.Name)
			}
		}

	case KindHistogram:
		if len(s.Series) != 1 {
			return fail("histogram takes exactly one series, got %d", len(s.Series))
		}
		if len(s.Series[0].Y) < minHistogramValues {
			return fail("histogram needs at least %d values", minHistogramValues)
		}
	}

	return nil
}
