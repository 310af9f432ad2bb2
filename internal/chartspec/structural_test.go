package chartspec

import (
	"strings"
	"testing"
)

func validBarSpec() *ChartSpec {
	return &ChartSpec{
		Kind:       KindBar,
		Title:      "Quarterly Revenue",
		XAxisTitle: "Quarter",
		YAxisTitle: "Revenue (M$)",
		Categories: []string{"Q1", "Q2", "Q3", "Q4"},
		Series: []Series{
			{Name: "Revenue", Y: []float64{12.4, 15.1, 14.8, 18.2}},
		},
	}
}

func validLineSpec() *ChartSpec {
	return &ChartSpec{
		Kind:       KindLine,
		Title:      "Temperature Over Time",
		XAxisTitle: "Day",
		YAxisTitle: "°C",
		Series: []Series{
			{Name: "Berlin", X: []float64{1, 2, 3}, Y: []float64{4.5, 6.1, 5.2}},
		},
	}
}

func TestStructural_ValidSpecs(t *testing.T) {
	v := &StructuralValidator{}

	if err := v.Validate(validBarSpec(), KindBar); err != nil {
		t.Errorf("bar: unexpected error: %v", err)
	}
	if err := v.Validate(validLineSpec(), KindLine); err != nil {
		t.Errorf("line: unexpected error: %v", err)
	}

	hist := &ChartSpec{
		Kind:   KindHistogram,
		Title:  "Response Times",
		Series: []Series{{Name: "ms", Y: []float64{10, 12, 9, 30, 21, 14}}},
	}
	if err := v.Validate(hist, KindHistogram); err != nil {
		t.Errorf("histogram: unexpected error: %v", err)
	}
}

func TestStructural_Failures(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		name    string
		mutate  func(*ChartSpec)
		spec    func() *ChartSpec
		wantMsg string
	}{
		{
			name:    "empty title",
			spec:    validBarSpec,
			mutate:  func(s *ChartSpec) { s.Title = "" },
			wantMsg: "title is empty",
		},
		{
			name:    "no series",
			spec:    validBarSpec,
			mutate:  func(s *ChartSpec) { s.Series = nil },
			wantMsg: "no data series",
		},
		{
			name:    "unknown kind",
			spec:    validBarSpec,
			mutate:  func(s *ChartSpec) { s.Kind = "pie" },
			wantMsg: "unknown chart kind",
		},
		{
			name:    "unnamed series",
			spec:    validBarSpec,
			mutate:  func(s *ChartSpec) { s.Series[0].Name = "" },
			wantMsg: "has no name",
		},
		{
			name:    "category mismatch",
			spec:    validBarSpec,
			mutate:  func(s *ChartSpec) { s.Categories = []string{"Q1", "Q2"} },
			wantMsg: "values for 2 categories",
		},
		{
			name:    "bar without categories",
			spec:    validBarSpec,
			mutate:  func(s *ChartSpec) { s.Categories = nil },
			wantMsg: "requires category labels",
		},
		{
			name:    "line x/y mismatch",
			spec:    validLineSpec,
			mutate:  func(s *ChartSpec) { s.Series[0].X = []float64{1} },
			wantMsg: "x values for",
		},
		{
			name: "single point line",
			spec: validLineSpec,
			mutate: func(s *ChartSpec) {
				s.Series[0].X = []float64{1}
				s.Series[0].Y = []float64{2}
			},
			wantMsg: "at least 2 points",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.spec()
			tt.mutate(s)
			err := v.Validate(s, s.Kind)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Message, tt.wantMsg) {
				t.Errorf("message %q does not contain %q", err.Message, tt.wantMsg)
			}
			if !err.Retryable {
				t.Error("structural failures should be retryable")
			}
		})
	}
}

func TestStructural_KindMismatch(t *testing.T) {
	v := &StructuralValidator{}
	err := v.Validate(validBarSpec(), KindLine)
	if err == nil {
		t.Fatal("expected kind mismatch error")
	}
	if !strings.Contains(err.Message, "does not match requested") {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestStructural_GroupedBarNeedsTwoSeries(t *testing.T) {
	v := &StructuralValidator{}
	s := validBarSpec()
	s.Kind = KindGroupedBar
	if err := v.Validate(s, KindGroupedBar); err == nil {
		t.Fatal("expected error for single-series grouped bar")
	}

	s.Series = append(s.Series, Series{Name: "Costs", Y: []float64{8, 9, 10, 11}})
	if err := v.Validate(s, KindGroupedBar); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestKindFromType(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"bar chart", KindBar, true},
		{"Bar Chart", KindBar, true},
		{"column chart", KindBar, true},
		{"grouped bar chart", KindGroupedBar, true},
		{"line chart", KindLine, true},
		{"scatter plot", KindScatter, true},
		{"area chart", KindArea, true},
		{"histogram", KindHistogram, true},
		{"pie chart", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := KindFromType(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("KindFromType(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
