// Package chartspec defines the structured chart description produced by
// the LLM and the validators that gate it before rendering.
package chartspec

import "strings"

// Kind is the chart kind the renderer knows how to draw.
type Kind string

const (
	KindBar        Kind = "bar"
	KindGroupedBar Kind = "grouped_bar"
	KindLine       Kind = "line"
	KindScatter    Kind = "scatter"
	KindArea       Kind = "area"
	KindHistogram  Kind = "histogram"
)

// Kinds lists all supported chart kinds in display order.
func Kinds() []Kind {
	return []Kind{KindBar, KindGroupedBar, KindLine, KindScatter, KindArea, KindHistogram}
}

// Valid reports whether k is a supported kind.
func (k Kind) Valid() bool {
	switch k {
	case KindBar, KindGroupedBar, KindLine, KindScatter, KindArea, KindHistogram:
		return true
	}
	return false
}

// KindFromType maps a free-text chart type from the --type flag (e.g.
// "bar chart", "Scatter Plot") to a Kind. The second return is false when
// the requested type is not supported.
func KindFromType(s string) (Kind, bool) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(t, "grouped"):
		return KindGroupedBar, true
	case strings.Contains(t, "bar"), strings.Contains(t, "column"):
		return KindBar, true
	case strings.Contains(t, "histogram"):
		return KindHistogram, true
	case strings.Contains(t, "line"):
		return KindLine, true
	case strings.Contains(t, "scatter"):
		return KindScatter, true
	case strings.Contains(t, "area"):
		return KindArea, true
	}
	return "", false
}

// Series is one named data series.
// Bar, grouped bar and histogram charts use Y only; line, scatter and
// area charts pair X and Y point-wise.
type Series struct {
	Name string    `json:"name"`
	X    []float64 `json:"x,omitempty"`
	Y    []float64 `json:"y"`
}

// ChartSpec is the LLM-returned description of one chart. It is owned by
// a single pipeline iteration and discarded after rendering.
type ChartSpec struct {
	Kind       Kind     `json:"kind"`
	Title      string   `json:"title"`
	XAxisTitle string   `json:"x_axis_title"`
	YAxisTitle string   `json:"y_axis_title"`

	// Categories labels the X axis for bar and grouped bar charts.
	// Every series must have one Y value per category.
	Categories []string `json:"categories,omitempty"`

	Series []Series `json:"series"`
}
