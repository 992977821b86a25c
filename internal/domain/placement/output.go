package placement

import (
	"fmt"
	"math"
	"strconv"
)

// DataAttribute is the attribute caller stylesheets key arrow and shadow
// direction off.
const DataAttribute = "data-placement"

// Style is the inline style applied to the floating panel.
type Style struct {
	Transform       string `json:"transform" yaml:"transform"`
	TransformOrigin string `json:"transform_origin" yaml:"transform_origin"`
	Position        string `json:"position" yaml:"position"`
}

// Output is the rendering contract consumed by tooltip, popover, dropdown
// and menu components.
type Output struct {
	FinalPlacement Placement         `json:"final_placement" yaml:"final_placement"`
	DataAttribute  map[string]string `json:"data_attribute" yaml:"data_attribute"`
	Style          Style             `json:"style" yaml:"style"`
	Arrow          Arrow             `json:"arrow" yaml:"arrow"`
}

// Output renders the result into the style/arrow descriptor.
func (r Result) Output() Output {
	return Output{
		FinalPlacement: r.Placement,
		DataAttribute:  map[string]string{DataAttribute: string(r.Placement)},
		Style: Style{
			Transform:       fmt.Sprintf("translate3d(%spx, %spx, 0)", formatPx(r.X), formatPx(r.Y)),
			TransformOrigin: r.TransformOrigin,
			Position:        "fixed",
		},
		Arrow: Arrow{Edge: r.Arrow.Edge, Percent: round2(r.Arrow.Percent)},
	}
}

func formatPx(v float64) string {
	return strconv.FormatFloat(round2(v), 'f', -1, 64)
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}
