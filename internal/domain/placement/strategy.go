package placement

import "strings"

// Strategy governs whether and how the requested placement may change to
// fit the available space.
type Strategy string

const (
	// StrategyFixed never changes the request and skips the overflow guard.
	StrategyFixed Strategy = "fixed"
	// StrategyFlip swaps to the opposite side whenever the main side lacks space.
	StrategyFlip Strategy = "flip"
	// StrategyPreventOverflow keeps the side but corrects start/end alignment.
	StrategyPreventOverflow Strategy = "prevent-overflow"
	// StrategyAuto flips only when that improves fit and corrects alignment.
	StrategyAuto Strategy = "auto"
)

// DefaultStrategy is used for empty or unrecognized strategies.
const DefaultStrategy = StrategyAuto

var strategies = []Strategy{StrategyFixed, StrategyFlip, StrategyPreventOverflow, StrategyAuto}

// Strategies lists the supported strategies.
func Strategies() []Strategy {
	return append([]Strategy(nil), strategies...)
}

// ParseStrategy maps a string onto a Strategy, falling back to DefaultStrategy.
func ParseStrategy(value string) Strategy {
	s := Strategy(strings.ToLower(strings.TrimSpace(value)))
	if s.Valid() {
		return s
	}
	return DefaultStrategy
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	for _, candidate := range strategies {
		if s == candidate {
			return true
		}
	}
	return false
}

func (s Strategy) correctsAlignment() bool {
	return s == StrategyAuto || s == StrategyPreventOverflow
}

func (s Strategy) String() string {
	return string(s)
}

// Offset shifts the panel after the table lookup. Cross moves along the
// alignment axis, Main moves away from the anchor.
type Offset struct {
	Cross float64 `json:"cross" yaml:"cross"`
	Main  float64 `json:"main" yaml:"main"`
}

// ScalarOffset applies v along the main axis only.
func ScalarOffset(v float64) Offset {
	return Offset{Main: v}
}

// PairOffset builds an offset from an [x, y] pair: cross-axis then main-axis.
func PairOffset(cross, main float64) Offset {
	return Offset{Cross: cross, Main: main}
}
