package utils

import (
	"math"
	"strconv"
	"strings"
)

type Formatter struct {
}

// QuantityPrecision counts fractional digits of a quoted quantity string.
// A string that is not a number at all counts as zero digits.
func (m *Formatter) QuantityPrecision(referenceQty string) int {
	if _, err := strconv.ParseFloat(referenceQty, 64); err != nil {
		return 0
	}

	split := strings.SplitN(referenceQty, ".", 2)
	if len(split) < 2 {
		return 0
	}

	return len(split[1])
}

// QuantizeQuantity rounds a raw quantity down to the largest multiple of the
// step size implied by the reference quantity string. A reference with no
// fractional digits still gets a 0.1 step, which keeps parity with markets
// quoting fractional lots but can produce a too-granular quantity on
// integer-lot markets.
func (m *Formatter) QuantizeQuantity(raw float64, referenceQty string) float64 {
	if raw <= 0 {
		return 0.00
	}

	precision := m.QuantityPrecision(referenceQty)
	if precision > 0 {
		ratio := math.Pow(10, float64(precision))
		return math.Floor(raw*ratio) / ratio
	}

	return math.Floor(raw*10) / 10
}

func (m *Formatter) Round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func (m *Formatter) ToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(m.Round(num*output)) / output
}
