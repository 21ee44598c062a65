package internal

import (
	"math"
	"strconv"
	"strings"
)

type rillNumber float64

func (n rillNumber) String() string {
	return formatNumber(float64(n))
}

// formatNumber prints the shortest decimal that round-trips
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// normalizeNumber is formatNumber with at least one fractional digit
func normalizeNumber(n float64) string {
	out := formatNumber(n)
	if math.IsNaN(n) || math.IsInf(n, 0) || strings.Contains(out, ".") {
		return out
	}
	return out + ".0"
}
