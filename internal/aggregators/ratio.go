package aggregators

import (
	"strconv"
	"strings"
)

// FormatRatio renders part/whole with two significant digits and a "%" suffix:
// 3/10 -> "0.3%", 1/3 -> "0.33%", 1/1 -> "1.0%", 1/100000 -> "1e-05%".
// Values that would print as a bare integer keep one decimal place when they
// have a single digit and switch to exponent form otherwise (12.5 -> "1.2e+01%").
// A non-positive whole yields "0.0%".
func FormatRatio(part, whole int, scale bool) string {
	if whole <= 0 {
		return "0.0%"
	}

	ratio := float64(part) / float64(whole)
	if scale {
		ratio *= 100
	}

	text := strconv.FormatFloat(ratio, 'g', 2, 64)
	if !strings.ContainsAny(text, ".e") {
		if len(text) == 1 {
			text += ".0"
		} else {
			text = trimMantissa(strconv.FormatFloat(ratio, 'e', 1, 64))
		}
	}
	return text + "%"
}

func trimMantissa(text string) string {
	mantissa, exponent, _ := strings.Cut(text, "e")
	mantissa = strings.TrimRight(mantissa, "0")
	mantissa = strings.TrimSuffix(mantissa, ".")
	return mantissa + "e" + exponent
}
