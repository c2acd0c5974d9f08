package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDivide divide a por b, retornando zero quando o denominador é zero.
// Escolha deliberada do painel: razões com denominador zero viram 0, não erro.
func SafeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}

	return a / b
}
