package app

import "strconv"

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
