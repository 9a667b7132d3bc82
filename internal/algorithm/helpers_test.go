package algorithm

import "strconv"

func ftoa(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	for _, r := range s {
		if r == '.' {
			return s
		}
	}
	return s + ".0"
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
