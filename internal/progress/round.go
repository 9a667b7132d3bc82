package progress

import "github.com/shopspring/decimal"

// Round rounds half away from zero to the given number of decimal places.
func Round(x float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(x).Round(places).Float64()
	return f
}
