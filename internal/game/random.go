package game

import "math"

// PseudoRandom maps an integer seed to a float in [0,1) as frac(sin(seed)*10000).
func PseudoRandom(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

// roundTo rounds half toward +Inf at the given number of decimal places.
func roundTo(n float64, places int) float64 {
	if places < 1 {
		return math.Floor(n + 0.5)
	}
	m := math.Pow(10, float64(places))
	return math.Floor(n*m+0.5) / m
}

func floorTo(n float64, places int) float64 {
	m := math.Pow(10, float64(places))
	return math.Floor(n*m) / m
}

func distanceBetween(x1, y1, x2, y2 float64) float64 {
	q := (x2-x1)*(x2-x1) + (y2-y1)*(y2-y1)
	if q == 0 {
		return 0
	}
	return math.Sqrt(q)
}
