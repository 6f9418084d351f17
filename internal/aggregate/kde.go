package aggregate

import "math"

// KDECurve is a gaussian kernel density estimate evaluated on a fixed grid.
type KDECurve struct {
	X []float64
	Y []float64
}

// KDE estimates the density of values with a gaussian kernel and Scott's-rule
// bandwidth, evaluated at gridSize evenly spaced points spanning the data
// range widened by three bandwidths on each side. An empty input yields an
// empty curve.
func KDE(values []float64, gridSize int) KDECurve {
	n := len(values)
	if n == 0 || gridSize < 2 {
		return KDECurve{}
	}

	bw := bandwidth(values)

	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	lo, hi := minV-3*bw, maxV+3*bw

	curve := KDECurve{
		X: make([]float64, gridSize),
		Y: make([]float64, gridSize),
	}
	norm := 1 / (float64(n) * bw * math.Sqrt(2*math.Pi))
	for i := 0; i < gridSize; i++ {
		x := lo + (hi-lo)*float64(i)/float64(gridSize-1)
		var sum float64
		for _, v := range values {
			u := (x - v) / bw
			sum += math.Exp(-0.5 * u * u)
		}
		curve.X[i] = x
		curve.Y[i] = norm * sum
	}
	return curve
}

// bandwidth applies Scott's rule (std * n^(-1/5)). Degenerate inputs with
// zero variance fall back to a unit bandwidth so the curve stays drawable.
func bandwidth(values []float64) float64 {
	n := float64(len(values))

	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= n

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= n

	std := math.Sqrt(variance)
	if std == 0 {
		return 1
	}
	return std * math.Pow(n, -0.2)
}
