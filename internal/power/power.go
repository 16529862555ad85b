// Package power estimates the statistical power of a two-sided mean
// comparison per group.
//
// Calculate uses the normal approximation
//
//	power = 1 - Φ(z - δ) + Φ(-z - δ),  z = Φ⁻¹(1 - α/2),  δ = d·√(n/2)
//
// where δ assumes two independent groups of equal size n. Callers pass a
// single group's size as n, so the result is an approximation of the
// per-arm case and is kept that way for parity with existing reports.
package power

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/nconklindev/hitlisten/internal/types"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultEffectSize is a medium effect (Cohen's d).
	DefaultEffectSize = 0.5
	DefaultAlpha      = 0.05

	GoodThreshold       = 0.80
	AcceptableThreshold = 0.60
)

// Rating is a qualitative grade of a power value.
type Rating string

const (
	Good         Rating = "good"
	Acceptable   Rating = "acceptable"
	Insufficient Rating = "insufficient"
)

// Rate grades p against the 0.80 / 0.60 thresholds.
func Rate(p float64) Rating {
	switch {
	case p >= GoodThreshold:
		return Good
	case p >= AcceptableThreshold:
		return Acceptable
	default:
		return Insufficient
	}
}

// Calculate returns the power of a two-sided test at sample size n.
func Calculate(n int, effectSize, alpha float64) float64 {
	z := distuv.UnitNormal.Quantile(1 - alpha/2)
	delta := effectSize * math.Sqrt(float64(n)/2)
	return 1 - distuv.UnitNormal.CDF(z-delta) + distuv.UnitNormal.CDF(-z-delta)
}

// GroupPower is the power computed for one group.
type GroupPower struct {
	Name   string
	Size   int
	Power  float64
	Rating Rating
}

// Result holds per-group power in input order plus summary statistics.
type Result struct {
	EffectSize float64
	Alpha      float64
	Groups     []GroupPower
	Mean       float64
	Min        float64
	Max        float64
}

// Power returns the power recorded for name.
func (r Result) Power(name string) (float64, bool) {
	for _, g := range r.Groups {
		if g.Name == name {
			return g.Power, true
		}
	}
	return 0, false
}

// Analyze computes power for every non-null group size. Null sizes are
// skipped; with no groups left Mean, Min and Max are all zero.
func Analyze(sizes types.GroupSizes, effectSize, alpha float64) Result {
	result := Result{EffectSize: effectSize, Alpha: alpha}

	var powers stats.Float64Data
	for _, g := range sizes {
		if !g.Size.Valid {
			continue
		}
		p := Calculate(g.Size.Value, effectSize, alpha)
		powers = append(powers, p)
		result.Groups = append(result.Groups, GroupPower{
			Name:   g.Name,
			Size:   g.Size.Value,
			Power:  p,
			Rating: Rate(p),
		})
	}

	if len(powers) == 0 {
		return result
	}
	result.Mean, _ = powers.Mean()
	result.Min, _ = powers.Min()
	result.Max, _ = powers.Max()
	return result
}
