package analysis

import (
	"github.com/montanaflynn/stats"
	"github.com/nconklindev/hitlisten/internal/types"
)

// SideStats summarises one set of group sizes against a threshold.
type SideStats struct {
	Groups   int
	Small    int
	Large    int
	SmallPct float64
	LargePct float64
	Smallest int
	Largest  int
}

// Comparison contrasts the original groups with their aggregation.
type Comparison struct {
	Threshold  int
	Original   SideStats
	Aggregated SideStats
	// Improvement is how many fewer groups fall below the threshold.
	Improvement int
	// Reduction is how many fewer groups there are overall.
	Reduction int
}

// Compare builds the original-vs-aggregated summary. Null sizes are skipped;
// an empty side reports zeros.
func Compare(original, aggregated types.GroupSizes, threshold int) Comparison {
	orig := summarise(original, threshold)
	agg := summarise(aggregated, threshold)
	return Comparison{
		Threshold:   threshold,
		Original:    orig,
		Aggregated:  agg,
		Improvement: orig.Small - agg.Small,
		Reduction:   orig.Groups - agg.Groups,
	}
}

func summarise(sizes types.GroupSizes, threshold int) SideStats {
	var data stats.Float64Data
	s := SideStats{}
	for _, g := range sizes {
		if !g.Size.Valid {
			continue
		}
		data = append(data, float64(g.Size.Value))
		if g.Size.Value < threshold {
			s.Small++
		}
	}
	s.Groups = len(data)
	s.Large = s.Groups - s.Small
	if s.Groups == 0 {
		return s
	}

	s.SmallPct = float64(s.Small) / float64(s.Groups) * 100
	s.LargePct = float64(s.Large) / float64(s.Groups) * 100
	smallest, _ := data.Min()
	largest, _ := data.Max()
	s.Smallest = int(smallest)
	s.Largest = int(largest)
	return s
}
