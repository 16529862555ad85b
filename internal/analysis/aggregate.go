package analysis

import "github.com/nconklindev/hitlisten/internal/types"

// AggregateGroups sums sizes into buckets. Groups missing from the mapping,
// or whose size is null, are left out. Buckets appear in the order they
// first receive a contribution. Each group is counted at most once.
func AggregateGroups(sizes types.GroupSizes, mapping types.AggregationMapping) types.GroupSizes {
	return aggregate(sizes, mapping, false)
}

// AggregateStages applies each mapping in turn, feeding one stage's buckets
// into the next. With keepEmpty, every bucket a stage names is emitted, at
// size zero when nothing contributed to it. No stages yields the non-null
// input sizes.
func AggregateStages(sizes types.GroupSizes, stages []types.AggregationMapping, keepEmpty bool) types.GroupSizes {
	out := nonNull(sizes)
	for _, mapping := range stages {
		out = aggregate(out, mapping, keepEmpty)
	}
	return out
}

func aggregate(sizes types.GroupSizes, mapping types.AggregationMapping, keepEmpty bool) types.GroupSizes {
	var out types.GroupSizes
	index := make(map[string]int)
	counted := make(map[string]bool)

	bucket := func(name string) int {
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, types.GroupSize{Name: name, Size: types.NewInt(0)})
		}
		return i
	}

	for _, m := range mapping {
		if counted[m.Group] {
			continue
		}
		size, ok := sizes.Get(m.Group)
		if !ok || !size.Valid {
			if keepEmpty {
				bucket(m.Bucket)
			}
			continue
		}
		counted[m.Group] = true
		out[bucket(m.Bucket)].Size.Value += size.Value
	}

	return out
}

func nonNull(sizes types.GroupSizes) types.GroupSizes {
	out := make(types.GroupSizes, 0, len(sizes))
	for _, g := range sizes {
		if g.Size.Valid {
			out = append(out, g)
		}
	}
	return out
}
