package chainmap

type Stats struct {
	Count        int
	Capacity     int
	LoadFactor   float64
	Chained      int // entries living in overflow chains rather than roots
	LongestChain int // nodes in the longest overflow chain
}

func (t *table[K, V]) stats() Stats {
	s := Stats{
		Count:      t.count,
		Capacity:   len(t.slots),
		LoadFactor: float64(t.count) / float64(len(t.slots)),
	}

	for i := range t.slots {
		chain := 0
		for n := t.slots[i].head; n != nil; n = n.next {
			chain++
		}

		s.Chained += chain
		s.LongestChain = max(s.LongestChain, chain)
	}

	return s
}
