package biome

import "slices"

// Frontier is a biome's multiset of growth candidates, keyed by linear cell
// index. Every entry carries equal weight, so a cell enqueued twice is twice
// as likely to be picked. Picks and removals are O(1) per entry.
type Frontier struct {
	entries []int
	slots   map[int][]int
}

// Len returns the number of entries, duplicates included.
func (f *Frontier) Len() int { return len(f.entries) }

// Count returns how many times cell appears.
func (f *Frontier) Count(cell int) int { return len(f.slots[cell]) }

// Add appends one entry for cell.
func (f *Frontier) Add(cell int) {
	if f.slots == nil {
		f.slots = make(map[int][]int)
	}
	f.slots[cell] = append(f.slots[cell], len(f.entries))
	f.entries = append(f.entries, cell)
}

// Pick returns a uniformly chosen entry without removing it. The frontier
// must not be empty.
func (f *Frontier) Pick(r Rand) int {
	return f.entries[r.IntN(len(f.entries))]
}

// RemoveAll drops every entry for cell and returns how many were removed.
func (f *Frontier) RemoveAll(cell int) int {
	pos := f.slots[cell]
	if len(pos) == 0 {
		return 0
	}
	delete(f.slots, cell)
	slices.Sort(pos)
	// Highest position first: the element swapped in from the tail is then
	// never another copy of cell.
	for i := len(pos) - 1; i >= 0; i-- {
		f.removeAt(pos[i])
	}
	return len(pos)
}

// Cells returns the distinct cells currently enqueued, in entry order.
func (f *Frontier) Cells() []int {
	out := make([]int, 0, len(f.slots))
	seen := make(map[int]struct{}, len(f.slots))
	for _, c := range f.entries {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func (f *Frontier) removeAt(p int) {
	last := len(f.entries) - 1
	if p != last {
		moved := f.entries[last]
		f.entries[p] = moved
		s := f.slots[moved]
		for i, q := range s {
			if q == last {
				s[i] = p
				break
			}
		}
	}
	f.entries = f.entries[:last]
}
