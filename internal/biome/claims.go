package biome

const unowned = -1

// ClaimTracker records which cells have been claimed and by which biome,
// plus every cell that has ever been discovered as a growth candidate. Both
// sets only grow.
type ClaimTracker struct {
	owner      []int32
	discovered []bool

	claimed int
	passed  int
}

func newClaimTracker(cells int) *ClaimTracker {
	t := &ClaimTracker{
		owner:      make([]int32, cells),
		discovered: make([]bool, cells),
	}
	for i := range t.owner {
		t.owner[i] = unowned
	}
	return t
}

// IsClaimed reports whether cell i belongs to a biome.
func (t *ClaimTracker) IsClaimed(i int) bool { return t.owner[i] != unowned }

// Owner returns the biome that claimed cell i, or -1.
func (t *ClaimTracker) Owner(i int) int { return int(t.owner[i]) }

// IsPassed reports whether cell i was claimed or enqueued by any biome.
func (t *ClaimTracker) IsPassed(i int) bool { return t.discovered[i] }

// Claimed returns the number of claimed cells.
func (t *ClaimTracker) Claimed() int { return t.claimed }

// Passed returns the number of passed cells. Claimed() <= Passed() always.
func (t *ClaimTracker) Passed() int { return t.passed }

// claim assigns cell i to biome b. It reports false if i was already owned.
func (t *ClaimTracker) claim(i, b int) bool {
	if t.owner[i] != unowned {
		return false
	}
	t.owner[i] = int32(b)
	t.claimed++
	t.discover(i)
	return true
}

func (t *ClaimTracker) discover(i int) {
	if t.discovered[i] {
		return
	}
	t.discovered[i] = true
	t.passed++
}
