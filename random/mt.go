// SPDX-License-Identifier: MIT
// Package: cimnet/random
//
// mt.go - Mersenne Twister state, seeding and draws.
//
// Contract:
//   - Seed(s) fills the state with the legacy LCG expansion and resets the cursor.
//   - SeedArray(a) loads the state verbatim.
//   - Uint32 regenerates all 624 words when the cursor is exhausted.
//   - Float64 = Uint32 * FloatScale, always in [0,1).
//   - Bounded(l) = Uint32 % l; l == 0 returns 0 without drawing.
//
// Concurrency:
//   - MT is NOT goroutine-safe. Give each goroutine its own engine.

package random

// State dimensions and twist constants of MT19937.
const (
	// StateSize is the number of 32-bit words in the generator state.
	StateSize = 624

	shiftM     = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	lcgMultiplier = 69069
	highHalf      = 0xffff0000
)

// DefaultSeed is used when an engine is drawn from before being seeded.
const DefaultSeed uint32 = 4357

// FloatScale maps a 32-bit draw into [0,1). It is 1/(2^32-1) rounded down
// far enough that 0xffffffff*FloatScale stays strictly below 1.0.
const FloatScale = 2.3283064370807974e-10

// unseeded marks a cursor that has never been seeded.
const unseeded = StateSize + 1

// MT is a Mersenne Twister pseudorandom engine.
// The zero value is not ready for use; construct with New or NewSeeded.
type MT struct {
	state  [StateSize]uint32
	cursor int
}

// New returns an unseeded engine. The first draw seeds it with DefaultSeed,
// so every unseeded engine yields the same fixed sequence.
// Complexity: O(1).
func New() *MT {
	return &MT{cursor: unseeded}
}

// NewSeeded returns an engine seeded with seed.
// Complexity: O(StateSize).
func NewSeeded(seed uint32) *MT {
	m := New()
	m.Seed(seed)

	return m
}

// Seed deterministically fills the state from a single integer using the
// legacy linear-congruential expansion: every state word takes the high halves
// of two consecutive LCG outputs.
// Complexity: O(StateSize).
func (m *MT) Seed(seed uint32) {
	for i := 0; i < StateSize; i++ {
		m.state[i] = seed & highHalf
		seed = lcgMultiplier*seed + 1
		m.state[i] |= (seed & highHalf) >> 16
		seed = lcgMultiplier*seed + 1
	}
	m.cursor = StateSize
}

// SeedArray loads the state directly from a full state vector.
// Complexity: O(StateSize).
func (m *MT) SeedArray(state [StateSize]uint32) {
	m.state = state
	m.cursor = StateSize
}

// Uint32 returns the next tempered 32-bit output.
// Complexity: O(1) amortized; O(StateSize) once every StateSize draws.
func (m *MT) Uint32() uint32 {
	if m.cursor >= StateSize {
		if m.cursor == unseeded {
			m.Seed(DefaultSeed)
		}
		m.twist()
	}

	y := m.state[m.cursor]
	m.cursor++

	// Tempering.
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// twist regenerates the whole state batch and rewinds the cursor.
func (m *MT) twist() {
	var (
		kk int
		y  uint32
	)
	for kk = 0; kk < StateSize-shiftM; kk++ {
		y = (m.state[kk] & upperMask) | (m.state[kk+1] & lowerMask)
		m.state[kk] = m.state[kk+shiftM] ^ (y >> 1) ^ mag01(y)
	}
	for ; kk < StateSize-1; kk++ {
		y = (m.state[kk] & upperMask) | (m.state[kk+1] & lowerMask)
		m.state[kk] = m.state[kk+(shiftM-StateSize)] ^ (y >> 1) ^ mag01(y)
	}
	y = (m.state[StateSize-1] & upperMask) | (m.state[0] & lowerMask)
	m.state[StateSize-1] = m.state[shiftM-1] ^ (y >> 1) ^ mag01(y)

	m.cursor = 0
}

// mag01 selects the twist matrix row for the low bit of y.
func mag01(y uint32) uint32 {
	if y&0x1 == 0 {
		return 0
	}

	return matrixA
}

// Float64 returns a uniform value in [0,1) scaled from one 32-bit draw.
// Complexity: O(1) amortized.
func (m *MT) Float64() float64 {
	return float64(m.Uint32()) * FloatScale
}

// Bounded returns Uint32() % limit. The reduction is modulo-biased for limits
// that are not powers of two; this is the generator's defined behavior.
// A zero limit returns 0 and consumes no draw.
// Complexity: O(1) amortized.
func (m *MT) Bounded(limit uint32) uint32 {
	if limit == 0 {
		return 0
	}

	return m.Uint32() % limit
}

// Intn is Bounded for int limits. Non-positive n returns 0 without drawing.
func (m *MT) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	return int(m.Bounded(uint32(n)))
}

// Shuffle permutes n elements in place via swap. Position i is exchanged with
// a uniformly drawn position in (i, n), never with itself, which is Sattolo's
// algorithm: the result is always a single n-cycle, so for n > 1 no element
// keeps its position. This matches the legacy SIR seeding order.
// Complexity: O(n).
func (m *MT) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n-1; i++ {
		swap(i, i+1+m.Intn(n-i-1))
	}
}

// State returns a copy of the current state vector, suitable for SeedArray.
// The cursor is not part of the copy.
func (m *MT) State() [StateSize]uint32 {
	if m.cursor == unseeded {
		m.Seed(DefaultSeed)
	}

	return m.state
}
