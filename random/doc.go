// Package random provides the deterministic 32-bit pseudorandom engine used by
// cimnet generators and random-pick operations.
//
// The engine is a Mersenne Twister (MT19937, Matsumoto & Nishimura) with the
// classic 624-word state. Seeding follows the legacy linear-congruential
// expansion (multiplier 69069), so sequences are reproducible across
// platforms and releases:
//
//	r := random.NewSeeded(42)
//	x := r.Uint32()      // raw tempered word
//	f := r.Float64()     // uniform in [0,1)
//	i := r.Bounded(10)   // Uint32() % 10, modulo-biased by contract
//
// An MT is an explicit value. Pass it to the operations that need it
// (builder.WithRand, Undirected.RandomNeighbor, sim.NewSIR) instead of relying
// on hidden process state. Default returns a shared instance for quick
// scripts; it is not goroutine-safe.
//
// Guarantees:
//   - Same seed ⇒ identical sequence.
//   - An unseeded engine self-seeds with DefaultSeed on the first draw.
//   - Float64 never returns 1.0.
//
// Non-goals: cryptographic quality, unbiased bounded draws.
package random
