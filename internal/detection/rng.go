package detection

// mwcMultiplier is the multiplier of the 32-bit multiply-with-carry generator.
const mwcMultiplier = 4164903690

// rng is a multiply-with-carry generator. The point visiting order of
// DetectSegments depends only on the seed, so a fixed seed gives the same
// segments on every run and platform.
type rng struct {
	state uint64
}

func newRNG(seed uint64) *rng {
	if seed == 0 {
		seed = 0xffffffff
	}
	return &rng{state: seed}
}

func (r *rng) next() uint32 {
	r.state = uint64(uint32(r.state))*mwcMultiplier + r.state>>32
	return uint32(r.state)
}

// intn returns a value in [0, n). n must be positive.
func (r *rng) intn(n int) int {
	return int(r.next() % uint32(n))
}
