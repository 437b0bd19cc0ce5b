package motif

// lcg is a small linear congruential generator used wherever a system
// needs reproducible pseudo-randomness (Truchet tile rotations, seeded
// palettes). The same seed always reproduces the same sequence, which is
// what makes generated patterns byte-identical across runs.
type lcg struct {
	state int64
}

func newLCG(seed int64) *lcg {
	return &lcg{state: seed & 0x7fffffff}
}

func (r *lcg) next() int64 {
	r.state = (r.state*1103515245 + 12345) & 0x7fffffff
	return r.state
}

// intn returns a value in [0, n).
func (r *lcg) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % int64(n))
}
