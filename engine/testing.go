package engine

// ScriptedRand replays a fixed sequence of draws for deterministic tests
// Each value is reduced modulo n; once exhausted it falls back to a seeded FastRand
type ScriptedRand struct {
	values   []int
	pos      int
	fallback *FastRand
}

// NewScriptedRand creates a scripted source over values
func NewScriptedRand(values ...int) *ScriptedRand {
	return &ScriptedRand{values: values, fallback: NewFastRand(1)}
}

// Push appends more scripted draws
func (r *ScriptedRand) Push(values ...int) {
	r.values = append(r.values, values...)
}

func (r *ScriptedRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if r.pos < len(r.values) {
		v := r.values[r.pos]
		r.pos++
		v %= n
		if v < 0 {
			v += n
		}
		return v
	}
	return r.fallback.Intn(n)
}

// Remaining returns the number of unused scripted draws
func (r *ScriptedRand) Remaining() int {
	return len(r.values) - r.pos
}
