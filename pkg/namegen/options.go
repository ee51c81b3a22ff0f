package namegen

// Source provides uniform random index selection over [0, n).
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Option configures the generator.
type Option func(*Generator)

// WithSource replaces the default time-seeded random source. Handy for
// deterministic output: pass rand.New(rand.NewSource(seed)) or a
// fixed-sequence fake in tests. The generator serializes access to the
// source, so it does not need to be safe for concurrent use.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}
