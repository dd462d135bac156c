package puzzle

import "math/rand/v2"

// Config controls the behavior of the Generator.
type Config struct {
	// Validators run in order on every generated puzzle; the first
	// failure turns into a GenerationError.
	Validators []Validator

	// Rand is the random source. When nil the generator uses the
	// goroutine-safe top-level functions of math/rand/v2.
	Rand *rand.Rand
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&MathCheckValidator{},
		},
	}
}
