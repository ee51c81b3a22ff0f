// Package namegen generates plausible human names — single names, batches
// of names, or "families" sharing a surname — by uniformly sampling static
// first-name and last-name corpora bundled with the package. It is intended
// for test fixtures, mock data, and simulations where human-looking names
// are needed but their identity does not matter.
//
// A name is always composed as "<first name> <surname>". First names are
// drawn from one of two gendered pools; surnames from a third pool. All
// three corpora are embedded at build time as line-delimited text files and
// loaded exactly once when the generator is constructed. The corpus is
// immutable for the process lifetime, so a single Generator is safe to
// share across goroutines.
//
// # Usage
//
//	gen, err := namegen.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// A single random name, gender picked at random.
//	fmt.Println(gen.Generate())
//
//	// A name with a masculine first name.
//	name, _ := gen.GenerateSpecific(namegen.Male)
//	fmt.Println(name)
//
//	// Five random names.
//	names := gen.GenerateMany(5)
//
//	// Two male names followed by three female names.
//	mixed := gen.GenerateManySpecific(2, 3)
//
//	// A family of two parents and three children sharing a surname.
//	family := gen.GenerateFamily(3)
//
// # Randomness
//
// Draws use a time-seeded math/rand source guarded by a mutex. The source
// is injectable via WithSource for deterministic output (seeded runs,
// reproducible tests). Randomness is not cryptographic and repeats across
// draws are expected; the package makes no uniqueness guarantees.
package namegen
