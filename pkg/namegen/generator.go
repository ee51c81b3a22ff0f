package namegen

import (
	"math/rand"
	"sync"
	"time"
)

// Generator produces random person names from the bundled corpus.
// Safe for concurrent use: the corpus is read-only and draws from the
// shared random source are serialized by an internal mutex.
type Generator struct {
	corpus *corpus

	mu  sync.Mutex
	src Source
}

// New loads the bundled corpus and returns a ready generator. It fails
// only if the embedded corpus data is malformed or empty; every
// generation method on a successfully constructed generator is
// infallible apart from GenerateSpecific's gender validation.
func New(opts ...Option) (*Generator, error) {
	c, err := loadCorpus()
	if err != nil {
		return nil, err
	}

	g := &Generator{
		corpus: c,
		src:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Generate returns a random name with the gender of the first name
// chosen uniformly between Male and Female.
func (g *Generator) Generate() Name {
	return g.compose(g.randomGender())
}

// GenerateSpecific returns a random name whose first name is drawn from
// the given gender's pool. It returns ErrInvalidGender for values
// outside Male and Female, and ErrEmptyNamePool if the relevant list is
// somehow empty at draw time.
func (g *Generator) GenerateSpecific(gender Gender) (Name, error) {
	if !gender.valid() {
		return Name{}, ErrInvalidGender
	}
	if len(g.corpus.firstNames(gender)) == 0 || len(g.corpus.lastNames) == 0 {
		return Name{}, ErrEmptyNamePool
	}
	return g.compose(gender), nil
}

// GenerateMany returns amount independent random names in draw order.
// Zero or negative amounts yield an empty slice.
func (g *Generator) GenerateMany(amount int) []Name {
	names := make([]Name, 0, max(amount, 0))
	for i := 0; i < max(amount, 0); i++ {
		names = append(names, g.Generate())
	}
	return names
}

// GenerateManySpecific returns maleAmount male names followed by
// femaleAmount female names, in that order, so callers can split the
// result by gender with a single slice boundary.
func (g *Generator) GenerateManySpecific(maleAmount, femaleAmount int) []Name {
	names := make([]Name, 0, max(maleAmount, 0)+max(femaleAmount, 0))
	for i := 0; i < max(maleAmount, 0); i++ {
		names = append(names, g.compose(Male))
	}
	for i := 0; i < max(femaleAmount, 0); i++ {
		names = append(names, g.compose(Female))
	}
	return names
}

// GenerateFamily returns a family sharing one surname: a father at
// index 0, a mother at index 1, and childrenAmount children whose
// genders are chosen uniformly per child. Unlike GenerateMany, a zero
// amount still yields the two parents.
func (g *Generator) GenerateFamily(childrenAmount int) []Name {
	lastName := g.lastName()

	family := make([]Name, 0, 2+max(childrenAmount, 0))
	family = append(family, g.familyMember(lastName, Male))
	family = append(family, g.familyMember(lastName, Female))

	for i := 0; i < max(childrenAmount, 0); i++ {
		family = append(family, g.familyMember(lastName, g.randomGender()))
	}
	return family
}

// GenerateFamilySpecific is GenerateFamily with a deterministic child
// gender composition: maleChildren male children first, then
// femaleChildren female children. Parents occupy indices 0 and 1 as in
// GenerateFamily.
func (g *Generator) GenerateFamilySpecific(maleChildren, femaleChildren int) []Name {
	lastName := g.lastName()

	family := make([]Name, 0, 2+max(maleChildren, 0)+max(femaleChildren, 0))
	family = append(family, g.familyMember(lastName, Male))
	family = append(family, g.familyMember(lastName, Female))

	for i := 0; i < max(maleChildren, 0); i++ {
		family = append(family, g.familyMember(lastName, Male))
	}
	for i := 0; i < max(femaleChildren, 0); i++ {
		family = append(family, g.familyMember(lastName, Female))
	}
	return family
}

// intn draws a uniform index in [0, n) under the generator mutex.
func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.src.Intn(n)
}

func (g *Generator) randomGender() Gender {
	if g.intn(2) == 0 {
		return Male
	}
	return Female
}

func (g *Generator) firstName(gender Gender) string {
	pool := g.corpus.firstNames(gender)
	return pool[g.intn(len(pool))]
}

func (g *Generator) lastName() string {
	return g.corpus.lastNames[g.intn(len(g.corpus.lastNames))]
}

func (g *Generator) compose(gender Gender) Name {
	return Name{First: g.firstName(gender), Last: g.lastName()}
}

func (g *Generator) familyMember(lastName string, gender Gender) Name {
	return Name{First: g.firstName(gender), Last: lastName}
}
