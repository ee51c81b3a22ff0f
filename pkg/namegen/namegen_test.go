package namegen_test

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namemaker/pkg/namegen"
)

var namePattern = regexp.MustCompile(`^[A-Za-z]+ [A-Za-z]+$`)

func newGenerator(t *testing.T, opts ...namegen.Option) *namegen.Generator {
	t.Helper()
	gen, err := namegen.New(opts...)
	require.NoError(t, err)
	return gen
}

func TestGenerateFormat(t *testing.T) {
	gen := newGenerator(t)

	for i := 0; i < 100; i++ {
		name := gen.Generate()
		assert.NotEmpty(t, name.First)
		assert.NotEmpty(t, name.Last)
		assert.Regexp(t, namePattern, name.String())
	}
}

func TestGenerateSpecific(t *testing.T) {
	gen := newGenerator(t)

	name, err := gen.GenerateSpecific(namegen.Male)
	require.NoError(t, err)
	assert.Regexp(t, namePattern, name.String())

	name, err = gen.GenerateSpecific(namegen.Female)
	require.NoError(t, err)
	assert.Regexp(t, namePattern, name.String())
}

func TestGenerateSpecificInvalidGender(t *testing.T) {
	gen := newGenerator(t)

	_, err := gen.GenerateSpecific(namegen.Gender(42))
	assert.ErrorIs(t, err, namegen.ErrInvalidGender)
}

func TestGenerateManyLength(t *testing.T) {
	gen := newGenerator(t)

	for _, amount := range []int{0, 1, 5, 100} {
		assert.Len(t, gen.GenerateMany(amount), amount)
	}

	assert.Empty(t, gen.GenerateMany(-3), "negative amounts yield an empty slice")
}

func TestGenerateManySpecificLength(t *testing.T) {
	gen := newGenerator(t)

	tests := []struct {
		male, female int
	}{
		{0, 0},
		{1, 0},
		{0, 1},
		{3, 5},
		{10, 10},
	}
	for _, tt := range tests {
		names := gen.GenerateManySpecific(tt.male, tt.female)
		assert.Len(t, names, tt.male+tt.female)
	}
}

func TestGenerateFamily(t *testing.T) {
	gen := newGenerator(t)

	for _, children := range []int{0, 1, 4} {
		family := gen.GenerateFamily(children)
		require.Len(t, family, 2+children)

		surname := family[0].Last
		for i, member := range family {
			assert.Equal(t, surname, member.Last, "family[%d] does not share the surname", i)
			assert.Regexp(t, namePattern, member.String())
		}
	}
}

func TestGenerateFamilySpecific(t *testing.T) {
	gen := newGenerator(t)

	family := gen.GenerateFamilySpecific(2, 3)
	require.Len(t, family, 7)

	surname := family[0].Last
	for i, member := range family {
		assert.Equal(t, surname, member.Last, "family[%d] does not share the surname", i)
	}
}

func TestWithSourceDeterministic(t *testing.T) {
	first := newGenerator(t, namegen.WithSource(rand.New(rand.NewSource(42))))
	second := newGenerator(t, namegen.WithSource(rand.New(rand.NewSource(42))))

	assert.Equal(t, first.GenerateMany(20), second.GenerateMany(20))
	assert.Equal(t, first.GenerateFamily(3), second.GenerateFamily(3))
	assert.Equal(t, first.GenerateFamilySpecific(2, 2), second.GenerateFamilySpecific(2, 2))
}

func TestConcurrentGeneration(t *testing.T) {
	gen := newGenerator(t)

	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				name := gen.Generate()
				if !namePattern.MatchString(name.String()) {
					t.Errorf("malformed name %q", name)
					return
				}
			}
		}()
	}
	for i := 0; i < 5; i++ {
		<-done
	}
}
