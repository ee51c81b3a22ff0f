package namegen

// Gender selects which first-name pool a draw is restricted to.
type Gender int

// Genders available for name generation.
const (
	Male Gender = iota
	Female
)

// String implements fmt.Stringer.
func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "unknown"
	}
}

// valid reports whether g is one of the closed set of genders.
func (g Gender) valid() bool {
	return g == Male || g == Female
}

// Name is a generated person name. It has no identity beyond its string
// value and is never retained by the generator.
type Name struct {
	First string
	Last  string
}

// String returns the composed "<first name> <surname>" form.
func (n Name) String() string {
	return n.First + " " + n.Last
}

// DefaultName returns the "John Doe" placeholder name.
func DefaultName() Name {
	return Name{First: "John", Last: "Doe"}
}
