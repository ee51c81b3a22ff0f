package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/namemaker/pkg/namegen"
)

// NewRootCmd builds the root namemaker command around the given
// generator. Exactly one mode flag may be set; numeric positional
// arguments select the amounts.
func NewRootCmd(gen *namegen.Generator) *cobra.Command {
	var (
		maleOnly   bool
		femaleOnly bool
		many       bool
		family     bool
	)

	cmd := &cobra.Command{
		Use:   "namemaker [amount | male_amount female_amount]",
		Short: "Generate random person names",
		Long: `Generate plausible random person names from bundled first-name and
surname corpora. Without flags, prints the requested amount of names
(default 1) with genders picked at random. Mode flags restrict the
first-name pool or switch to family generation, where every member
shares one surname and the first two entries are the parents.`,
		Example: `  namemaker              # one random name
  namemaker 5             # five random names
  namemaker 2 3           # two male names, then three female names
  namemaker -m 3          # three male names
  namemaker -f            # one female name
  namemaker -F 4          # a family with four children
  namemaker -F 2 1        # a family with two boys and one girl`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if moreThanOne(maleOnly, femaleOnly, many, family) {
				return ErrConflictingFlags
			}

			amounts, err := parseAmounts(args)
			if err != nil {
				return err
			}

			var names []namegen.Name
			switch {
			case maleOnly:
				names, err = genderedNames(gen, namegen.Male, amounts)
			case femaleOnly:
				names, err = genderedNames(gen, namegen.Female, amounts)
			case family:
				names = familyNames(gen, amounts)
			default:
				// The bare form and --many are the same command.
				names = manyNames(gen, amounts)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&maleOnly, "male", "m", false, "male first names only")
	cmd.Flags().BoolVarP(&femaleOnly, "female", "f", false, "female first names only")
	cmd.Flags().BoolVarP(&many, "many", "M", false, "batch form, accepts explicit male and female amounts")
	cmd.Flags().BoolVarP(&family, "family", "F", false, "family sharing one surname, amounts select children")

	return cmd
}

func moreThanOne(flags ...bool) bool {
	set := 0
	for _, f := range flags {
		if f {
			set++
		}
	}
	return set > 1
}

// parseAmounts converts positional arguments to non-negative counts.
func parseAmounts(args []string) ([]int, error) {
	amounts := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, arg)
		}
		amounts = append(amounts, n)
	}
	return amounts, nil
}

// genderedNames serves -m and -f: a single amount of one gender.
func genderedNames(gen *namegen.Generator, gender namegen.Gender, amounts []int) ([]namegen.Name, error) {
	if len(amounts) > 1 {
		return nil, ErrTooManyArguments
	}

	amount := 1
	if len(amounts) == 1 {
		amount = amounts[0]
	}

	if gender == namegen.Male {
		return gen.GenerateManySpecific(amount, 0), nil
	}
	return gen.GenerateManySpecific(0, amount), nil
}

// manyNames serves the bare form and -M: one amount draws random
// genders, two amounts split the batch into males then females.
func manyNames(gen *namegen.Generator, amounts []int) []namegen.Name {
	switch len(amounts) {
	case 2:
		return gen.GenerateManySpecific(amounts[0], amounts[1])
	case 1:
		return gen.GenerateMany(amounts[0])
	default:
		return gen.GenerateMany(1)
	}
}

// familyNames serves -F: amounts select the number of children, either
// in total or split into males then females.
func familyNames(gen *namegen.Generator, amounts []int) []namegen.Name {
	switch len(amounts) {
	case 2:
		return gen.GenerateFamilySpecific(amounts[0], amounts[1])
	case 1:
		return gen.GenerateFamily(amounts[0])
	default:
		return gen.GenerateFamily(0)
	}
}
