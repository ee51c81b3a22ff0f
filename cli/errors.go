package cli

import "errors"

var (
	ErrInvalidAmount    = errors.New("could not parse the amount of names to be generated")
	ErrConflictingFlags = errors.New("conflicting mode flags, pick one of --male, --female, --many, --family")
	ErrTooManyArguments = errors.New("too many command arguments")
)
