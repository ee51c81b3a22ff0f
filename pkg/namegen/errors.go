package namegen

import "errors"

var (
	ErrEmptyCorpus   = errors.New("corpus list is empty")
	ErrInvalidGender = errors.New("invalid gender, must be Male or Female")
	ErrEmptyNamePool = errors.New("name pool is empty")
)
