// Package cli implements the namemaker command line interface, a thin
// wrapper around pkg/namegen. It parses amounts and mode flags, draws
// names through a shared generator, and prints them one per line.
package cli
