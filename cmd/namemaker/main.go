package main

import (
	"log"
	"math/rand"
	"os"

	cc "github.com/ivanpirog/coloredcobra"

	"github.com/dmitrymomot/namemaker/cli"
	"github.com/dmitrymomot/namemaker/pkg/namegen"
)

func main() {
	cfg, err := cli.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var opts []namegen.Option
	if cfg.Seed != nil {
		opts = append(opts, namegen.WithSource(rand.New(rand.NewSource(*cfg.Seed))))
	}

	gen, err := namegen.New(opts...)
	if err != nil {
		log.Fatalf("Failed to initialize the name generator: %v", err)
	}

	rootCmd := cli.NewRootCmd(gen)

	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Bold + cc.Underline,
		Commands: cc.HiYellow + cc.Bold,
		Example:  cc.Italic,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
