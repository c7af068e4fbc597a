package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/studentboard/internal/seed"
)

func main() {
	var opts seed.Options

	flag.IntVar(&opts.Count, "n", 100, "number of records")
	flag.Int64Var(&opts.Seed, "seed", time.Now().UnixNano(), "random seed")
	flag.StringVar(&opts.DifficultyField, "d", "", "difficulty field name")
	flag.StringVar(&opts.PsychField, "p", "", "psychological concern field name")
	flag.StringVar(&opts.PsychMarker, "m", "", "psychological concern marker value")
	flag.Parse()

	students, err := seed.Generate(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate data: %v\n", err)
		os.Exit(1)
	}

	if err := seed.Write(os.Stdout, students); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write data: %v\n", err)
		os.Exit(1)
	}
}
