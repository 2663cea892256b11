package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/persona-fusion/go-fusion/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	verbose := flag.Bool("verbose", false, "print each fused prompt")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--verbose]")
		os.Exit(2)
	}

	os.Exit(run(*fixturePath, *verbose))
}

// #endregion main

// #region run

func run(fixturePath string, verbose bool) int {
	fixture, err := replay.LoadFixture(fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	cases := fixture.ToCases()
	results := replay.Replay(cases)

	if verbose {
		for _, r := range results {
			fmt.Printf("--- %s ---\n", r.Name)
			if r.Err != nil {
				fmt.Printf("error (%s): %v\n", r.ErrorKind, r.Err)
				continue
			}
			fmt.Println(r.Prompt)
			if len(r.Conflicts) > 0 {
				fmt.Printf("conflicts: %d\n", len(r.Conflicts))
			}
		}
	}

	mismatches := replay.Verify(cases, results)
	for _, m := range mismatches {
		fmt.Fprintf(os.Stderr, "MISMATCH %s\n", m)
	}

	s := replay.Summarize(results)
	fmt.Printf("replayed %d case(s): %d fused, %d failed, %d with conflicts\n",
		s.Total, s.Fused, s.Failed, s.WithConflicts)

	if len(mismatches) > 0 {
		fmt.Fprintf(os.Stderr, "%d expectation(s) not met\n", len(mismatches))
		return 1
	}
	return 0
}

// #endregion run
