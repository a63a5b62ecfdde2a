// Command search-demo is a thin CLI over the search package: it parses a
// text maze, runs Dijkstra or A*, and prints the solution.
package main

import (
	"fmt"
	"os"

	"github.com/Dietr1ch/search/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
