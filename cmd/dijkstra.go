package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dietr1ch/search/search"
	"github.com/Dietr1ch/search/maze2d"
)

var dijkstraCmd = &cobra.Command{
	Use:   "dijkstra",
	Short: "Find the cheapest path with Dijkstra's algorithm",
	Run: func(cmd *cobra.Command, args []string) {
		grid, start, goal, err := loadGrid()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		problem := maze2d.NewProblem(grid, start, goal)
		s := search.NewDijkstra[maze2d.State, maze2d.Action, maze2d.Cost](problem, searchOptions()...)

		path, found, err := s.Run()
		report(grid, path, found, err, s.Stats())
	},
}
