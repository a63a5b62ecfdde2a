package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dietr1ch/search/search"
	"github.com/Dietr1ch/search/maze2d"
)

var (
	heuristicName string
	consistent    bool
)

var astarCmd = &cobra.Command{
	Use:   "astar",
	Short: "Find the cheapest path with A*",
	Run: func(cmd *cobra.Command, args []string) {
		grid, start, goal, err := loadGrid()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		h, err := buildHeuristic(heuristicName, goal)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		problem := maze2d.NewProblem(grid, start, goal)
		opts := append(searchOptions(), search.WithAssumeConsistentHeuristic(consistent))
		s := search.NewAStar[maze2d.State, maze2d.Action, maze2d.Cost](problem, h, opts...)

		path, found, err := s.Run()
		report(grid, path, found, err, s.Stats())
	},
}

func buildHeuristic(name string, goal maze2d.State) (search.Heuristic[maze2d.State, maze2d.Action, maze2d.Cost], error) {
	switch name {
	case "", "manhattan":
		return maze2d.ManhattanHeuristic{Goal: goal}, nil
	case "octile":
		return maze2d.OctileHeuristic{Goal: goal}, nil
	case "zero":
		return search.ZeroHeuristic[maze2d.State, maze2d.Action, maze2d.Cost]{}, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q (want manhattan, octile or zero)", name)
	}
}

func init() {
	astarCmd.Flags().StringVar(&heuristicName, "heuristic", "manhattan", "heuristic: manhattan, octile or zero")
	astarCmd.Flags().BoolVar(&consistent, "consistent", true, "assume the heuristic is consistent (skip re-opening closed nodes)")
}
