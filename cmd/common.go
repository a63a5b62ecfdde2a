package cmd

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Dietr1ch/search/search"
	"github.com/Dietr1ch/search/kheap"
	"github.com/Dietr1ch/search/maze2d"
)

func loadGrid() (*maze2d.Grid, maze2d.State, maze2d.State, error) {
	var r io.Reader = os.Stdin
	if gridFile != "" {
		f, err := os.Open(gridFile)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("opening grid file: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("reading grid: %w", err)
	}

	return maze2d.ParseGrid(string(data), maze2d.Conn4)
}

func heapArity() kheap.Arity {
	switch k {
	case 2:
		return kheap.Arity2
	case 8:
		return kheap.Arity8
	default:
		return kheap.Arity4
	}
}

func searchOptions() []search.Option {
	opts := []search.Option{
		search.WithHeapBranching(heapArity()),
		search.WithLogger(logger),
	}
	if budget > 0 {
		opts = append(opts, search.WithExpansionBudget(budget))
	}
	return opts
}

func report(grid *maze2d.Grid, path search.Path[maze2d.State, maze2d.Action, maze2d.Cost], found bool, err error, stats search.Stats) {
	if err != nil {
		logger.Error("search failed", zap.Error(err))
		os.Exit(1)
	}
	if !found {
		printNoPath()
		logger.Info("no path", zap.Uint64("nodesExpanded", stats.NodesExpanded))
		return
	}

	printPath(grid, path)
	logger.Info("path found",
		zap.Uint64("cost", uint64(path.Cost)),
		zap.Int("steps", len(path.Steps)),
		zap.Uint64("nodesExpanded", stats.NodesExpanded),
		zap.Uint64("nodesReopened", stats.NodesReopened),
		zap.Int("heapPeak", stats.HeapPeak))
}
