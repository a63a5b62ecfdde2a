package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/Dietr1ch/search/search"
	"github.com/Dietr1ch/search/maze2d"
)

var (
	pathStyle  = color.New(color.FgGreen, color.Bold)
	wallStyle  = color.New(color.FgHiBlack)
	startStyle = color.New(color.FgCyan, color.Bold)
	goalStyle  = color.New(color.FgMagenta, color.Bold)
	noPathMsg  = color.New(color.FgRed, color.Bold)
)

func init() {
	color.NoColor = noColor
}

// printPath renders the grid with the reconstructed path overlaid: 'S' and
// 'G' keep their own colors, path cells show '*', walls stay '#'.
func printPath(grid *maze2d.Grid, path search.Path[maze2d.State, maze2d.Action, maze2d.Cost]) {
	onPath := make(map[maze2d.State]bool, len(path.Steps)+1)
	onPath[path.Start] = true
	for _, step := range path.Steps {
		onPath[step.State] = true
	}

	var b strings.Builder
	for y := int32(0); y < int32(grid.Height()); y++ {
		for x := int32(0); x < int32(grid.Width()); x++ {
			cell := grid.At(x, y)
			pos := maze2d.NewState(x, y)

			switch {
			case pos == path.Start:
				b.WriteString(startStyle.Sprint("S"))
			case len(path.Steps) > 0 && pos == path.Steps[len(path.Steps)-1].State:
				b.WriteString(goalStyle.Sprint("G"))
			case cell == maze2d.Wall:
				b.WriteString(wallStyle.Sprint("#"))
			case onPath[pos]:
				b.WriteString(pathStyle.Sprint("*"))
			default:
				b.WriteString(".")
			}
		}
		b.WriteString("\n")
	}

	fmt.Print(b.String())
	fmt.Printf("cost: %d, steps: %d\n", path.Cost, len(path.Steps))
}

func printNoPath() {
	fmt.Println(noPathMsg.Sprint("no path"))
}
