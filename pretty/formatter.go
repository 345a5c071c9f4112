package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/rtree"
	"github.com/npillmayer/rtree/geom"
	"golang.org/x/term"
)

// Palette maps node types to colors for terminal display.
type Palette struct {
	Nonleaf *color.Color
	Leaf    *color.Color
	Value   *color.Color
}

func makeDefaultPalette() *Palette {
	return &Palette{
		Nonleaf: color.New(color.FgBlue),
		Leaf:    color.New(color.FgCyan),
		Value:   color.New(color.FgGreen),
	}
}

func (p *Palette) colorFor(nt rtree.NodeType) *color.Color {
	switch nt {
	case rtree.DirectoryNonleaf:
		return p.Nonleaf
	case rtree.DirectoryLeaf:
		return p.Leaf
	case rtree.Value:
		return p.Value
	}
	return color.New(color.FgRed)
}

// Print writes an outline of the tree to stdout.
//
// If stdout is an interactive terminal, lines are truncated to the terminal
// width; otherwise a default width is used.
func Print[K geom.Scalar, V any](t *rtree.Tree[K, V], colors *Palette) error {
	width := 80
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return Output(t, os.Stdout, width, colors)
}

// Output writes an outline of the tree to w, one node per line, indented by
// nesting level and truncated to width character cells. A nil colors
// parameter selects the default palette.
func Output[K geom.Scalar, V any](t *rtree.Tree[K, V], w io.Writer, width int, colors *Palette) error {
	if t == nil {
		return nil
	}
	if colors == nil {
		colors = makeDefaultPalette()
	}
	var err error
	t.Walk(func(info rtree.NodeInfo[K]) {
		if err != nil {
			return
		}
		line := fmt.Sprintf("%s%v %v", strings.Repeat("  ", info.Level), info.Type, info.Box)
		if width > 0 && len(line) > width {
			line = line[:width]
		}
		_, err = fmt.Fprintln(w, colors.colorFor(info.Type).Sprint(line))
	})
	return err
}
