// Command blockworld loads a world map, applies a stream of builder
// actions to it, and saves the result.
//
// Usage: blockworld <inputMap> <actions> <outputMap>
//
// The actions argument is a file path, or "-" to read actions from
// standard input.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"

	"blockworld/pkg/action"
	"blockworld/pkg/worldmap"
)

// Process exit codes, one per failure stage.
const (
	exitUsage       = 1
	exitLoadMap     = 2
	exitOpenActions = 3
	exitBadAction   = 4
	exitSaveMap     = 5
)

var errorStyle = color.Style{color.FgRed, color.OpBold}

// fail prints the error to stderr and exits with the given code
func fail(code int, err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Sprint(err))
	os.Exit(code)
}

// openActions opens the action source: a file path, or "-" for stdin
func openActions(arg string) (io.ReadCloser, error) {
	if arg == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Reading actions from terminal, finish with ctrl-d")
		}
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(arg)
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "Usage: blockworld inputMap actions outputMap")
		os.Exit(exitUsage)
	}

	m, err := worldmap.Load(os.Args[1])
	if err != nil {
		fail(exitLoadMap, err)
	}

	source, err := openActions(os.Args[2])
	if err != nil {
		fail(exitOpenActions, err)
	}

	err = action.ProcessAll(action.NewReader(source), m, os.Stdout)
	source.Close()
	if err != nil {
		fail(exitBadAction, err)
	}

	if err := m.Save(os.Args[3]); err != nil {
		fail(exitSaveMap, err)
	}
}
