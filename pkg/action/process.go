package action

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/leonelquinteros/gotext"

	"blockworld/pkg/world"
	"blockworld/pkg/worldmap"
)

// Process applies one action to the map and writes a single line of
// outcome text to out. Domain failures (no exit, too high, too low,
// invalid block) and invalid secondary payloads are reported on that line
// and are never fatal to the surrounding stream.
func Process(a *Action, m *worldmap.WorldMap, out io.Writer) {
	builder := m.Builder()

	var err error
	var message string

	switch a.Primary {
	case Dig:
		err = builder.DigOnCurrentTile()
		message = gotext.Get("Top block on current tile removed")

	case Drop:
		index, convErr := strconv.Atoi(a.Secondary)
		if convErr != nil {
			fmt.Fprintln(out, gotext.Get("Error: Invalid action"))
			return
		}
		// out of range indexes are the builder's problem, not ours
		err = builder.DropFromInventory(index)
		message = gotext.Get("Dropped a block from inventory")

	case MoveBlock:
		if _, ok := world.ParseDirection(a.Secondary); !ok {
			fmt.Fprintln(out, gotext.Get("Error: Invalid action"))
			return
		}
		err = builder.CurrentTile().MoveBlock(a.Secondary)
		message = gotext.Get("Moved block %s", a.Secondary)

	case MoveBuilder:
		if _, ok := world.ParseDirection(a.Secondary); !ok {
			fmt.Fprintln(out, gotext.Get("Error: Invalid action"))
			return
		}
		err = builder.MoveTo(builder.CurrentTile().Exit(a.Secondary))
		message = gotext.Get("Moved builder %s", a.Secondary)

	default:
		fmt.Fprintln(out, gotext.Get("Error: Invalid action"))
		return
	}

	if err != nil {
		fmt.Fprintln(out, failureMessage(err))
		return
	}
	fmt.Fprintln(out, message)
}

// failureMessage maps a domain error to its one-line report
func failureMessage(err error) string {
	switch {
	case errors.Is(err, world.ErrNoExit):
		return gotext.Get("No exit this way")
	case errors.Is(err, world.ErrTooHigh):
		return gotext.Get("Too high")
	case errors.Is(err, world.ErrTooLow):
		return gotext.Get("Too low")
	case errors.Is(err, world.ErrInvalidBlock):
		return gotext.Get("Cannot use that block")
	}
	return gotext.Get("Error: Invalid action")
}

// ProcessAll reads actions from r and applies each to the map as soon as
// it is parsed, writing one outcome line per action to out. It stops at
// the end of the stream, or returns the structural parse error that
// aborted it.
func ProcessAll(r *Reader, m *worldmap.WorldMap, out io.Writer) error {
	for {
		a, err := r.Next()
		if err != nil {
			return err
		}
		if a == nil {
			return nil
		}
		Process(a, m, out)
	}
}
