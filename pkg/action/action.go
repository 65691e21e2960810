// Package action reads builder actions from a line-oriented stream and
// applies them to a world map, reporting one line of outcome text per
// action.
package action

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Primary identifies the kind of an action.
type Primary int

// Primary actions
const (
	MoveBuilder Primary = iota
	MoveBlock
	Dig
	Drop
)

// Action represents one command for the builder. Secondary carries the
// direction name for MoveBuilder and MoveBlock, the inventory index as
// decimal text for Drop, and is empty for Dig. The secondary payload is
// not validated until the action is processed.
type Action struct {
	Primary   Primary
	Secondary string
}

// ErrFormat matches structural action stream errors: lines with too many
// tokens, or an unrecognised primary action. These abort the stream;
// everything else is reported inline and processing continues.
var ErrFormat = errors.New("action: invalid action format")

// Reader reads actions one line at a time
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader creates an action reader for the given stream
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next reads and parses one action line. At the end of the stream it
// returns (nil, nil). A line of more than two space-separated tokens, or
// one whose first token is not a known primary action, yields an error
// matching ErrFormat.
func (r *Reader) Next() (*Action, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: read failed: %v", ErrFormat, err)
		}
		return nil, nil
	}

	line := r.scanner.Text()
	tokens := strings.SplitN(line, " ", 3)
	if len(tokens) > 2 {
		return nil, fmt.Errorf("%w: too many tokens in %q", ErrFormat, line)
	}

	if len(tokens) == 1 {
		if tokens[0] == "DIG" {
			return &Action{Primary: Dig}, nil
		}
		return nil, fmt.Errorf("%w: unrecognised action %q", ErrFormat, tokens[0])
	}

	switch tokens[0] {
	case "MOVE_BUILDER":
		return &Action{Primary: MoveBuilder, Secondary: tokens[1]}, nil
	case "MOVE_BLOCK":
		return &Action{Primary: MoveBlock, Secondary: tokens[1]}, nil
	case "DROP":
		return &Action{Primary: Drop, Secondary: tokens[1]}, nil
	}
	return nil, fmt.Errorf("%w: unrecognised action %q", ErrFormat, tokens[0])
}
