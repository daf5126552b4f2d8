package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

var ErrRagged = errors.New("layout lines differ in length")

// ReadGrid parses a text layout: '#' is blocked, '.' is free and the digits
// '1'..'9' are free cells where the player with that number starts.
func ReadGrid(reader io.Reader) (g *Grid, starts map[int32]Cell, err error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	lines := make([][]bool, 0)
	starts = make(map[int32]Cell)
	cols := -1
	row := 0

	for scanner.Scan() {
		s := scanner.Text()
		if s == "" {
			continue
		}
		if cols == -1 {
			cols = len(s)
		} else if len(s) != cols {
			return nil, nil, fmt.Errorf("line %d: %w", row+1, ErrRagged)
		}
		line := make([]bool, cols)
		for col, char := range s {
			switch {
			case char == '#':
				line[col] = true
			case char == '.':
			case char >= '1' && char <= '9':
				starts[char-'0'] = Cell{Row: row, Col: col}
			default:
				return nil, nil, fmt.Errorf("line %d col %d: unexpected %q", row+1, col+1, char)
			}
		}
		lines = append(lines, line)
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(lines) == 0 {
		return nil, nil, errors.New("empty layout")
	}
	return &Grid{Rows: len(lines), Cols: cols, blocked: lines}, starts, nil
}
