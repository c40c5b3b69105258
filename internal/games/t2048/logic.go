package t2048

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/matrix"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every move direction.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection converts "up", "down", "left" or "right" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return 0, fmt.Errorf("t2048: unknown direction %q", s)
}

// turns returns how many clockwise quarter-turns make d point right.
func (d Direction) turns() int {
	switch d {
	case DirRight:
		return 0
	case DirUp:
		return 1
	case DirLeft:
		return 2
	case DirDown:
		return 3
	}
	panic(fmt.Sprintf("t2048: invalid direction %d", int(d)))
}

// MergeRule selects how many merges a single row may produce per move.
type MergeRule string

const (
	// MergeOncePerRow allows one merge per row per move: after the first
	// merge in a row, no other pair in that row merges. [2,2,2,2] shifted
	// right becomes [0,2,2,4].
	MergeOncePerRow MergeRule = "per_row"

	// MergeOncePerTile is the classic rule: every tile merges at most once,
	// but independent pairs in the same row all merge. [2,2,2,2] shifted
	// right becomes [0,0,4,4].
	MergeOncePerTile MergeRule = "per_tile"
)

// ParseMergeRule converts a config value to a MergeRule.
// An empty string selects MergeOncePerRow.
func ParseMergeRule(s string) (MergeRule, error) {
	switch MergeRule(strings.ToLower(strings.TrimSpace(s))) {
	case "", MergeOncePerRow:
		return MergeOncePerRow, nil
	case MergeOncePerTile:
		return MergeOncePerTile, nil
	}
	return "", fmt.Errorf("t2048: unknown merge rule %q", s)
}

// BoardSize is the board dimension.
const BoardSize = 4

// BoardCells is the number of cells on the board.
const BoardCells = BoardSize * BoardSize

// Board is the 4x4 grid stored row-major. 0 is an empty cell.
type Board [BoardCells]int

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// Index returns the row-major index of c.
func (c Cell) Index() int {
	return c.Y*BoardSize + c.X
}

// BoardFromRows builds a board from a row-major grid literal.
func BoardFromRows(rows [BoardSize][BoardSize]int) Board {
	var b Board
	for y := range BoardSize {
		for x := range BoardSize {
			b[y*BoardSize+x] = rows[y][x]
		}
	}
	return b
}

// Rows returns the board as a grid.
func (b Board) Rows() [BoardSize][BoardSize]int {
	var rows [BoardSize][BoardSize]int
	for i, v := range b {
		rows[i/BoardSize][i%BoardSize] = v
	}
	return rows
}

// At returns the value at column x, row y.
func (b Board) At(x, y int) int {
	return b[y*BoardSize+x]
}

// String renders the board as four bracketed rows.
func (b Board) String() string {
	var sb strings.Builder
	for y, row := range b.Rows() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprint(&sb, row)
	}
	return sb.String()
}

func (b Board) matrix() matrix.Matrix[int] {
	return matrix.FromFlat(b[:], BoardSize)
}

func boardFromMatrix(m matrix.Matrix[int]) Board {
	var b Board
	flat := matrix.Flatten(m)
	if len(flat) != BoardCells {
		panic(fmt.Sprintf("t2048: matrix has %d cells, want %d", len(flat), BoardCells))
	}
	copy(b[:], flat)
	return b
}

// ShiftRight slides and merges every row of m toward its last column.
// Returns a new matrix and the score gained from merges; m is not modified.
func ShiftRight(m matrix.Matrix[int], rule MergeRule) (matrix.Matrix[int], int) {
	shifted := matrix.Copy(m)
	score := 0
	for _, row := range shifted {
		score += shiftRowRight(row, rule)
	}
	return shifted, score
}

// shiftRowRight merges then compacts a row in place.
// Returns the score gained.
func shiftRowRight(row []int, rule MergeRule) int {
	n := len(row)
	score := 0

	// Merge pass, right to left. Each source looks past empty cells for the
	// first occupied cell and merges only into an equal value.
	canMerge := true
	merged := make([]bool, n)
	for j := n - 2; j >= 0; j-- {
		value := row[j]
		if value == 0 {
			continue
		}

		for k := j + 1; k < n; k++ {
			if row[k] == 0 {
				continue
			}
			if row[k] == value && canMerge && !merged[k] {
				row[j] = 0
				row[k] = value * 2
				score += row[k]
				if rule == MergeOncePerTile {
					merged[k] = true
				} else {
					canMerge = false
				}
			}
			break
		}
	}

	// Compaction pass: slide each tile through contiguous empty cells.
	for j := n - 2; j >= 0; j-- {
		value := row[j]
		if value == 0 {
			continue
		}

		to := j
		for to+1 < n && row[to+1] == 0 {
			to++
		}
		row[j] = 0
		row[to] = value
	}

	return score
}

// Slide performs a move in the given direction.
// The board is rotated so dir points right, shifted, and rotated back.
// Returns the new board (before any spawn), the score gained, and whether
// any cell differs from the input board. Panics on an invalid direction.
func Slide(board Board, dir Direction, rule MergeRule) (Board, int, bool) {
	turns := dir.turns()

	view := matrix.Rotate(board.matrix(), turns)
	shifted, score := ShiftRight(view, rule)
	next := boardFromMatrix(matrix.Rotate(shifted, -turns))

	return next, score, next != board
}

// EmptyCells returns coordinates of all empty cells.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for i, v := range board {
		if v == 0 {
			cells = append(cells, Cell{X: i % BoardSize, Y: i / BoardSize})
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for _, v := range board {
		if v == 0 {
			return true
		}
	}
	return false
}

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// tiles hold the same non-zero value.
func HasPossibleMerge(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := board.At(x, y)
			if val == 0 {
				continue
			}
			if x < BoardSize-1 && board.At(x+1, y) == val {
				return true
			}
			if y < BoardSize-1 && board.At(x, y+1) == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(board Board) bool {
	return HasEmptyCell(board) || HasPossibleMerge(board)
}

// IsStuck returns true if no direction changes the board.
func IsStuck(board Board) bool {
	return !CanMove(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for _, v := range board {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// HasTile reports whether any cell holds value.
func HasTile(board Board, value int) bool {
	for _, v := range board {
		if v == value {
			return true
		}
	}
	return false
}

// TileSum returns the sum of all tile values.
func TileSum(board Board) int {
	sum := 0
	for _, v := range board {
		sum += v
	}
	return sum
}
