package t2048

// Rand is the random source used for spawning.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// DefaultSpawn4Prob is the chance that a spawned tile is a 4 instead of a 2.
const DefaultSpawn4Prob = 0.5

// InitialTiles is the number of tiles on a fresh board.
const InitialTiles = 2

// Spawn places up to count new tiles on random empty cells of board.
// Cells are picked uniformly over the whole board and occupied picks are
// retried. Spawning stops early when the board is full.
func Spawn(board Board, count int, rng Rand, spawn4Prob float64) Board {
	board, _ = spawnTracked(board, count, rng, spawn4Prob)
	return board
}

// spawnTracked is Spawn that also reports the cells it filled.
func spawnTracked(board Board, count int, rng Rand, spawn4Prob float64) (Board, []Cell) {
	var placed []Cell
	for len(placed) < count {
		if !HasEmptyCell(board) {
			break
		}

		idx := rng.Intn(BoardCells)
		if board[idx] != 0 {
			continue
		}

		board[idx] = spawnValue(rng, spawn4Prob)
		placed = append(placed, Cell{X: idx % BoardSize, Y: idx / BoardSize})
	}
	return board, placed
}

// spawnValue returns 4 with probability spawn4Prob, otherwise 2.
func spawnValue(rng Rand, spawn4Prob float64) int {
	if rng.Float64() < spawn4Prob {
		return 4
	}
	return 2
}

// NewBoard returns an empty board with the initial tiles spawned.
func NewBoard(rng Rand, spawn4Prob float64) Board {
	return Spawn(Board{}, InitialTiles, rng, spawn4Prob)
}
