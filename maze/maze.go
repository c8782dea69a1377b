package maze

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Maze is an immutable rectangular grid of cost/wall markers.
// cells[r][c] holds the marker as given; costs[r][c] its parsed cost (0 for walls).
type Maze struct {
	height, width int
	cells         [][]string
	costs         [][]int
}

// New constructs a Maze from a non-empty, rectangular 2D slice of markers.
// It deep-copies the input so later changes by the caller cannot leak in.
// Every marker must be a decimal integer in [0, MaxCost] or Wall; nothing is coerced.
// The costs of all cells must also sum within int, which bounds every path cost.
// Errors match ErrInvalidGrid together with ErrEmptyGrid, ErrNonRectangular,
// ErrInvalidCell or ErrCostOverflow.
// Complexity: O(H×W) time and memory.
func New(cells [][]string) (*Maze, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, invalid(ErrEmptyGrid, "got %d rows", len(cells))
	}
	h, w := len(cells), len(cells[0])
	for r, row := range cells {
		if len(row) != w {
			return nil, invalid(ErrNonRectangular, "row %d has %d cells, want %d", r, len(row), w)
		}
	}

	m := &Maze{
		height: h,
		width:  w,
		cells:  make([][]string, h),
		costs:  make([][]int, h),
	}
	total := 0
	for r := 0; r < h; r++ {
		m.cells[r] = make([]string, w)
		m.costs[r] = make([]int, w)
		for c, v := range cells[r] {
			if v == Wall {
				m.cells[r][c] = v
				continue
			}
			cost, ok := parseCost(v)
			if !ok {
				return nil, &CellError{Row: r, Col: c, Value: v}
			}
			if cost > math.MaxInt-total {
				return nil, invalid(ErrCostOverflow, "at row %d, column %d", r, c)
			}
			total += cost
			m.cells[r][c] = v
			m.costs[r][c] = cost
		}
	}

	return m, nil
}

// Uniform builds an open rows×cols maze where every cell costs cost.
func Uniform(rows, cols, cost int) (*Maze, error) {
	if rows < 1 || cols < 1 || cost < 0 || cost > MaxCost {
		return nil, ErrInvalidSize
	}
	marker := strconv.Itoa(cost)
	cells := make([][]string, rows)
	for r := range cells {
		cells[r] = make([]string, cols)
		for c := range cells[r] {
			cells[r][c] = marker
		}
	}

	return New(cells)
}

// parseCost accepts only plain decimal digits ("[0-9]+") up to MaxCost.
func parseCost(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil || v > MaxCost {
		return 0, false
	}
	return v, true
}

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// IsValid reports whether n lies within the grid boundaries.
// Complexity: O(1).
func (m *Maze) IsValid(n Node) bool {
	return n.Row >= 0 && n.Row < m.height && n.Col >= 0 && n.Col < m.width
}

// IsWall reports whether n is a wall. Out-of-bounds nodes are not walls.
func (m *Maze) IsWall(n Node) bool {
	return m.IsValid(n) && m.cells[n.Row][n.Col] == Wall
}

// IsOpen reports whether n is inside the grid and traversable.
func (m *Maze) IsOpen(n Node) bool {
	return m.IsValid(n) && m.cells[n.Row][n.Col] != Wall
}

// Cost returns the cost of entering n, or 0 for a wall.
// n must be valid; passing an out-of-bounds node panics.
func (m *Maze) Cost(n Node) int {
	return m.costs[n.Row][n.Col]
}

// Cell returns the raw marker stored at n. n must be valid.
func (m *Maze) Cell(n Node) string {
	return m.cells[n.Row][n.Col]
}

// Cells returns a deep copy of the raw markers.
func (m *Maze) Cells() [][]string {
	out := make([][]string, m.height)
	for r := range m.cells {
		out[r] = make([]string, m.width)
		copy(out[r], m.cells[r])
	}
	return out
}

// Neighbors returns the open 4-neighbors of n, each tagged with the move that
// reaches it. Without shuffling the order is North, South, East, West.
// With shuffle set the slice is permuted using rng, or the math/rand global
// source when rng is nil, so no algorithm favours a direction.
// Complexity: O(1).
func (m *Maze) Neighbors(n Node, shuffle bool, rng *rand.Rand) []Move {
	moves := make([]Move, 0, len(compass))
	for _, d := range compass {
		next := n.Step(d)
		if m.IsOpen(next) {
			moves = append(moves, Move{Node: next, Dir: d})
		}
	}
	if shuffle && len(moves) > 1 {
		swap := func(i, j int) { moves[i], moves[j] = moves[j], moves[i] }
		if rng != nil {
			rng.Shuffle(len(moves), swap)
		} else {
			rand.Shuffle(len(moves), swap)
		}
	}

	return moves
}

// PathCost sums Cost over every node of path except the first:
// a cell is charged when it is entered, not when a walk starts on it.
func (m *Maze) PathCost(path []Node) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += m.Cost(path[i])
	}
	return total
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Node) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// String renders each row as "[a,b,c]" on its own line.
func (m *Maze) String() string {
	var sb strings.Builder
	for r, row := range m.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		sb.WriteString(strings.Join(row, ","))
		sb.WriteByte(']')
	}
	return sb.String()
}
