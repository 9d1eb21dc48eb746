package projection

// Grid is a square boolean mask stored in row-major order.
//
// Set cells are counted per column and in total as they change, which keeps
// uniform sampling over set cells linear in the grid size.
type Grid struct {
	size     int
	cells    []bool
	colCount []int
	total    int
}

// NewGrid allocates a size×size grid with every cell cleared.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	return &Grid{
		size:     size,
		cells:    make([]bool, size*size),
		colCount: make([]int, size),
	}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.size }

func (g *Grid) inside(col, row int) bool {
	return col >= 0 && col < g.size && row >= 0 && row < g.size
}

// At reports whether the cell at (col, row) is set. Cells outside the grid
// read as cleared.
func (g *Grid) At(col, row int) bool {
	if !g.inside(col, row) {
		return false
	}
	return g.cells[row*g.size+col]
}

// Set marks the cell at (col, row). Out-of-range positions are ignored.
func (g *Grid) Set(col, row int) {
	if !g.inside(col, row) {
		return
	}
	i := row*g.size + col
	if g.cells[i] {
		return
	}
	g.cells[i] = true
	g.colCount[col]++
	g.total++
}

// Clear unmarks the cell at (col, row). Out-of-range positions are ignored.
func (g *Grid) Clear(col, row int) {
	if !g.inside(col, row) {
		return
	}
	i := row*g.size + col
	if !g.cells[i] {
		return
	}
	g.cells[i] = false
	g.colCount[col]--
	g.total--
}

// SetRect marks every cell in [col0, col1) × [row0, row1), clipped to the grid.
func (g *Grid) SetRect(col0, row0, col1, row1 int) {
	col0, col1 = clampSpan(col0, col1, g.size)
	row0, row1 = clampSpan(row0, row1, g.size)
	for r := row0; r < row1; r++ {
		for c := col0; c < col1; c++ {
			g.Set(c, r)
		}
	}
}

// Count returns the number of set cells.
func (g *Grid) Count() int { return g.total }

// Any reports whether at least one cell is set.
func (g *Grid) Any() bool { return g.total > 0 }

// ColumnCount returns the number of set cells in column col.
func (g *Grid) ColumnCount(col int) int {
	if col < 0 || col >= g.size {
		return 0
	}
	return g.colCount[col]
}

// RowIndices returns, in ascending order, the columns that are set in row.
func (g *Grid) RowIndices(row int) []int {
	if row < 0 || row >= g.size {
		return nil
	}
	var cols []int
	base := row * g.size
	for c := 0; c < g.size; c++ {
		if g.cells[base+c] {
			cols = append(cols, c)
		}
	}
	return cols
}

// Nth returns the position of the n-th set cell (0-based) when cells are
// enumerated column by column, top to bottom inside each column. ok is false
// when n is out of range.
func (g *Grid) Nth(n int) (p Point, ok bool) {
	if n < 0 || n >= g.total {
		return Point{}, false
	}
	col := 0
	for ; col < g.size; col++ {
		if n < g.colCount[col] {
			break
		}
		n -= g.colCount[col]
	}
	for row := 0; row < g.size; row++ {
		if !g.cells[row*g.size+col] {
			continue
		}
		if n == 0 {
			return Point{Col: col, Row: row}, true
		}
		n--
	}
	return Point{}, false
}

// FillDisc sets every cell of the disc of the given radius centred on c.
func (g *Grid) FillDisc(c Point, radius int) {
	g.eachDiscCell(c, radius, func(col, row int) bool {
		g.Set(col, row)
		return true
	})
}

// ClearDisc clears every cell of the disc of the given radius centred on c.
func (g *Grid) ClearDisc(c Point, radius int) {
	g.eachDiscCell(c, radius, func(col, row int) bool {
		g.Clear(col, row)
		return true
	})
}

// DiscHitsAny reports whether any cell of the disc is set. It does not modify
// the grid.
func (g *Grid) DiscHitsAny(c Point, radius int) bool {
	hit := false
	g.eachDiscCell(c, radius, func(col, row int) bool {
		if g.cells[row*g.size+col] {
			hit = true
			return false
		}
		return true
	})
	return hit
}

// eachDiscCell visits the in-grid cells of a disc until fn returns false.
func (g *Grid) eachDiscCell(c Point, radius int, fn func(col, row int) bool) {
	if radius < 0 {
		return
	}
	r2 := radius * radius
	row0, row1 := clampSpan(c.Row-radius, c.Row+radius+1, g.size)
	for row := row0; row < row1; row++ {
		dy := row - c.Row
		// half-width of this scanline
		w := isqrt(r2 - dy*dy)
		col0, col1 := clampSpan(c.Col-w, c.Col+w+1, g.size)
		for col := col0; col < col1; col++ {
			if !fn(col, row) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		size:     g.size,
		cells:    make([]bool, len(g.cells)),
		colCount: make([]int, len(g.colCount)),
		total:    g.total,
	}
	copy(out.cells, g.cells)
	copy(out.colCount, g.colCount)
	return out
}

func clampSpan(lo, hi, size int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > size {
		hi = size
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// DiscSpan returns the inclusive column range covered by a disc on the given
// row, ignoring grid bounds. ok is false when the row misses the disc.
func DiscSpan(c Point, radius, row int) (lo, hi int, ok bool) {
	dy := row - c.Row
	rem := radius*radius - dy*dy
	if radius < 0 || rem < 0 {
		return 0, 0, false
	}
	w := isqrt(rem)
	return c.Col - w, c.Col + w, true
}
