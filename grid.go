package mandel

// Grid is a dense raster of per-pixel iteration counts.
//
// Counts are stored row-major in a single int32 buffer: the count for
// pixel (x, y) lives at index y*width + x. Every element of a grid
// returned by Compute lies in [0, maxIter]. The buffer is allocated once,
// zero-initialized, and never resized.
type Grid struct {
	width  int
	height int
	data   []int32
}

// newGrid creates a zeroed grid with the given dimensions.
// Dimensions are validated by the caller before allocation.
func newGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		data:   make([]int32, width*height),
	}
}

// Width returns the width of the grid in pixels.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid in pixels.
func (g *Grid) Height() int {
	return g.height
}

// At returns the iteration count at pixel (x, y).
// Out-of-range coordinates return 0.
func (g *Grid) At(x, y int) int32 {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0
	}
	return g.data[y*g.width+x]
}

// Row returns the y'th row as a slice of the grid's backing buffer.
// The slice aliases the grid: writes through it modify the grid.
// An out-of-range row returns nil.
func (g *Grid) Row(y int) []int32 {
	if y < 0 || y >= g.height {
		return nil
	}
	return g.data[y*g.width : (y+1)*g.width]
}

// Data returns the raw row-major count buffer.
func (g *Grid) Data() []int32 {
	return g.data
}

// Sum returns the total of all iteration counts. Benchmarks use it as a
// cheap whole-grid checksum.
func (g *Grid) Sum() int64 {
	var sum int64
	for _, v := range g.data {
		sum += int64(v)
	}
	return sum
}
