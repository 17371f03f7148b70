package snake

// Raster is a width-by-height boolean occupancy grid, row-major. It carries
// no identity of its own: callers derive one from a game snapshot whenever
// they need it and throw it away afterwards.
type Raster struct {
	Width  int
	Height int
	cells  []bool
}

// NewRaster allocates an all-false raster of the given size.
func NewRaster(width, height int) *Raster {
	w, h := width, height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Raster{Width: width, Height: height, cells: make([]bool, w*h)}
}

// idx maps a coordinate to its slice index. The probe range is inclusive of
// the far edge (x may equal Width, y may equal Height), matching the lenient
// bounds renderers rely on when scanning one past the payload.
func (r *Raster) idx(x, y int) (int, bool) {
	if x < 0 || y < 0 || x > r.Width || y > r.Height {
		return 0, false
	}
	return y*r.Width + x, true
}

// Set turns the cell at (x, y) on or off. Out-of-range probes are ignored.
func (r *Raster) Set(x, y int, on bool) {
	if i, ok := r.idx(x, y); ok && i < len(r.cells) {
		r.cells[i] = on
	}
}

// Get reports the cell at (x, y). ok is false for out-of-range probes.
func (r *Raster) Get(x, y int) (value, ok bool) {
	i, ok := r.idx(x, y)
	if !ok || i >= len(r.cells) {
		return false, false
	}
	return r.cells[i], true
}

// Cells exposes the backing slice so renderers can read values directly.
func (r *Raster) Cells() []bool { return r.cells }

// Rasterize builds a fresh occupancy grid from the game's snake segments and
// food positions. It never mutates the game.
func Rasterize(g *Game) *Raster {
	r := NewRaster(g.Config().Width, g.Config().Height)
	for _, p := range g.Segments() {
		r.Set(p.X, p.Y, true)
	}
	for _, p := range g.Food() {
		r.Set(p.X, p.Y, true)
	}
	return r
}
