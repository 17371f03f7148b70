package snake

import "testing"

func TestRasterSetGetRoundTrip(t *testing.T) {
	r := NewRaster(4, 4)
	r.Set(1, 2, true)
	if v, ok := r.Get(1, 2); !ok || !v {
		t.Fatalf("Get(1,2) = %v,%v, want true,true", v, ok)
	}
	r.Set(1, 2, false)
	if v, ok := r.Get(1, 2); !ok || v {
		t.Fatalf("Get(1,2) after clear = %v,%v, want false,true", v, ok)
	}
}

func TestRasterOutOfRangeProbes(t *testing.T) {
	r := NewRaster(4, 4)
	for _, p := range []Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 5, Y: 0}, {X: 0, Y: 5}} {
		if _, ok := r.Get(p.X, p.Y); ok {
			t.Fatalf("Get(%d,%d) ok = true, want false", p.X, p.Y)
		}
	}
	// Writes outside the grid are ignored rather than panicking.
	r.Set(-1, 0, true)
	r.Set(0, 5, true)
	for _, c := range r.Cells() {
		if c {
			t.Fatal("out-of-range Set mutated the grid")
		}
	}
}

func TestRasterEdgeProbeIsInclusive(t *testing.T) {
	r := NewRaster(4, 4)
	// Probing exactly at the far edge is tolerated: it lands on the
	// following row's first cell instead of reporting out-of-range.
	r.Set(0, 2, true)
	if v, ok := r.Get(4, 1); !ok || !v {
		t.Fatalf("Get(4,1) = %v,%v, want the (0,2) cell", v, ok)
	}
}

func TestRasterizeMarksSnakeAndFood(t *testing.T) {
	g := baseGame(t)
	r := Rasterize(g)

	if r.Width != 10 || r.Height != 8 {
		t.Fatalf("raster size = %dx%d, want 10x8", r.Width, r.Height)
	}
	for _, p := range g.Segments() {
		if v, ok := r.Get(p.X, p.Y); !ok || !v {
			t.Fatalf("snake segment %v not set in raster", p)
		}
	}
	for _, p := range g.Food() {
		if v, ok := r.Get(p.X, p.Y); !ok || !v {
			t.Fatalf("food %v not set in raster", p)
		}
	}

	on := 0
	for _, c := range r.Cells() {
		if c {
			on++
		}
	}
	want := len(g.Segments()) + len(g.Food())
	if on != want {
		t.Fatalf("raster has %d cells on, want %d (snake and food are disjoint)", on, want)
	}
}

func TestRasterizeDoesNotMutateGame(t *testing.T) {
	g := baseGame(t)
	before := g.Segments()
	scoreBefore := g.Score()
	_ = Rasterize(g)
	after := g.Segments()
	if g.Score() != scoreBefore || len(after) != len(before) {
		t.Fatal("Rasterize mutated the game")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("segment %d changed: %v -> %v", i, before[i], after[i])
		}
	}
}
