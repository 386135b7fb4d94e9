package tsp

import (
	"testing"
)

func TestEuclidDist(t *testing.T) {
	cases := []struct {
		x1, y1, x2, y2 float64
		want           float64
	}{
		{0, 0, 0, 0, 0},
		{0, 0, 3, 4, 5},
		{0, 0, 1, 1, 1}, // sqrt(2) ≈ 1.414, rounds down to 1
	}
	for _, c := range cases {
		got := EuclidDist(c.x1, c.y1, c.x2, c.y2)
		if got != c.want {
			t.Errorf("EuclidDist(%g,%g,%g,%g) = %g, want %g", c.x1, c.y1, c.x2, c.y2, got, c.want)
		}
		// Symmetry.
		if rev := EuclidDist(c.x2, c.y2, c.x1, c.y1); rev != got {
			t.Errorf("EuclidDist is not symmetric: forward %g, reverse %g", got, rev)
		}
	}
}

func TestNewGeoGraphIsComplete(t *testing.T) {
	xs := []float64{0, 1, 1, 0}
	ys := []float64{0, 0, 1, 1}
	g, err := NewGeoGraph(xs, ys)
	if err != nil {
		t.Fatalf("NewGeoGraph: %v", err)
	}

	n := g.NodesCount()
	want := n * (n - 1) / 2
	if got := g.EdgesCount(); got != want {
		t.Fatalf("EdgesCount() = %d, want %d", got, want)
	}

	seen := make(map[[2]Identifier]bool)
	for _, e := range g.Edges() {
		key := [2]Identifier{e.Src, e.Dst}
		if seen[key] {
			t.Errorf("pair (%d,%d) appears more than once", e.Src, e.Dst)
		}
		seen[key] = true
	}
	for i := Identifier(0); i < Identifier(n); i++ {
		for j := i + 1; j < Identifier(n); j++ {
			if !seen[[2]Identifier{i, j}] {
				t.Errorf("pair (%d,%d) is missing from the edge set", i, j)
			}
		}
	}
}

func TestNewGeoGraphMismatchedCoordinates(t *testing.T) {
	if _, err := NewGeoGraph([]float64{0, 1}, []float64{0}); err == nil {
		t.Error("NewGeoGraph with mismatched coordinate lengths: got nil error, want non-nil")
	}
}

func TestAddEdgeRejectedOnGeometricGraph(t *testing.T) {
	g, err := NewGeoGraph([]float64{0, 1}, []float64{0, 1})
	if err != nil {
		t.Fatalf("NewGeoGraph: %v", err)
	}
	if _, err := g.AddEdge(0, 1, 1); err != ErrGeometric {
		t.Errorf("AddEdge on geometric graph: got %v, want %v", err, ErrGeometric)
	}
}

func TestSortedAdjacencyIsNondecreasing(t *testing.T) {
	g := NewGraph(false)
	for i := 0; i < 4; i++ {
		g.AddNode()
	}
	g.AddEdge(0, 1, 5)
	g.AddEdge(0, 2, 1)
	g.AddEdge(0, 3, 3)
	g.AddEdge(1, 2, 2)

	adj := g.SortedAdjacency()
	for v, elist := range adj {
		for i := 1; i < len(elist); i++ {
			if elist[i].Weight < elist[i-1].Weight {
				t.Errorf("node %d: adjacency not sorted at index %d: %v", v, i, elist)
			}
		}
	}
}

func TestOtherEndpoint(t *testing.T) {
	e := Edge{id: 0, Src: 1, Dst: 2}
	if got := e.OtherEndpoint(1); got != 2 {
		t.Errorf("OtherEndpoint(1) = %d, want 2", got)
	}
	if got := e.OtherEndpoint(2); got != 1 {
		t.Errorf("OtherEndpoint(2) = %d, want 1", got)
	}
}
