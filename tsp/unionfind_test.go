package tsp

import "testing"

func TestDisjointSetsMergeSequence(t *testing.T) {
	ds := NewDisjointSets(5)

	ds.Merge(0, 1)
	ds.Merge(2, 3)
	ds.Merge(1, 3)

	if got, want := ds.Count(), 2; got != want {
		t.Errorf("Count() = %d, want %d", got, want)
	}
	if !ds.Connected(0, 3) {
		t.Error("Connected(0, 3) = false, want true")
	}
	if ds.Connected(0, 4) {
		t.Error("Connected(0, 4) = true, want false")
	}

	got := ds.Set(0)
	want := map[int]bool{0: true, 1: true, 2: true, 3: true}
	if len(got) != len(want) {
		t.Fatalf("Set(0) = %v, want the 4 elements %v", got, want)
	}
	for _, id := range got {
		if !want[id] {
			t.Errorf("Set(0) contained unexpected element %d", id)
		}
	}
}

func TestDisjointSetsPathCompression(t *testing.T) {
	ds := NewDisjointSets(4)
	ds.Merge(0, 1)
	ds.Merge(2, 3)
	ds.Merge(0, 2) // 3 now sits two levels below the root: 3 -> 2 -> 0

	root := ds.Find(3)
	for i := 0; i < 4; i++ {
		if ds.parent[i] != root {
			t.Errorf("after Find(3), parent[%d] = %d, want %d (compressed to root)", i, ds.parent[i], root)
		}
	}
}

func TestDisjointSetsCountDecreasesOnlyOnMerge(t *testing.T) {
	ds := NewDisjointSets(3)
	if got, want := ds.Count(), 3; got != want {
		t.Fatalf("Count() = %d, want %d", got, want)
	}

	ds.Merge(0, 1)
	if got, want := ds.Count(), 2; got != want {
		t.Errorf("Count() after first merge = %d, want %d", got, want)
	}

	ds.Merge(0, 1) // already connected: no-op
	if got, want := ds.Count(), 2; got != want {
		t.Errorf("Count() after redundant merge = %d, want %d", got, want)
	}
}

func TestDisjointSetsUnionBySize(t *testing.T) {
	ds := NewDisjointSets(6)
	// Build a 3-element set {0,1,2} and a 1-element set {3}: merging them
	// must hang the smaller root under the larger.
	ds.Merge(0, 1)
	ds.Merge(1, 2)
	bigRoot := ds.Find(0)

	ds.Merge(bigRoot, 3)
	if ds.Find(3) != bigRoot {
		t.Errorf("Find(3) = %d, want %d (smaller set should hang off the larger)", ds.Find(3), bigRoot)
	}
}
