package tsp

// DisjointSets is a union-find structure over N elements numbered 0..N-1,
// supporting weighted union by size and two-pass path compression.
//
// Shaped after graph/path/disjoint.go's djSet (used internally by Kruskal
// MST construction elsewhere), but generalized from union-by-rank to
// union-by-size, and with Set/Count added: Kruskal only ever needs Find and
// a union, while cut separation here (connect) additionally needs to
// enumerate islands and count components.
type DisjointSets struct {
	parent []int
	size   []int
	count  int
}

// NewDisjointSets returns a DisjointSets over n elements, each initially its
// own singleton set.
func NewDisjointSets(n int) *DisjointSets {
	ds := &DisjointSets{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}
	return ds
}

// Find returns the root of the set containing p, compressing the path from
// p to the root so that every node visited along the way points directly
// at the root.
func (ds *DisjointSets) Find(p int) int {
	root := p
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for p != root {
		next := ds.parent[p]
		ds.parent[p] = root
		p = next
	}
	return root
}

// Merge unions the sets containing x and y. The smaller set (by size) hangs
// off the larger; ties hang j off i. A no-op if x and y are already in the
// same set.
func (ds *DisjointSets) Merge(x, y int) {
	i, j := ds.Find(x), ds.Find(y)
	if i == j {
		return
	}
	if ds.size[i] < ds.size[j] {
		ds.parent[i] = j
		ds.size[j] += ds.size[i]
	} else {
		ds.parent[j] = i
		ds.size[i] += ds.size[j]
	}
	ds.count--
}

// Connected reports whether x and y are in the same set.
func (ds *DisjointSets) Connected(x, y int) bool {
	return ds.Find(x) == ds.Find(y)
}

// Count returns the number of disjoint sets currently tracked.
func (ds *DisjointSets) Count() int {
	return ds.count
}

// SetSize returns the size of the set containing id.
func (ds *DisjointSets) SetSize(id int) int {
	root := ds.Find(id)
	n := 0
	for i := range ds.parent {
		if ds.Find(i) == root {
			n++
		}
	}
	return n
}

// Set returns all elements reachable in id's component.
func (ds *DisjointSets) Set(id int) []int {
	root := ds.Find(id)
	re := make([]int, 0, len(ds.parent))
	for i := range ds.parent {
		if ds.Find(i) == root {
			re = append(re, i)
		}
	}
	return re
}
