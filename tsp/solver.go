package tsp

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/miladghaznavi/exacttsp/tsp/lpmodel"
)

const (
	lpEpsilon    = 1e-8
	selectEdgeLB = 1.0 - lpEpsilon
	ignoreEdgeUB = lpEpsilon
)

// branchMark records which side of a branching decision (if any) currently
// constrains an edge variable.
type branchMark int

const (
	markNone branchMark = iota
	markSelect
	markIgnore
)

// Solver runs the exact branch-and-bound search for a single Graph. A
// Solver's LP environment is initialized by NewSolver and torn down at the
// end of OptimumTour; it is not reusable across invocations.
type Solver struct {
	graph   *Graph
	edges   []Edge
	adj     [][]Edge
	model   *lpmodel.Model
	edgeVar []int // edgeVar[edge id] = lp variable index, 1:1 for this solver

	tval        float64
	bestSolVals []float64
	constraints []branchMark
	rnd         *rand.Rand
	runningTime time.Duration
}

// NewSolver returns a Solver seeded with the given random source, used by
// the nearest-neighbor upper bound to pick a random start node.
func NewSolver(rnd *rand.Rand) *Solver {
	return &Solver{rnd: rnd, model: lpmodel.New()}
}

// OptimumTour computes a minimum-weight Hamiltonian cycle over graph and
// returns its edge set. If no feasible tour was found within the search
// (possible only on pathological or disconnected graphs), the returned
// slice is empty; the weight of an empty tour is zero and it is the
// caller's responsibility to report that, not the solver's to fabricate a
// tour.
func (s *Solver) OptimumTour(graph *Graph) []Edge {
	start := time.Now()

	s.graph = graph
	s.edges = graph.Edges()
	s.adj = graph.SortedAdjacency()
	s.edgeVar = make([]int, len(s.edges))

	s.initLPModel()

	s.tval = UpperBound(s.adj, s.rnd)
	s.constraints = make([]branchMark, len(s.edges))
	s.branchAndBound(0)

	result := s.solutionEdgeSet()
	s.model = nil
	s.runningTime = time.Since(start)
	return result
}

// RunningTime returns the wall-clock duration of the most recent
// OptimumTour call.
func (s *Solver) RunningTime() time.Duration {
	return s.runningTime
}

// initLPModel registers one variable per edge and the degree-2 equality
// constraint at every node, then sets the minimize-total-weight objective.
func (s *Solver) initLPModel() {
	for i, e := range s.edges {
		s.edgeVar[i] = s.model.NewVar(1, fmt.Sprintf("x%d", e.ID()))
	}

	for _, elist := range s.adj {
		coeffs := make(map[int]float64, len(elist))
		for _, e := range elist {
			coeffs[s.edgeVar[e.ID()]] = 1
		}
		s.model.AddEquality(coeffs, 2)
	}

	obj := make([]float64, len(s.edges))
	for _, e := range s.edges {
		obj[s.edgeVar[e.ID()]] = e.Weight
	}
	s.model.SetObjective(obj)
}

// connect repeatedly solves the LP and, while the fractional solution is
// disconnected, adds a subtour-elimination cut per island and re-solves.
// It returns the first solution that is either not optimal (infeasible or
// any other non-optimal status) or connected. If no edge of the graph joins
// two islands, no cut can be added and the result is reported infeasible.
func (s *Solver) connect() lpmodel.Solution {
	sol, _ := s.model.Solve()
	for sol.Status == lpmodel.StatusOptimal {
		ds := NewDisjointSets(len(s.adj))
		var notSelected []Edge
		for _, e := range s.edges {
			if sol.Values[s.edgeVar[e.ID()]] > lpEpsilon {
				ds.Merge(int(e.Src), int(e.Dst))
			} else {
				notSelected = append(notSelected, e)
			}
		}

		if ds.Count() == 1 {
			break
		}

		islandCoeffs := make(map[int]map[int]float64)
		addToIsland := func(root int, varIdx int) {
			m, ok := islandCoeffs[root]
			if !ok {
				m = make(map[int]float64)
				islandCoeffs[root] = m
			}
			m[varIdx] += 1
		}
		for _, e := range notSelected {
			srcRoot := ds.Find(int(e.Src))
			dstRoot := ds.Find(int(e.Dst))
			if srcRoot != dstRoot {
				addToIsland(srcRoot, s.edgeVar[e.ID()])
				addToIsland(dstRoot, s.edgeVar[e.ID()])
			}
		}

		roots := make([]int, 0, len(islandCoeffs))
		for root := range islandCoeffs {
			roots = append(roots, root)
		}
		sort.Ints(roots)
		if len(roots) == 0 {
			return lpmodel.Solution{Status: lpmodel.StatusInfeasible}
		}
		for _, root := range roots {
			s.model.AddGreaterEqual(islandCoeffs[root], 2)
		}

		sol, _ = s.model.Solve()
	}
	return sol
}

// isTour reports whether sol assigns exactly two edges per node, which —
// given sol is already connected — means sol is an integral Hamiltonian
// cycle.
func (s *Solver) isTour(sol lpmodel.Solution) bool {
	degree := make([]int, len(s.adj))
	for _, e := range s.edges {
		if sol.Values[s.edgeVar[e.ID()]] >= selectEdgeLB {
			degree[e.Src]++
			degree[e.Dst]++
		}
	}
	for _, d := range degree {
		if d != 2 {
			return false
		}
	}
	return true
}

// edgeToBranch returns the smallest-identifier edge whose LP value is
// strictly fractional and not already fixed by a branching decision, or
// InvalidID if none exists.
func (s *Solver) edgeToBranch(sol lpmodel.Solution) Identifier {
	for _, e := range s.edges {
		v := sol.Values[s.edgeVar[e.ID()]]
		if v < selectEdgeLB && v > ignoreEdgeUB && s.constraints[e.ID()] == markNone {
			return e.ID()
		}
	}
	return InvalidID
}

// branchAndBound is the recursive depth-first search at the heart of the
// solver. On entry and exit, the set of active scoped constraints matches
// s.constraints; depth is a defensive recursion cap that sound inputs can
// never actually reach, since every branch fixes one previously-fractional
// variable.
func (s *Solver) branchAndBound(depth int) {
	depth++

	sol := s.connect()
	if sol.Status != lpmodel.StatusOptimal || depth > len(s.edges) {
		return
	}

	if sol.ObjValue > s.tval {
		return
	}

	branchIt := s.edgeToBranch(sol)
	if branchIt == InvalidID {
		if s.isTour(sol) {
			s.bestSolVals = append([]float64(nil), sol.Values...)
			s.tval = sol.ObjValue
		}
		return
	}

	v := s.edgeVar[branchIt]

	h := s.model.AddScoped(v, '>', selectEdgeLB)
	s.constraints[branchIt] = markSelect
	s.branchAndBound(depth)
	s.model.RemoveConstraint(h)
	s.constraints[branchIt] = markNone

	h = s.model.AddScoped(v, '<', lpEpsilon)
	s.constraints[branchIt] = markIgnore
	s.branchAndBound(depth)
	s.model.RemoveConstraint(h)
	s.constraints[branchIt] = markNone
}

// solutionEdgeSet extracts the edge set of the best tour found: every edge
// whose value in bestSolVals is effectively 1. If no feasible integer tour
// was ever found, bestSolVals is nil and the result is empty.
func (s *Solver) solutionEdgeSet() []Edge {
	if s.bestSolVals == nil {
		return nil
	}
	var re []Edge
	for _, e := range s.edges {
		if s.bestSolVals[s.edgeVar[e.ID()]] >= selectEdgeLB {
			re = append(re, e)
		}
	}
	return re
}

// TourWeight sums the weight of an edge set, as returned by OptimumTour.
func TourWeight(edges []Edge) float64 {
	w := make([]float64, len(edges))
	for i, e := range edges {
		w[i] = e.Weight
	}
	return floats.Sum(w)
}
