// Package lpmodel implements a small incrementally-built linear model: continuous
// variables, equality/inequality constraints, scoped constraint handles,
// and a minimization objective — compiled to standard form and solved by
// gonum.org/v1/gonum/optimize/convex/lp.Simplex on every call to Solve.
//
// The branch-and-bound search in package tsp never talks to
// gonum/optimize/convex/lp directly; Model is the only abstraction boundary,
// matching the project's single-abstraction-boundary design for the LP collaborator.
package lpmodel

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Status is the outcome of a Solve call.
type Status int

const (
	// StatusOptimal means the LP was solved to optimality; ObjValue and
	// Values are populated.
	StatusOptimal Status = iota
	// StatusInfeasible means no feasible point exists; the caller should
	// prune this branch.
	StatusInfeasible
	// StatusOther covers any outcome other than Optimal/Infeasible
	// (e.g. unbounded); the core treats it as equivalent to infeasible
	// for pruning purposes.
	StatusOther
)

// ErrNoObjective is returned by Solve if SetObjective was never called.
var ErrNoObjective = errors.New("lpmodel: objective not set")

// kind distinguishes the three constraint shapes a Model can hold.
type kind int

const (
	eq kind = iota
	le
	ge
)

type constraint struct {
	kind   kind
	coeffs map[int]float64
	rhs    float64
	active bool
}

// Handle identifies a single constraint for later removal. It is a scoped
// acquisition: Model.RemoveConstraint releases it exactly once.
type Handle int

// Model is an LP relaxation built up incrementally: variables with bounds,
// equality/inequality constraints over them, and a minimization objective.
// Model is not safe for concurrent use; the search that owns it is
// single-threaded.
type Model struct {
	names         []string
	ub            []float64 // upper bound per variable; lower bound is always 0
	obj           []float64
	cons          []constraint
	haveObjective bool
}

// New returns an empty model.
func New() *Model {
	return &Model{}
}

// NewVar registers a continuous variable x ∈ [0, hi] with a display name
// and returns its index. Only a lower bound of 0 is supported: every use in
// this repository is an edge-selection variable in [0, 1].
func (m *Model) NewVar(hi float64, name string) int {
	idx := len(m.ub)
	m.ub = append(m.ub, hi)
	m.names = append(m.names, name)
	m.obj = append(m.obj, 0)
	if !math.IsInf(hi, 1) {
		m.cons = append(m.cons, constraint{
			kind:   le,
			coeffs: map[int]float64{idx: 1},
			rhs:    hi,
			active: true,
		})
	}
	return idx
}

// SetObjective sets the minimization objective Σ coeffs[i]·x_i. coeffs must
// have one entry per variable, in variable-index order.
func (m *Model) SetObjective(coeffs []float64) {
	copy(m.obj, coeffs)
	m.haveObjective = true
}

// AddEquality adds Σ coeffs[i]·x_i == rhs as a permanent constraint (never
// individually removed — used for the degree-2 constraints).
func (m *Model) AddEquality(coeffs map[int]float64, rhs float64) {
	m.cons = append(m.cons, constraint{kind: eq, coeffs: cloneCoeffs(coeffs), rhs: rhs, active: true})
}

// AddGreaterEqual adds Σ coeffs[i]·x_i >= rhs as a permanent constraint
// (used by subtour-elimination cuts).
func (m *Model) AddGreaterEqual(coeffs map[int]float64, rhs float64) {
	m.cons = append(m.cons, constraint{kind: ge, coeffs: cloneCoeffs(coeffs), rhs: rhs, active: true})
}

// AddScoped adds a single-variable bound constraint and returns a Handle
// that must be passed to RemoveConstraint exactly once, on every return
// path — this is the push/pop of a branching decision.
func (m *Model) AddScoped(varIdx int, geOrLE byte, rhs float64) Handle {
	k := le
	if geOrLE == '>' {
		k = ge
	}
	m.cons = append(m.cons, constraint{kind: k, coeffs: map[int]float64{varIdx: 1}, rhs: rhs, active: true})
	return Handle(len(m.cons) - 1)
}

// RemoveConstraint releases a previously added scoped constraint.
func (m *Model) RemoveConstraint(h Handle) {
	m.cons[h].active = false
}

func cloneCoeffs(c map[int]float64) map[int]float64 {
	out := make(map[int]float64, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Solution is the outcome of Solve.
type Solution struct {
	Status   Status
	ObjValue float64
	Values   []float64 // length = number of variables registered via NewVar
}

// Solve compiles the current constraint set to standard form (Ax = b,
// x >= 0) — inequalities gain a slack or surplus column — and solves it
// with gonum's simplex implementation.
func (m *Model) Solve() (Solution, error) {
	if !m.haveObjective {
		return Solution{}, ErrNoObjective
	}

	nv := len(m.ub)
	active := make([]constraint, 0, len(m.cons))
	for _, c := range m.cons {
		if c.active {
			active = append(active, c)
		}
	}

	totalVars := nv
	// Every inequality row needs its own slack/surplus column.
	for _, c := range active {
		if c.kind != eq {
			totalVars++
		}
	}

	rows := len(active)
	data := make([]float64, rows*totalVars)
	b := make([]float64, rows)
	slackCol := nv
	for r, c := range active {
		base := r * totalVars
		for v, coeff := range c.coeffs {
			data[base+v] = coeff
		}
		b[r] = c.rhs
		switch c.kind {
		case eq:
			// no slack column
		case le:
			data[base+slackCol] = 1
			slackCol++
		case ge:
			data[base+slackCol] = -1
			slackCol++
		}
	}

	c := make([]float64, totalVars)
	copy(c, m.obj)

	var status Status
	var values []float64

	if rows == 0 {
		// No constraints at all: trivial solution x = 0.
		status = StatusOptimal
		values = make([]float64, nv)
	} else {
		A := mat.NewDense(rows, totalVars, data)
		_, x, err := lp.Simplex(c, A, b, 1e-10, nil)
		switch {
		case err == nil:
			status = StatusOptimal
			values = x[:nv]
		case errors.Is(err, lp.ErrInfeasible):
			status = StatusInfeasible
		default:
			status = StatusOther
		}
	}

	var objVal float64
	if status == StatusOptimal {
		for i, w := range m.obj {
			objVal += w * values[i]
		}
	}

	return Solution{Status: status, ObjValue: objVal, Values: values}, nil
}
