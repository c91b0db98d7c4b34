// Package reedsolomon implements an evaluation-encoded Reed-Solomon code
// over GF(2^m). A length-k message polynomial is encoded as its values at
// the first k+d field points, where point i is the field element whose bit
// pattern is the integer i. The points are indexed by integer value rather
// than by powers of a generator; the two codes are equivalent but not
// interoperable, and this library is locked to the integer convention.
//
// Decoding solves a single Welch-Berlekamp-style linear system: for a
// trial error count e it looks for an error locator E of degree e and a
// product polynomial Q = M*E with Q(x_i) = y_i * E(x_i) at every sample.
// The trial count starts at the correction radius and decreases until the
// system is non-singular; the message is the exact quotient Q / E.
//
// Reference: Welch & Berlekamp, US patent 4,633,470 (1986)
package reedsolomon

import (
	"errors"
	"fmt"

	"github.com/eth2030/blockcode/pkg/galois"
)

var (
	// ErrFieldDegree is returned for an unsupported extension degree.
	ErrFieldDegree = errors.New("reedsolomon: field degree must be between 2 and 16")

	// ErrInvalidDistance is returned for a non-positive design distance.
	ErrInvalidDistance = errors.New("reedsolomon: design distance must be at least 1")
)

// Code is an immutable Reed-Solomon codec over GF(2^m) with the given
// design distance. A Code is safe for concurrent use.
type Code struct {
	fieldDegree uint
	distance    int
}

// New builds a Reed-Solomon codec over GF(2^m) with design distance d.
func New(m uint, distance int) (Code, error) {
	if m < 2 || m > 16 {
		return Code{}, fmt.Errorf("%w: got %d", ErrFieldDegree, m)
	}
	if distance < 1 {
		return Code{}, fmt.Errorf("%w: got %d", ErrInvalidDistance, distance)
	}
	return Code{fieldDegree: m, distance: distance}, nil
}

// FieldDegree returns m, the degree of the underlying field extension.
func (c Code) FieldDegree() uint { return c.fieldDegree }

// Distance returns the design distance.
func (c Code) Distance() int { return c.distance }

// MaxErrors returns the number of symbol errors the code corrects.
func (c Code) MaxErrors() int { return (c.distance - 1) / 2 }

// point returns the i-th evaluation point: the integer i reinterpreted as
// a GF(2^m) element.
func (c Code) point(i int) galois.Elem {
	return galois.FromUint(c.fieldDegree, uint64(i))
}

// Encode evaluates the message polynomial at the first len(message) + d
// field points. The codeword is returned as a polynomial whose i-th
// coefficient is the value at point i.
func (c Code) Encode(message galois.Poly) galois.Poly {
	length := message.Len() + c.distance
	out := make([]galois.Elem, length)
	for i := range out {
		out[i] = message.Eval(c.point(i))
	}
	return galois.NewPoly(out)
}

// Decode recovers the message from a received word of N symbols, correcting
// up to MaxErrors symbol errors. For each trial error count e it builds the
// N-by-N system whose unknowns are the e lower coefficients of the error
// locator E (monic of degree e) followed by the N-e coefficients of
// Q = M*E; a singular system means fewer errors, so e is decremented. At
// e = 0 the system is a Vandermonde matrix and always solvable, which
// bounds the search.
func (c Code) Decode(received galois.Poly) (galois.Poly, error) {
	n := received.Len()
	if n == 0 {
		return galois.Poly{}, nil
	}
	coeffs := received.Coeffs()

	start := c.MaxErrors()
	if start > n {
		start = n
	}
	for e := start; e >= 0; e-- {
		lhs, rhs := c.linearSystem(e, coeffs)
		system := galois.NewMatrix(n, n, lhs)
		if system.Determinant().IsZero() {
			continue
		}
		solution, err := system.Solve(rhs)
		if err != nil {
			return galois.Poly{}, err
		}

		locator := make([]galois.Elem, 0, e+1)
		locator = append(locator, solution[:e]...)
		locator = append(locator, galois.One(c.fieldDegree))

		quotient, _, err := galois.NewPoly(solution[e:]).DivMod(galois.NewPoly(locator))
		if err != nil {
			return galois.Poly{}, err
		}
		return quotient, nil
	}
	return galois.Poly{}, galois.ErrSingular
}

// linearSystem lays out the row for sample i as: e columns y_i * x_i^j,
// then N-e columns -x_i^j, with right-hand side -y_i * x_i^e.
func (c Code) linearSystem(errorCount int, received []galois.Elem) (lhs, rhs []galois.Elem) {
	n := len(received)
	lhs = make([]galois.Elem, 0, n*n)
	rhs = make([]galois.Elem, 0, n)
	for i := 0; i < n; i++ {
		x := c.point(i)
		y := received[i]
		for j := 0; j < errorCount; j++ {
			lhs = append(lhs, y.Mul(x.Pow(uint(j))))
		}
		rhs = append(rhs, x.Pow(uint(errorCount)).Mul(y).Neg())
		for j := 0; j < n-errorCount; j++ {
			lhs = append(lhs, x.Pow(uint(j)).Neg())
		}
	}
	return lhs, rhs
}
