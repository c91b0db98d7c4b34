package galois

import (
	"errors"
	"testing"
)

func TestDeterminant(t *testing.T) {
	if got := NewMatrix(1, 1, elems(4, 7)).Determinant(); got.Uint64() != 7 {
		t.Fatalf("1x1 determinant = %v, want 111", got)
	}
	// det [[1,2],[3,4]] = 1*4 - 2*3 = 4 + 6 = 2 over GF(16).
	a := NewMatrix(2, 2, elems(4, 1, 2, 3, 4))
	if got := a.Determinant(); got.Uint64() != 2 {
		t.Fatalf("2x2 determinant = %v, want 10", got)
	}
	singular := NewMatrix(2, 2, elems(4, 1, 2, 1, 2))
	if got := singular.Determinant(); !got.IsZero() {
		t.Fatalf("determinant of singular matrix = %v, want 0", got)
	}
}

func TestDeterminantPivotSwap(t *testing.T) {
	// Zero in the top-left forces a row swap.
	a := NewMatrix(2, 2, elems(4, 0, 2, 3, 4))
	// det = 0*4 - 2*3 = 6.
	if got := a.Determinant(); got.Uint64() != 6 {
		t.Fatalf("determinant = %v, want 110", got)
	}
}

func TestSolve(t *testing.T) {
	// [[1,2],[3,4]] x = [5, 6] over GF(16).
	a := NewMatrix(2, 2, elems(4, 1, 2, 3, 4))
	x, err := a.Solve(elems(4, 5, 6))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	// Verify by substitution.
	for i := 0; i < 2; i++ {
		sum := Zero(4)
		for j := 0; j < 2; j++ {
			sum = sum.Add(a.At(i, j).Mul(x[j]))
		}
		want := []uint64{5, 6}[i]
		if sum.Uint64() != want {
			t.Fatalf("row %d: a*x = %v, want %d", i, sum, want)
		}
	}
}

func TestSolveSingular(t *testing.T) {
	a := NewMatrix(2, 2, elems(4, 1, 2, 1, 2))
	if _, err := a.Solve(elems(4, 1, 2)); !errors.Is(err, ErrSingular) {
		t.Fatalf("Solve singular: got %v, want ErrSingular", err)
	}
}

func TestSolveZeroSolution(t *testing.T) {
	// A non-singular system whose solution is the zero vector must succeed,
	// distinguishing "no pivot" from "solution happens to be zero".
	a := NewMatrix(2, 2, elems(4, 1, 2, 3, 4))
	x, err := a.Solve(elems(4, 0, 0))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for i, xi := range x {
		if !xi.IsZero() {
			t.Fatalf("x[%d] = %v, want 0", i, xi)
		}
	}
}
