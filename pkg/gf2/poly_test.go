package gf2

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func TestAdd(t *testing.T) {
	if got := New(0b101).Add(New(0b110)); !got.Equal(New(0b011)) {
		t.Fatalf("0b101 + 0b110 = %v, want 11", got)
	}
	if got := New(0b10).Add(New(0b01)); !got.Equal(New(0b11)) {
		t.Fatalf("0b10 + 0b01 = %v, want 11", got)
	}
}

func TestMul(t *testing.T) {
	if got := New(0b101).Mul(New(0b110)); !got.Equal(New(0b11110)) {
		t.Fatalf("0b101 * 0b110 = %v, want 11110", got)
	}
	if got := New(0b101).Mul(New(0b111)); !got.Equal(New(0b11011)) {
		t.Fatalf("0b101 * 0b111 = %v, want 11011", got)
	}
}

func TestMulMatchesShiftAndXOR(t *testing.T) {
	for a := uint64(1); a < 100; a++ {
		for b := uint64(1); b < 100; b++ {
			var want uint64
			x, y := a, b
			for y != 0 {
				if y&1 == 1 {
					want ^= x
				}
				x <<= 1
				y >>= 1
			}
			if got := New(a).Mul(New(b)); got.Uint64() != want {
				t.Fatalf("New(%d).Mul(New(%d)) = %v, want %b", a, b, got, want)
			}
		}
	}
}

func TestMulCommutativeAndDistributive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := New(rapid.Uint64().Draw(t, "a"))
		b := New(rapid.Uint64().Draw(t, "b"))
		c := New(rapid.Uint64().Draw(t, "c"))
		if !a.Mul(b).Equal(b.Mul(a)) {
			t.Fatalf("a*b != b*a for a=%v b=%v", a, b)
		}
		if !a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))) {
			t.Fatalf("a*(b+c) != a*b + a*c for a=%v b=%v c=%v", a, b, c)
		}
	})
}

func TestDivModIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := New(rapid.Uint64().Draw(t, "a"))
		b := New(rapid.Uint64Range(1, ^uint64(0)).Draw(t, "b"))
		q, r, err := a.DivMod(b)
		if err != nil {
			t.Fatalf("DivMod: %v", err)
		}
		if !q.Mul(b).Add(r).Equal(a) {
			t.Fatalf("q*b + r != a for a=%v b=%v q=%v r=%v", a, b, q, r)
		}
		if r.Degree() >= b.Degree() {
			t.Fatalf("deg(r)=%d not below deg(b)=%d for a=%v b=%v", r.Degree(), b.Degree(), a, b)
		}
	})
}

func TestDivModByZero(t *testing.T) {
	if _, _, err := New(0b101).DivMod(Poly{}); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("DivMod by zero: got %v, want ErrDivisionByZero", err)
	}
}

func TestDegree(t *testing.T) {
	if got := (Poly{}).Degree(); got != -1 {
		t.Fatalf("degree of zero = %d, want -1", got)
	}
	if got := New(1).Degree(); got != 0 {
		t.Fatalf("degree of 1 = %d, want 0", got)
	}
	if got := Monomial(200).Degree(); got != 200 {
		t.Fatalf("degree of x^200 = %d, want 200", got)
	}
}

func TestEval(t *testing.T) {
	cases := []struct {
		poly     uint64
		at0, at1 uint64
	}{
		{0b0, 0, 0},
		{0b1, 1, 1},
		{0b10, 0, 1},
		{0b111, 1, 1},
		{0b1011, 1, 1},
		{0b1010, 0, 0},
	}
	for _, tc := range cases {
		p := New(tc.poly)
		if got := p.Eval(0); got != tc.at0 {
			t.Fatalf("%v at 0 = %d, want %d", p, got, tc.at0)
		}
		if got := p.Eval(1); got != tc.at1 {
			t.Fatalf("%v at 1 = %d, want %d", p, got, tc.at1)
		}
	}
}

func TestGCDLCM(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := New(rapid.Uint64Range(1, 1<<32).Draw(t, "a"))
		b := New(rapid.Uint64Range(1, 1<<32).Draw(t, "b"))
		g := a.GCD(b)
		if g.IsZero() {
			t.Fatalf("gcd of non-zero polynomials is zero: a=%v b=%v", a, b)
		}
		if r, _ := a.Mod(g); !r.IsZero() {
			t.Fatalf("gcd %v does not divide a=%v", g, a)
		}
		if r, _ := b.Mod(g); !r.IsZero() {
			t.Fatalf("gcd %v does not divide b=%v", g, b)
		}
		l := a.LCM(b)
		if r, _ := l.Mod(a); !r.IsZero() {
			t.Fatalf("lcm %v not divisible by a=%v", l, a)
		}
		if r, _ := l.Mod(b); !r.IsZero() {
			t.Fatalf("lcm %v not divisible by b=%v", l, b)
		}
		if !l.Mul(g).Equal(a.Mul(b)) {
			t.Fatalf("lcm*gcd != a*b for a=%v b=%v", a, b)
		}
	})
	if !New(0).LCM(New(0b101)).IsZero() {
		t.Fatal("lcm(0, p) must be zero")
	}
}

func TestIrreducibleTable(t *testing.T) {
	want := []uint64{0b10, 0b111, 0b1011, 0b10011, 0b100101, 0b1000011, 0b10000011}
	for i, w := range want {
		degree := uint(i + 1)
		if got := Irreducible(degree); !got.Equal(New(w)) {
			t.Fatalf("Irreducible(%d) = %v, want %b", degree, got, w)
		}
	}
}

func TestShifts(t *testing.T) {
	p := New(0b1011)
	if got := p.Lsh(4); !got.Equal(New(0b10110000)) {
		t.Fatalf("Lsh(4) = %v, want 10110000", got)
	}
	if got := p.Rsh(2); !got.Equal(New(0b10)) {
		t.Fatalf("Rsh(2) = %v, want 10", got)
	}
	if got := p.Trunc(2); !got.Equal(New(0b11)) {
		t.Fatalf("Trunc(2) = %v, want 11", got)
	}
}

func TestString(t *testing.T) {
	if got := New(0b1011).String(); got != "1011" {
		t.Fatalf("String = %q, want 1011", got)
	}
	if got := (Poly{}).String(); got != "0" {
		t.Fatalf("String of zero = %q, want 0", got)
	}
	if got := Monomial(64).String(); len(got) != 65 || got[0] != '1' {
		t.Fatalf("String of x^64 = %q, want a 1 followed by 64 zeros", got)
	}
}
