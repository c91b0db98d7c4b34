// Package gf2 implements polynomials over GF(2) packed into a 256-bit word.
// Bit i of the backing word is the coefficient of x^i, so the zero polynomial
// is the zero word and the degree of a non-zero polynomial is the index of
// its highest set bit. Addition and subtraction are XOR, multiplication is
// carry-less shift-and-XOR, and division is binary long division.
//
// The 256-bit carrier bounds every polynomial to degree 255. That is enough
// for GF(2^m) moduli up to m = 16 and for BCH codewords up to length
// 2^8 - 1 = 255; coefficients shifted above x^255 are discarded.
package gf2

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"

	"github.com/holiman/uint256"
)

// ErrDivisionByZero is returned when the divisor (or a field inverse
// operand) is the zero polynomial.
var ErrDivisionByZero = errors.New("gf2: division by zero")

// Poly is a polynomial over GF(2). The zero value is the zero polynomial.
// Poly is a value type: operations return new values and never alias their
// operands.
type Poly struct {
	bits uint256.Int
}

// New returns the polynomial whose coefficient bits are the bits of v.
func New(v uint64) Poly {
	var p Poly
	p.bits.SetUint64(v)
	return p
}

// Monomial returns x^n.
func Monomial(n uint) Poly {
	var p Poly
	p.bits.SetUint64(1)
	p.bits.Lsh(&p.bits, n)
	return p
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return p.bits.IsZero()
}

// IsOne reports whether p is the constant polynomial 1.
func (p Poly) IsOne() bool {
	return p.bits.BitLen() == 1
}

// Equal reports whether p and q have identical coefficients.
func (p Poly) Equal(q Poly) bool {
	return p.bits.Eq(&q.bits)
}

// Degree returns the degree of p. The zero polynomial has degree -1, which
// keeps Degree()+1 equal to the bit length and orders zero below every
// non-zero polynomial.
func (p Poly) Degree() int {
	return p.bits.BitLen() - 1
}

// Coeff returns the coefficient of x^i, either 0 or 1.
func (p Poly) Coeff(i uint) uint64 {
	var t uint256.Int
	t.Rsh(&p.bits, i)
	return t.Uint64() & 1
}

// Uint64 returns the low 64 coefficient bits. It is the full value for any
// polynomial of degree below 64.
func (p Poly) Uint64() uint64 {
	return p.bits.Uint64()
}

// Add returns p + q. Addition over GF(2) is XOR.
func (p Poly) Add(q Poly) Poly {
	var r Poly
	r.bits.Xor(&p.bits, &q.bits)
	return r
}

// Sub returns p - q, which equals p + q in characteristic 2.
func (p Poly) Sub(q Poly) Poly {
	return p.Add(q)
}

// Neg returns -p, which is p itself: every element is its own additive
// inverse under XOR. The method exists so the algebra presents a ring.
func (p Poly) Neg() Poly {
	return p
}

// Lsh returns p * x^n.
func (p Poly) Lsh(n uint) Poly {
	var r Poly
	r.bits.Lsh(&p.bits, n)
	return r
}

// Rsh returns the quotient of p by x^n, dropping the low n coefficients.
func (p Poly) Rsh(n uint) Poly {
	var r Poly
	r.bits.Rsh(&p.bits, n)
	return r
}

// Trunc returns p modulo x^n, the polynomial made of the low n coefficients.
func (p Poly) Trunc(n uint) Poly {
	var mask uint256.Int
	mask.SetUint64(1)
	mask.Lsh(&mask, n)
	mask.SubUint64(&mask, 1)
	var r Poly
	r.bits.And(&p.bits, &mask)
	return r
}

// Mul returns the carry-less product p * q: for each set bit i of q, p
// shifted up by i is XORed into the accumulator.
func (p Poly) Mul(q Poly) Poly {
	var acc Poly
	shifted := p
	for i := 0; i < q.bits.BitLen(); i++ {
		if q.Coeff(uint(i)) == 1 {
			acc.bits.Xor(&acc.bits, &shifted.bits)
		}
		shifted.bits.Lsh(&shifted.bits, 1)
	}
	return acc
}

// Pow returns p raised to the n-th power by repeated multiplication.
func (p Poly) Pow(n uint) Poly {
	result := New(1)
	for i := uint(0); i < n; i++ {
		result = result.Mul(p)
	}
	return result
}

// DivMod returns the quotient and remainder of binary long division of p
// by q, with deg(remainder) < deg(q). For every a and non-zero b,
// q*b + r == a. Dividing by the zero polynomial returns ErrDivisionByZero.
func (p Poly) DivMod(q Poly) (Poly, Poly, error) {
	if q.IsZero() {
		return Poly{}, Poly{}, ErrDivisionByZero
	}
	var quo Poly
	rem := p
	dq := q.Degree()
	for rem.Degree() >= dq {
		shift := uint(rem.Degree() - dq)
		rem = rem.Add(q.Lsh(shift))
		quo = quo.Add(Monomial(shift))
	}
	return quo, rem, nil
}

// Div returns the quotient of p by q.
func (p Poly) Div(q Poly) (Poly, error) {
	quo, _, err := p.DivMod(q)
	return quo, err
}

// Mod returns the remainder of p modulo q.
func (p Poly) Mod(q Poly) (Poly, error) {
	_, rem, err := p.DivMod(q)
	return rem, err
}

// Eval evaluates p at x, which must be 0 or 1: the only points of GF(2).
// At 0 the value is the constant coefficient; at 1 it is the XOR of all
// coefficients, i.e. the parity of the bit count.
func (p Poly) Eval(x uint64) uint64 {
	if x == 0 {
		return p.Coeff(0)
	}
	return uint64(bits.OnesCount64(p.bits[0]^p.bits[1]^p.bits[2]^p.bits[3]) & 1)
}

// GCD returns the greatest common divisor of p and q by the Euclidean
// algorithm. GCD(0, 0) is 0.
func (p Poly) GCD(q Poly) Poly {
	a, b := p, q
	for !b.IsZero() {
		_, r, _ := a.DivMod(b)
		a, b = b, r
	}
	return a
}

// LCM returns the least common multiple of p and q, with the convention
// that the lcm of the zero polynomial with anything is zero. The gcd is
// divided out before multiplying so intermediates stay within the carrier
// whenever the result does.
func (p Poly) LCM(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	g := p.GCD(q)
	quo, _, _ := p.DivMod(g)
	return quo.Mul(q)
}

// Irreducible returns the smallest polynomial of the given degree with no
// divisor of degree between 1 and degree-1: candidates are scanned upward
// from x^degree, each trial-divided by every smaller polynomial from x on.
func Irreducible(degree uint) Poly {
	for cand := uint64(1) << degree; cand <= uint64(1)<<(degree+1); cand++ {
		candidate := New(cand)
		irreducible := true
		for i := uint64(2); i < uint64(1)<<degree; i++ {
			if _, rem, _ := candidate.DivMod(New(i)); rem.IsZero() {
				irreducible = false
				break
			}
		}
		if irreducible {
			return candidate
		}
	}
	return Poly{}
}

// String renders the coefficient bits in binary, most significant first,
// matching the packed representation.
func (p Poly) String() string {
	if p.bits.IsZero() {
		return "0"
	}
	top := (p.bits.BitLen() - 1) / 64
	s := strconv.FormatUint(p.bits[top], 2)
	for i := top - 1; i >= 0; i-- {
		s += fmt.Sprintf("%064b", p.bits[i])
	}
	return s
}
