// Package galois implements arithmetic in the binary extension fields
// GF(2^m): field elements built over packed GF(2) polynomials, dense
// polynomials with field coefficients, and a dense matrix with Gaussian
// elimination. The field GF(2^m) is GF(2)[x] modulo the smallest
// irreducible polynomial of degree m, so two elements constructed for the
// same m always share a modulus.
//
// The irreducible polynomial and the smallest primitive element are
// memoized per m: both searches are deterministic and the results never
// change, so each is computed once per process.
package galois

import (
	"sync"

	"github.com/eth2030/blockcode/pkg/gf2"
)

var (
	cacheMu   sync.RWMutex
	irrCache  = make(map[uint]gf2.Poly)
	primCache = make(map[uint]uint64)
)

// irreducible returns the memoized smallest irreducible polynomial of
// degree m.
func irreducible(m uint) gf2.Poly {
	cacheMu.RLock()
	p, ok := irrCache[m]
	cacheMu.RUnlock()
	if ok {
		return p
	}
	p = gf2.Irreducible(m)
	cacheMu.Lock()
	irrCache[m] = p
	cacheMu.Unlock()
	return p
}

// Elem is an element of GF(2^m): a residue of degree below m together with
// the field's irreducible modulus. Elem is a value type and is freely
// copied; operations return new values.
type Elem struct {
	value gf2.Poly
	m     uint
	irr   gf2.Poly
}

// New returns the element of GF(2^m) whose residue is the low m
// coefficients of value.
func New(m uint, value gf2.Poly) Elem {
	return Elem{value: value.Trunc(m), m: m, irr: irreducible(m)}
}

// FromUint returns the element of GF(2^m) encoded by the low m bits of v,
// LSB being the constant coefficient.
func FromUint(m uint, v uint64) Elem {
	return New(m, gf2.New(v))
}

// Zero returns the additive identity of GF(2^m).
func Zero(m uint) Elem {
	return New(m, gf2.Poly{})
}

// One returns the multiplicative identity of GF(2^m).
func One(m uint) Elem {
	return New(m, gf2.New(1))
}

// Value returns the element's residue as a GF(2) polynomial.
func (e Elem) Value() gf2.Poly {
	return e.value
}

// Uint64 returns the residue's bit pattern.
func (e Elem) Uint64() uint64 {
	return e.value.Uint64()
}

// FieldDegree returns m, the extension degree of the element's field.
func (e Elem) FieldDegree() uint {
	return e.m
}

// Irr returns the field's irreducible modulus.
func (e Elem) Irr() gf2.Poly {
	return e.irr
}

// IsZero reports whether e is the additive identity.
func (e Elem) IsZero() bool {
	return e.value.IsZero()
}

// IsOne reports whether e is the multiplicative identity.
func (e Elem) IsOne() bool {
	return e.value.IsOne()
}

// Equal reports whether e and o are the same element of the same field.
func (e Elem) Equal(o Elem) bool {
	return e.m == o.m && e.value.Equal(o.value)
}

// modIrr reduces v modulo the field modulus. The modulus is non-zero by
// construction, so division cannot fail.
func modIrr(v, irr gf2.Poly) gf2.Poly {
	_, r, _ := v.DivMod(irr)
	return r
}

// Add returns e + o.
func (e Elem) Add(o Elem) Elem {
	return Elem{value: modIrr(e.value.Add(o.value), e.irr), m: e.m, irr: e.irr}
}

// Sub returns e - o, identical to Add in characteristic 2.
func (e Elem) Sub(o Elem) Elem {
	return Elem{value: modIrr(e.value.Sub(o.value), e.irr), m: e.m, irr: e.irr}
}

// Neg returns -e, which is e itself.
func (e Elem) Neg() Elem {
	return e
}

// Mul returns e * o: the polynomial product reduced by the field modulus.
func (e Elem) Mul(o Elem) Elem {
	return Elem{value: modIrr(e.value.Mul(o.value), e.irr), m: e.m, irr: e.irr}
}

// Pow returns e raised to the exp-th power by repeated multiplication.
func (e Elem) Pow(exp uint) Elem {
	result := One(e.m)
	for i := uint(0); i < exp; i++ {
		result = result.Mul(e)
	}
	return result
}

// Inv returns the multiplicative inverse e^(2^m - 2), by Fermat's little
// theorem. Inverting zero returns gf2.ErrDivisionByZero.
func (e Elem) Inv() (Elem, error) {
	if e.IsZero() {
		return Elem{}, gf2.ErrDivisionByZero
	}
	return e.Pow(uint(1)<<e.m - 2), nil
}

// Div returns e / o. Dividing by zero returns gf2.ErrDivisionByZero.
func (e Elem) Div(o Elem) (Elem, error) {
	inv, err := o.Inv()
	if err != nil {
		return Elem{}, err
	}
	return e.Mul(inv), nil
}

// MinimalPoly returns the minimal polynomial of e over GF(2). The Galois
// conjugates e, e^2, e^4, ..., e^(2^(m-1)) are collected (deduplicated,
// since the Frobenius orbit may be shorter than m), and the product of
// (x - c) over the conjugates is expanded. Each coefficient of the product
// is Frobenius-invariant and therefore lies in GF(2); its low bit is folded
// back into a packed polynomial.
func (e Elem) MinimalPoly() gf2.Poly {
	conjugates := make([]Elem, 0, e.m)
	c := e
	for i := uint(0); i < e.m; i++ {
		seen := false
		for _, prev := range conjugates {
			if prev.Equal(c) {
				seen = true
				break
			}
		}
		if !seen {
			conjugates = append(conjugates, c)
		}
		c = c.Mul(c)
	}

	product := NewPoly([]Elem{One(e.m)})
	for _, conj := range conjugates {
		product = product.Mul(NewPoly([]Elem{conj, One(e.m)}))
	}

	var out gf2.Poly
	for i, coeff := range product.Coeffs() {
		if coeff.Value().Coeff(0) == 1 {
			out = out.Add(gf2.Monomial(uint(i)))
		}
	}
	return out
}

// IsPrimitive reports whether e generates the multiplicative group, i.e.
// whether its order is exactly 2^m - 1: e is multiplied into a running
// power 2^m - 1 times, and no intermediate power may hit 1 before the last.
func (e Elem) IsPrimitive() bool {
	order := (uint64(1) << e.m) - 1
	one := gf2.New(1)
	powers := gf2.New(1)
	for i := uint64(1); i < order; i++ {
		powers = modIrr(powers.Mul(e.value), e.irr)
		if powers.Equal(one) {
			return false
		}
	}
	powers = modIrr(powers.Mul(e.value), e.irr)
	return powers.Equal(one)
}

// PrimitiveElement returns the element of GF(2^m) with the smallest bit
// pattern that generates the multiplicative group. The result is memoized
// per m.
func PrimitiveElement(m uint) Elem {
	cacheMu.RLock()
	v, ok := primCache[m]
	cacheMu.RUnlock()
	if ok {
		return FromUint(m, v)
	}
	for candidate := uint64(1); candidate < uint64(1)<<m; candidate++ {
		alpha := FromUint(m, candidate)
		if alpha.IsPrimitive() {
			cacheMu.Lock()
			primCache[m] = candidate
			cacheMu.Unlock()
			return alpha
		}
	}
	panic("galois: no primitive element; modulus is not irreducible")
}

// String renders the residue in binary.
func (e Elem) String() string {
	return e.value.String()
}
