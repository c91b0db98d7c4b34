package galois

import "github.com/eth2030/blockcode/pkg/gf2"

// Poly is a dense polynomial with GF(2^m) coefficients, index 0 being the
// constant term. Polynomials are kept canonical: the highest-index
// coefficient of a non-zero polynomial is non-zero, so equality is
// coefficient-wise and trailing zeros never accumulate. The zero value is
// the zero polynomial.
type Poly struct {
	coeffs []Elem
}

// NewPoly builds a polynomial from its coefficients, constant term first,
// stripping trailing zero coefficients. The slice is copied.
func NewPoly(coeffs []Elem) Poly {
	n := len(coeffs)
	for n > 0 && coeffs[n-1].IsZero() {
		n--
	}
	out := make([]Elem, n)
	copy(out, coeffs[:n])
	return Poly{coeffs: out}
}

// Len returns the number of coefficients, zero for the zero polynomial.
func (p Poly) Len() int {
	return len(p.coeffs)
}

// Degree returns Len()-1: the degree of a non-zero polynomial, -1 for zero.
func (p Poly) Degree() int {
	return len(p.coeffs) - 1
}

// Coeffs returns a copy of the coefficients, constant term first.
func (p Poly) Coeffs() []Elem {
	out := make([]Elem, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

// Equal reports whether p and q have the same canonical coefficients.
func (p Poly) Equal(q Poly) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}
	return true
}

// Eval evaluates p at x by Horner's method. The zero polynomial evaluates
// to the zero of x's field.
func (p Poly) Eval(x Elem) Elem {
	if len(p.coeffs) == 0 {
		return Zero(x.FieldDegree())
	}
	result := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		result = result.Mul(x).Add(p.coeffs[i])
	}
	return result
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	longer, shorter := p.coeffs, q.coeffs
	if len(shorter) > len(longer) {
		longer, shorter = shorter, longer
	}
	out := make([]Elem, len(longer))
	copy(out, longer)
	for i, c := range shorter {
		out[i] = out[i].Add(c)
	}
	return NewPoly(out)
}

// Mul returns the product p * q.
func (p Poly) Mul(q Poly) Poly {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return Poly{}
	}
	m := p.coeffs[0].FieldDegree()
	out := make([]Elem, len(p.coeffs)+len(q.coeffs)-1)
	for i := range out {
		out[i] = Zero(m)
	}
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return NewPoly(out)
}

// DivMod returns the quotient and remainder of p divided by q, with
// deg(remainder) < deg(q). Dividing by the zero polynomial returns
// gf2.ErrDivisionByZero.
func (p Poly) DivMod(q Poly) (Poly, Poly, error) {
	if len(q.coeffs) == 0 {
		return Poly{}, Poly{}, gf2.ErrDivisionByZero
	}
	if len(p.coeffs) < len(q.coeffs) {
		return Poly{}, NewPoly(p.coeffs), nil
	}
	m := q.coeffs[len(q.coeffs)-1].FieldDegree()
	leadInv, err := q.coeffs[len(q.coeffs)-1].Inv()
	if err != nil {
		return Poly{}, Poly{}, err
	}
	rem := p.Coeffs()
	quo := make([]Elem, len(p.coeffs)-len(q.coeffs)+1)
	for i := range quo {
		quo[i] = Zero(m)
	}
	for d := len(rem) - 1; d >= len(q.coeffs)-1; d-- {
		if rem[d].IsZero() {
			continue
		}
		shift := d - (len(q.coeffs) - 1)
		factor := rem[d].Mul(leadInv)
		quo[shift] = factor
		for j, qc := range q.coeffs {
			rem[shift+j] = rem[shift+j].Sub(qc.Mul(factor))
		}
	}
	return NewPoly(quo), NewPoly(rem), nil
}
