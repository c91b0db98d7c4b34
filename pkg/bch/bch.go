// Package bch implements a binary BCH encoder/decoder over GF(2^m) with
// code length n = 2^m - 1. The generator polynomial is the least common
// multiple of the minimal polynomials of alpha^1 .. alpha^(d-1) for a
// primitive element alpha and design distance d, which guarantees d-1
// consecutive roots and therefore minimum distance at least d.
//
// Encoding is systematic: the message occupies the top bits of the
// codeword and the parity remainder fills the bottom deg(g) bits. Decoding
// computes syndromes by evaluating the received word at the powers of
// alpha, solves the Peterson system for the error locator polynomial, and
// locates errors by Chien search over all field elements.
//
// Reference: Blahut, "Theory and Practice of Error Control Codes" (1983)
package bch

import (
	"errors"
	"fmt"

	"github.com/eth2030/blockcode/pkg/galois"
	"github.com/eth2030/blockcode/pkg/gf2"
)

var (
	// ErrFieldDegree is returned for a field degree whose code length
	// cannot fit the 256-bit codeword carrier.
	ErrFieldDegree = errors.New("bch: field degree must be between 2 and 8")

	// ErrInvalidDistance is returned when the design distance admits no
	// correctable error.
	ErrInvalidDistance = errors.New("bch: design distance must allow at least one correctable error")

	// ErrMessageTooLong is returned by Encode when the message does not
	// fit the code's message length.
	ErrMessageTooLong = errors.New("bch: message is too long")

	// ErrWrongLength is returned by Decode when the received word does not
	// have degree exactly n-1. Leading zeros do not change a packed word, so
	// any word whose bit n-1 is clear is rejected.
	ErrWrongLength = errors.New("bch: received word has wrong length")

	// ErrUncorrectable is returned by Decode when correction does not land
	// on a codeword, i.e. more errors occurred than the code can repair.
	ErrUncorrectable = errors.New("bch: received word is uncorrectable")
)

// Code is an immutable binary BCH codec. A Code is safe for concurrent use.
type Code struct {
	fieldDegree   uint
	alpha         galois.Elem
	distance      int
	length        int
	messageLength int
	generator     gf2.Poly
}

// FromDistance builds the BCH code over GF(2^m) with the given design
// distance. An even distance is rounded down to the next odd one, as only
// t = (distance-1)/2 errors are correctable either way.
func FromDistance(m uint, distance int) (*Code, error) {
	return FromMaxErrors(m, (distance-1)/2)
}

// FromMaxErrors builds the BCH code over GF(2^m) correcting up to
// maxErrors errors, i.e. with design distance 2*maxErrors + 1.
func FromMaxErrors(m uint, maxErrors int) (*Code, error) {
	if m < 2 || m > 8 {
		return nil, fmt.Errorf("%w: got %d", ErrFieldDegree, m)
	}
	if maxErrors < 1 {
		return nil, fmt.Errorf("%w: max errors %d", ErrInvalidDistance, maxErrors)
	}
	distance := 2*maxErrors + 1
	alpha := galois.PrimitiveElement(m)
	length := (1 << m) - 1

	generator := alpha.MinimalPoly()
	for i := 2; i < distance; i++ {
		generator = generator.LCM(alpha.Pow(uint(i)).MinimalPoly())
	}

	return &Code{
		fieldDegree:   m,
		alpha:         alpha,
		distance:      distance,
		length:        length,
		messageLength: length - generator.Degree(),
		generator:     generator,
	}, nil
}

// FieldDegree returns m, the degree of the underlying field extension.
func (c *Code) FieldDegree() uint { return c.fieldDegree }

// Distance returns the design distance.
func (c *Code) Distance() int { return c.distance }

// MaxErrors returns the number of errors the code corrects.
func (c *Code) MaxErrors() int { return (c.distance - 1) / 2 }

// Length returns the code length n = 2^m - 1.
func (c *Code) Length() int { return c.length }

// MessageLength returns the message capacity k = n - deg(g) in bits.
func (c *Code) MessageLength() int { return c.messageLength }

// Generator returns the generator polynomial g(x).
func (c *Code) Generator() gf2.Poly { return c.generator }

// PrimitiveElement returns the primitive element alpha the code is built on.
func (c *Code) PrimitiveElement() galois.Elem { return c.alpha }

// Encode produces the systematic codeword for message: the message is
// shifted up by n minus its bit length and the remainder modulo g(x) is
// subtracted, so every codeword has degree exactly n-1.
//
// The message length is inferred from the highest set bit, so a round trip
// through Decode reproduces the message exactly when bit k-1 is set;
// shorter messages come back in the top bits of the k-bit window. Callers
// that need fixed-length framing set a marker bit, as the concatenated
// code does.
func (c *Code) Encode(message gf2.Poly) (gf2.Poly, error) {
	messageLength := message.Degree() + 1
	if messageLength > c.messageLength {
		return gf2.Poly{}, fmt.Errorf("%w: %d bits, capacity %d", ErrMessageTooLong, messageLength, c.messageLength)
	}
	padded := message.Lsh(uint(c.length - messageLength))
	_, remainder, err := padded.DivMod(c.generator)
	if err != nil {
		return gf2.Poly{}, err
	}
	return padded.Sub(remainder), nil
}

// Decode corrects up to MaxErrors bit errors in received and extracts the
// systematic message. The received word must have degree exactly n-1.
// After correction the syndromes are recomputed; a non-zero syndrome means
// the word was beyond the code's correction radius and ErrUncorrectable is
// returned instead of a silently wrong message.
func (c *Code) Decode(received gf2.Poly) (gf2.Poly, error) {
	if received.Degree()+1 != c.length {
		return gf2.Poly{}, fmt.Errorf("%w: got %d bits, want %d", ErrWrongLength, received.Degree()+1, c.length)
	}

	syndromes := c.syndromes(received)

	var pattern gf2.Poly
	if locator, ok := c.errorLocator(syndromes); ok {
		for _, position := range c.chienSearch(locator) {
			pattern = pattern.Add(gf2.Monomial(uint(position)))
		}
	}
	corrected := received.Add(pattern)

	for _, s := range c.syndromes(corrected) {
		if !s.IsZero() {
			return gf2.Poly{}, ErrUncorrectable
		}
	}
	return corrected.Rsh(uint(c.generator.Degree())), nil
}

// syndromes evaluates the word, reinterpreted as a polynomial with GF(2^m)
// coefficients 0 and 1, at alpha^1 .. alpha^(d-1).
func (c *Code) syndromes(word gf2.Poly) []galois.Elem {
	coeffs := make([]galois.Elem, c.length)
	for i := 0; i < c.length; i++ {
		coeffs[i] = galois.FromUint(c.fieldDegree, word.Coeff(uint(i)))
	}
	poly := galois.NewPoly(coeffs)

	syndromes := make([]galois.Elem, 0, c.distance-1)
	for i := 1; i < c.distance; i++ {
		syndromes = append(syndromes, poly.Eval(c.alpha.Pow(uint(i))))
	}
	return syndromes
}

// errorLocator solves the Peterson system for the error locator
// polynomial: for trial error counts v from t down to 1 it builds the
// v-by-v matrix M[i][j] = S[i+j] with right-hand side -S[v+i] and attempts
// a solve. The first non-singular system yields the locator's lower
// coefficients; the leading coefficient 1 is appended. Reports false when
// every system is singular, which includes the all-zero syndrome case.
func (c *Code) errorLocator(syndromes []galois.Elem) (galois.Poly, bool) {
	t := len(syndromes) / 2
	for v := t; v >= 1; v-- {
		system := galois.ZeroMatrix(v, v, c.fieldDegree)
		for i := 0; i < v; i++ {
			for j := 0; j < v; j++ {
				system.Set(i, j, syndromes[i+j])
			}
		}
		rhs := make([]galois.Elem, v)
		for i := 0; i < v; i++ {
			rhs[i] = syndromes[v+i].Neg()
		}
		solution, err := system.Solve(rhs)
		if err != nil {
			continue
		}
		solution = append(solution, galois.One(c.fieldDegree))
		return galois.NewPoly(solution), true
	}
	return galois.Poly{}, false
}

// chienSearch evaluates the locator at alpha^i for every position i; the
// zeros mark the error positions.
func (c *Code) chienSearch(locator galois.Poly) []int {
	var positions []int
	for i := 0; i < c.length; i++ {
		if locator.Eval(c.alpha.Pow(uint(i))).IsZero() {
			positions = append(positions, i)
		}
	}
	return positions
}
