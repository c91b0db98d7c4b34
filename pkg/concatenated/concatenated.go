// Package concatenated composes an outer Reed-Solomon code over GF(2^m)
// with an inner binary BCH code. Each outer symbol is carried through the
// inner code as an m-bit message with a sentinel bit x^n (n being the
// inner field degree) XORed on top. The sentinel pins the inner message to
// a fixed bit length, so symbols with high-order zero bits survive the
// inner code's degree-based length inference; it is XORed away again after
// the inner decode.
package concatenated

import (
	"errors"

	"github.com/eth2030/blockcode/pkg/bch"
	"github.com/eth2030/blockcode/pkg/galois"
	"github.com/eth2030/blockcode/pkg/gf2"
	"github.com/eth2030/blockcode/pkg/reedsolomon"
)

// ErrInnerCapacity is returned by New when the inner code's message length
// cannot hold a symbol together with its sentinel bit.
var ErrInnerCapacity = errors.New("concatenated: inner code cannot carry a symbol and its sentinel bit")

// Code is a two-level concatenated codec: outer Reed-Solomon symbols, each
// protected by an inner BCH block. A Code is safe for concurrent use.
type Code struct {
	outer reedsolomon.Code
	inner *bch.Code
}

// New combines an outer Reed-Solomon code with an inner BCH code. The
// inner message length must cover the sentinel bit at position n, i.e.
// k >= n+1 for the inner field degree n.
func New(outer reedsolomon.Code, inner *bch.Code) (Code, error) {
	if inner.MessageLength() < int(inner.FieldDegree())+1 {
		return Code{}, ErrInnerCapacity
	}
	return Code{outer: outer, inner: inner}, nil
}

// Outer returns the outer Reed-Solomon code.
func (c Code) Outer() reedsolomon.Code { return c.outer }

// Inner returns the inner BCH code.
func (c Code) Inner() *bch.Code { return c.inner }

// Encode RS-encodes the message and BCH-encodes every resulting symbol,
// sentinel bit included, into one inner codeword per symbol.
func (c Code) Encode(message galois.Poly) ([]gf2.Poly, error) {
	sentinel := gf2.Monomial(c.inner.FieldDegree())
	outer := c.outer.Encode(message)
	blocks := make([]gf2.Poly, 0, outer.Len())
	for _, symbol := range outer.Coeffs() {
		block, err := c.inner.Encode(symbol.Value().Add(sentinel))
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// Decode BCH-decodes every block, strips the sentinel, reassembles the
// outer word and RS-decodes it. A block the inner code reports as
// uncorrectable contributes a zero symbol and decoding continues — symbol
// errors are exactly what the outer code corrects. Any other inner
// failure, such as a wrong-length block, aborts the decode.
func (c Code) Decode(blocks []gf2.Poly) (galois.Poly, error) {
	sentinel := gf2.Monomial(c.inner.FieldDegree())
	symbols := make([]galois.Elem, 0, len(blocks))
	for _, block := range blocks {
		word, err := c.inner.Decode(block)
		switch {
		case err == nil:
			symbols = append(symbols, galois.New(c.outer.FieldDegree(), word.Add(sentinel)))
		case errors.Is(err, bch.ErrUncorrectable):
			symbols = append(symbols, galois.Zero(c.outer.FieldDegree()))
		default:
			return galois.Poly{}, err
		}
	}
	return c.outer.Decode(galois.NewPoly(symbols))
}
