package smallfield

import (
	"cmp"
	"fmt"
	"math/big"

	"github.com/consensys/go-galois/pkg/field"
)

// Element of a prime order field, represented in Montgomery form to speed up multiplications.
type Element [1]uint32 // defined as an array to prevent mistaken use of arithmetic operators, or naive assignments.

// A Field of prime order, less than 2³¹.  The field object carries the
// per-modulus reduction parameters once, so elements themselves stay a bare
// machine word.
type Field struct {
	modulus           uint32
	negModulusInvModR uint32
}

// New returns the field of the given order.  The order must be odd
// (Montgomery form) and leave one bit of slack below 2³²; as everywhere in
// this module, primality is the caller's lookout.
func New(modulus uint32) Field {
	if modulus >= 1<<31 {
		panic("modulus too large") // need at least one bit of "slack"
	}

	m := big.NewInt(int64(modulus))
	m.ModInverse(m, big.NewInt(1<<32))

	return Field{modulus: modulus, negModulusInvModR: uint32(1<<32 - m.Uint64())}
}

// Add x0 + x1 + xRest[0] + xRest[1] + ...
func (f Field) Add(x0, x1 Element, xRest ...Element) Element {
	res := Element{x0[0] + x1[0]}
	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}

	for _, e := range xRest {
		res[0] += e[0]
		if res[0] >= f.modulus {
			res[0] -= f.modulus
		}
	}

	return res
}

// Sub x0 - x1 - xRest[0] - xRest[1] - ...
func (f Field) Sub(x0, x1 Element, xRest ...Element) Element {
	const negMask uint32 = 1 << 31

	res := Element{x0[0] - x1[0]}
	if res[0]&negMask != 0 {
		res[0] += f.modulus
	}

	for _, e := range xRest {
		res[0] -= e[0]
		if res[0]&negMask != 0 {
			res[0] += f.modulus
		}
	}

	return res
}

// montgomeryReduce x -> x.R⁻¹ (mod m)
func (f Field) montgomeryReduce(x uint64) Element {
	// textbook Montgomery reduction
	const R = 1 << 32
	m := (x * uint64(f.negModulusInvModR)) % R // m = x * (-modulus⁻¹) (mod R)

	res := Element{uint32((x + m*uint64(f.modulus)) / R)}

	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}

	return res
}

// ToUint32 returns the numerical (non-Montgomery)
// value of x.
func (f Field) ToUint32(x Element) uint32 {
	return f.montgomeryReduce(uint64(x[0]))[0]
}

func (f Field) mul(a, b Element) Element {
	return f.montgomeryReduce(uint64(a[0]) * uint64(b[0]))
}

// Mul x0 * x1 * xRest[0] * xRest[1] * ...
func (f Field) Mul(x0, x1 Element, xRest ...Element) Element {
	res := f.mul(x0, x1)
	for _, e := range xRest {
		res = f.mul(res, e)
	}

	return res
}

// Exp x^n by square-and-multiply.  Staying in Montgomery form throughout
// keeps every step a single reduction.
func (f Field) Exp(x Element, n uint64) Element {
	res := f.NewElement(1)

	for n > 0 {
		if n&1 == 1 {
			res = f.mul(res, x)
		}

		n >>= 1

		if n > 0 {
			x = f.mul(x, x)
		}
	}

	return res
}

// Inverse x⁻¹ computed as x^(modulus-2), or 0 if x = 0. Only an inverse
// when the modulus is prime.
func (f Field) Inverse(x Element) Element {
	if x == (Element{}) {
		return x
	}

	return f.Exp(x, uint64(f.modulus)-2)
}

// Div x0 / x1, failing on a zero divisor.
func (f Field) Div(x0, x1 Element) (Element, error) {
	if x1 == (Element{}) {
		return Element{}, fmt.Errorf("div: %w", field.ErrDivisionByZero)
	}

	return f.mul(x0, f.Inverse(x1)), nil
}

// NewElement returns an element of the field f corresponding to the natural number x.
func (f Field) NewElement(x uint32) Element {
	return Element{uint32(uint64(x) << 32 % uint64(f.modulus))}
}

// Cmp compares the numerical values of x0 and x1.
func (f Field) Cmp(x0, x1 Element) int {
	return cmp.Compare(f.ToUint32(x0), f.ToUint32(x1))
}
