// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package field

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// FieldElement is an element of a prime-order field over a native integer
// type T, i.e. a residue value n with 0 <= n < order.  Elements are
// immutable values: every operation returns a fresh element and operands are
// never modified.  Elements must be obtained through New or Reduce; the zero
// value of this type is not a valid element.
//
// The engine reduces after every step but performs no widening, so the
// usable order is bounded by T: order*order must fit within T, otherwise
// multiplication (and hence division and exponentiation) silently wraps.
// For a 16-bit type this limits the order to 251 or below; for uint64, to
// roughly 2³².  The burden of respecting this bound is on the caller.
//
//nolint:revive
type FieldElement[T constraints.Integer] struct {
	n     T
	order T
}

// New constructs a field element from a residue and an order.  The order
// must be at least two and the residue must already lie within [0, order);
// out-of-range residues are rejected rather than reduced (see Reduce).
// Correct division additionally requires the order to be prime, which is
// deliberately not verified here (callers may consult IsPrime).
func New[T constraints.Integer](n, order T) (FieldElement[T], error) {
	if order < 2 {
		return FieldElement[T]{}, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	//
	if n < 0 || n >= order {
		return FieldElement[T]{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, n, order)
	}
	//
	return FieldElement[T]{n: n, order: order}, nil
}

// Reduce constructs a field element from an arbitrary value, mapping it into
// [0, order) first.  Negative values of signed types wrap around, so e.g.
// Reduce(-1, 7) yields the element 6.
func Reduce[T constraints.Integer](n, order T) (FieldElement[T], error) {
	if order < 2 {
		return FieldElement[T]{}, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	//
	n = n % order
	// Wrap negative residues (signed T only)
	if n < 0 {
		n += order
	}
	//
	return FieldElement[T]{n: n, order: order}, nil
}

// Value returns the residue value of x.
func (x FieldElement[T]) Value() T {
	return x.n
}

// Order returns the order of the field x is drawn from.
func (x FieldElement[T]) Order() T {
	return x.order
}

// Add x + y, requiring both elements to share the same order.  The sum
// x.n + y.n is formed before reduction, so the order must leave headroom for
// one addition within T.
func (x FieldElement[T]) Add(y FieldElement[T]) (FieldElement[T], error) {
	if x.order != y.order {
		return FieldElement[T]{}, fmt.Errorf("add: %w (%d vs %d)", ErrModulusMismatch, x.order, y.order)
	}
	//
	return FieldElement[T]{n: (x.n + y.n) % x.order, order: x.order}, nil
}

// Sub x - y, requiring both elements to share the same order.  When
// x.n < y.n the difference is taken the other way round and subtracted from
// the order, so unsigned types never underflow.
func (x FieldElement[T]) Sub(y FieldElement[T]) (FieldElement[T], error) {
	if x.order != y.order {
		return FieldElement[T]{}, fmt.Errorf("sub: %w (%d vs %d)", ErrModulusMismatch, x.order, y.order)
	}
	//
	var n T
	//
	if x.n < y.n {
		n = x.order - ((y.n - x.n) % x.order)
	} else {
		n = (x.n - y.n) % x.order
	}
	//
	return FieldElement[T]{n: n, order: x.order}, nil
}

// Mul x * y, requiring both elements to share the same order.  The product
// x.n * y.n is formed before reduction, hence the order*order bound
// documented on FieldElement.
func (x FieldElement[T]) Mul(y FieldElement[T]) (FieldElement[T], error) {
	if x.order != y.order {
		return FieldElement[T]{}, fmt.Errorf("mul: %w (%d vs %d)", ErrModulusMismatch, x.order, y.order)
	}
	//
	return FieldElement[T]{n: (x.n * y.n) % x.order, order: x.order}, nil
}

// Div x / y, requiring both elements to share the same order and y to be
// nonzero.  The quotient is x * y⁻¹, where the inverse is computed as
// y^(order-2) following Fermat's little theorem.  This is only an inverse
// when the order is prime, which is not checked here.
func (x FieldElement[T]) Div(y FieldElement[T]) (FieldElement[T], error) {
	if x.order != y.order {
		return FieldElement[T]{}, fmt.Errorf("div: %w (%d vs %d)", ErrModulusMismatch, x.order, y.order)
	}
	//
	if y.n == 0 {
		return FieldElement[T]{}, fmt.Errorf("div: %w", ErrDivisionByZero)
	}
	// y⁻¹ = y^(order-2)
	inv := ModExp(y.n, x.order-2, x.order)
	//
	return FieldElement[T]{n: (x.n * inv) % x.order, order: x.order}, nil
}

// Pow x^exp.  The exponent is signed regardless of T: since x^(order-1) = 1
// for nonzero x under a prime order, exponents are only meaningful modulo
// order-1, and exp is first normalized into [0, order-2].  Negative
// exponents therefore work for unsigned element types as well.
func (x FieldElement[T]) Pow(exp int64) (FieldElement[T], error) {
	if x.order < 2 {
		return FieldElement[T]{}, fmt.Errorf("pow: %w: %d", ErrInvalidOrder, x.order)
	}
	// Exponents live modulo order-1
	p := int64(x.order) - 1
	e := ((exp % p) + p) % p
	//
	return FieldElement[T]{n: ModExp(x.n, T(e), x.order), order: x.order}, nil
}

// One returns the multiplicative identity of the field x is drawn from.
func (x FieldElement[T]) One() FieldElement[T] {
	return FieldElement[T]{n: 1, order: x.order}
}

// Zero returns the additive identity of the field x is drawn from.
func (x FieldElement[T]) Zero() FieldElement[T] {
	return FieldElement[T]{n: 0, order: x.order}
}

// Equals holds when x and y have both the same residue and the same order.
func (x FieldElement[T]) Equals(y FieldElement[T]) bool {
	return x == y
}

// IsZero checks whether x is the additive identity.
func (x FieldElement[T]) IsZero() bool {
	return x.n == 0
}

func (x FieldElement[T]) String() string {
	return fmt.Sprintf("%d (mod %d)", x.n, x.order)
}
