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

// Package u256 provides field elements over 256-bit (4x64 limb) unsigned
// integers with a runtime order.  Unlike the native-width engine, arithmetic
// here never overflows: both operands are converted into a residue form
// bound to the shared order (Montgomery arithmetic underneath, provided by
// filippo.io/bigmod), combined in that form, and converted back.  The
// residue form requires the order to be odd, which every prime order above
// two satisfies.
package u256

import (
	"fmt"

	"filippo.io/bigmod"
	"github.com/consensys/go-galois/pkg/field"
	"github.com/holiman/uint256"
)

// Element is an immutable field element (n, order) with n < order.  The
// zero value of this type is not a valid element; use New or Reduce.
type Element struct {
	n     uint256.Int
	order uint256.Int
}

// New constructs a field element from a residue and an order.  As with the
// native-width engine, the residue must already lie within [0, order); use
// Reduce for arbitrary values.  The order must be odd and at least two, and
// must be prime for division to behave as an inverse (not checked here).
func New(n, order *uint256.Int) (Element, error) {
	if err := checkOrder(order); err != nil {
		return Element{}, err
	}
	//
	if n.Cmp(order) >= 0 {
		return Element{}, fmt.Errorf("%w: %v not in [0, %v)", field.ErrOutOfRange, n, order)
	}
	//
	return Element{n: *n, order: *order}, nil
}

// Reduce constructs a field element from an arbitrary value, reducing it
// modulo the order first.
func Reduce(n, order *uint256.Int) (Element, error) {
	if err := checkOrder(order); err != nil {
		return Element{}, err
	}
	//
	var r uint256.Int
	//
	r.Mod(n, order)
	//
	return Element{n: r, order: *order}, nil
}

func checkOrder(order *uint256.Int) error {
	if order.LtUint64(2) {
		return fmt.Errorf("%w: %v", field.ErrInvalidOrder, order)
	}
	// Montgomery residues require an odd order
	if order[0]&1 == 0 {
		return fmt.Errorf("%w: %v is even", field.ErrInvalidOrder, order)
	}
	//
	return nil
}

// Uint256 returns (a copy of) the residue value of x.
func (x Element) Uint256() *uint256.Int {
	n := x.n
	//
	return &n
}

// Order returns (a copy of) the order of the field x is drawn from.
func (x Element) Order() *uint256.Int {
	order := x.order
	//
	return &order
}

// Add x + y, requiring both elements to share the same order.
func (x Element) Add(y Element) (Element, error) {
	m, a, b, err := x.residues("add", y)
	if err != nil {
		return Element{}, err
	}
	//
	return x.retrieve(a.Add(b, m), m), nil
}

// Sub x - y, requiring both elements to share the same order.
func (x Element) Sub(y Element) (Element, error) {
	m, a, b, err := x.residues("sub", y)
	if err != nil {
		return Element{}, err
	}
	//
	return x.retrieve(a.Sub(b, m), m), nil
}

// Mul x * y, requiring both elements to share the same order.  The product
// is reduced as part of the residue multiplication itself, so orders close
// to the 256-bit ceiling are safe.
func (x Element) Mul(y Element) (Element, error) {
	m, a, b, err := x.residues("mul", y)
	if err != nil {
		return Element{}, err
	}
	//
	return x.retrieve(a.Mul(b, m), m), nil
}

// Div x / y, requiring both elements to share the same order and y to be
// nonzero.  As in the native-width engine, the inverse is y^(order-2) by
// Fermat's little theorem, computed entirely in residue form; the order must
// be prime for this to be an inverse.
func (x Element) Div(y Element) (Element, error) {
	m, a, b, err := x.residues("div", y)
	if err != nil {
		return Element{}, err
	}
	//
	if y.n.IsZero() {
		return Element{}, fmt.Errorf("div: %w", field.ErrDivisionByZero)
	}
	// order - 2, guarded against underflow
	pm2, underflow := new(uint256.Int).SubOverflow(&x.order, uint256.NewInt(2))
	if underflow {
		return Element{}, fmt.Errorf("div: %w: %v", field.ErrInvalidOrder, &x.order)
	}
	// a / b = a * b⁻¹ = a * b^(order-2)
	inv := bigmod.NewNat().Exp(b, pm2.Bytes(), m)
	//
	return x.retrieve(inv.Mul(a, m), m), nil
}

// Pow x^exp for an unsigned 256-bit exponent, computed by the residue
// form's square-and-multiply.  The exponent is taken as given rather than
// reduced modulo order-1; callers wanting a negative power combine Pow with
// Div explicitly.
func (x Element) Pow(exp *uint256.Int) (Element, error) {
	m, err := x.modulus()
	if err != nil {
		return Element{}, err
	}
	//
	a, err := bigmod.NewNat().SetBytes(x.n.Bytes(), m)
	if err != nil {
		return Element{}, fmt.Errorf("pow: %w", err)
	}
	//
	return x.retrieve(bigmod.NewNat().Exp(a, exp.Bytes(), m), m), nil
}

// One returns the multiplicative identity of the field x is drawn from.
func (x Element) One() Element {
	return Element{n: *uint256.NewInt(1), order: x.order}
}

// Zero returns the additive identity of the field x is drawn from.
func (x Element) Zero() Element {
	return Element{order: x.order}
}

// Equals holds when x and y have both the same residue and the same order.
func (x Element) Equals(y Element) bool {
	return x == y
}

// IsZero checks whether x is the additive identity.
func (x Element) IsZero() bool {
	return x.n.IsZero()
}

func (x Element) String() string {
	return fmt.Sprintf("%v (mod %v)", &x.n, &x.order)
}

// modulus binds the residue form to x's order, rebuilding the reduction
// parameters once per operation.
func (x Element) modulus() (*bigmod.Modulus, error) {
	m, err := bigmod.NewModulusFromBig(x.order.ToBig())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", field.ErrInvalidOrder, &x.order)
	}
	//
	return m, nil
}

// residues checks the shared-order precondition and converts both operands
// into residue form under that order.
func (x Element) residues(op string, y Element) (*bigmod.Modulus, *bigmod.Nat, *bigmod.Nat, error) {
	if x.order != y.order {
		return nil, nil, nil, fmt.Errorf("%s: %w (%v vs %v)", op, field.ErrModulusMismatch, &x.order, &y.order)
	}
	//
	m, err := x.modulus()
	if err != nil {
		return nil, nil, nil, err
	}
	//
	a, err := bigmod.NewNat().SetBytes(x.n.Bytes(), m)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	//
	b, err := bigmod.NewNat().SetBytes(y.n.Bytes(), m)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	//
	return m, a, b, nil
}

// retrieve converts a residue back into a plain 256-bit integer carrying
// x's order.
func (x Element) retrieve(n *bigmod.Nat, m *bigmod.Modulus) Element {
	var r uint256.Int
	//
	r.SetBytes(n.Bytes(m))
	//
	return Element{n: r, order: x.order}
}
