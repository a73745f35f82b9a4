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

// Package bls12_377 exposes the scalar field of the BLS12-377 curve behind
// the field.Element surface.  Its order is fixed at compile time, so unlike
// the runtime-order engines no operation can fail with a modulus mismatch;
// the fallible signatures remain for interface conformance and for division
// by zero.
package bls12_377

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-galois/pkg/field"
)

// Element wraps fr.Element to conform to the field.Element interface.
type Element struct {
	fr.Element
}

// New constructs an element from a uint64, reduced modulo the field order.
func New(val uint64) Element {
	var elem fr.Element
	//
	elem.SetUint64(val)
	//
	return Element{elem}
}

// Modulus returns the order of the BLS12-377 scalar field.
func Modulus() *big.Int {
	return fr.Modulus()
}

// Add x + y
func (x Element) Add(y Element) (Element, error) {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}, nil
}

// Sub x - y
func (x Element) Sub(y Element) (Element, error) {
	var res fr.Element
	//
	res.Sub(&x.Element, &y.Element)
	//
	return Element{res}, nil
}

// Mul x * y
func (x Element) Mul(y Element) (Element, error) {
	var res fr.Element
	//
	res.Mul(&x.Element, &y.Element)
	//
	return Element{res}, nil
}

// Div x / y, failing on a zero divisor.
func (x Element) Div(y Element) (Element, error) {
	var inv, res fr.Element
	//
	if y.IsZero() {
		return Element{}, fmt.Errorf("div: %w", field.ErrDivisionByZero)
	}
	//
	inv.Inverse(&y.Element)
	res.Mul(&x.Element, &inv)
	//
	return Element{res}, nil
}

// One implementation for the field.Element interface.
func (x Element) One() Element {
	return Element{fr.One()}
}

// Zero implementation for the field.Element interface.
func (x Element) Zero() Element {
	return Element{}
}

// Equals implementation for the field.Element interface.
func (x Element) Equals(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// IsZero implementation for the field.Element interface.
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

func (x Element) String() string {
	return x.Element.String()
}
