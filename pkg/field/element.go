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

import "fmt"

// An Element of a prime-order field.  The interface is satisfied by every
// engine in this module, whether its order is fixed at compile time
// (bls12377) or carried at runtime (FieldElement, u256).  All binary
// operations are fallible: engines with runtime orders reject operands of
// mismatched order, and division rejects a zero divisor.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) (Operand, error)
	// Sub x-y
	Sub(y Operand) (Operand, error)
	// Mul x*y
	Mul(y Operand) (Operand, error)
	// Div x/y, failing on a zero divisor.
	Div(y Operand) (Operand, error)
	// One returns the multiplicative identity of x's field.
	One() Operand
	// Zero returns the additive identity of x's field.
	Zero() Operand
	// Equals checks whether this and the given element are the same value of
	// the same field.
	Equals(y Operand) bool
	// Check whether this value is zero (or not).
	IsZero() bool
}

// Pow takes a given value to the power n.
func Pow[F Element[F]](val F, n uint64) (F, error) {
	var err error
	//
	if n == 0 {
		return val.One(), nil
	} else if n > 1 {
		tmp := val
		// Recurse on the halved exponent
		if val, err = Pow(val, n/2); err != nil {
			return val, err
		}
		//
		if val, err = val.Mul(val); err != nil {
			return val, err
		}
		// Check for odd case
		if n%2 == 1 {
			return val.Mul(tmp)
		}
	}
	//
	return val, nil
}

// Inverse computes x⁻¹, failing when x is zero.
func Inverse[F Element[F]](x F) (F, error) {
	return x.One().Div(x)
}
