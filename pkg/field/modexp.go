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

import "golang.org/x/exp/constraints"

// ModExp computes base^exp mod modulus by square-and-multiply, reducing
// after every step so intermediate values never exceed modulus².  It
// requires base >= 0, exp >= 0 and modulus > 0; as with the field engine
// itself, modulus² must fit within T for the reductions to be exact.
func ModExp[T constraints.Integer](base, exp, modulus T) T {
	// 1 % modulus handles the degenerate modulus of one
	result := T(1) % modulus
	base = base % modulus
	//
	for exp > 0 {
		// Odd case
		if exp&1 == 1 {
			result = (result * base) % modulus
		}
		//
		exp >>= 1
		//
		if exp > 0 {
			base = (base * base) % modulus
		}
	}
	//
	return result
}
