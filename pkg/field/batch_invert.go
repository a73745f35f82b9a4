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

import "github.com/bits-and-blooms/bitset"

// BatchInvert efficiently inverts the list of elements s, in place, at the
// cost of a single division.  Zero entries are mapped to zero.
func BatchInvert[F Element[F]](s []F) error {
	if len(s) == 0 {
		return nil
	}
	//
	var (
		err  error
		last = len(s) - 1
		zero = s[0].Zero()
		one  = s[0].One()
		// identifies entries which are zero
		isZero = bitset.New(uint(len(s)))

		m = make([]F, len(s)) // m[i] = s[i] * s[i+1] * ...
	)
	//
	isZero.SetTo(uint(last), s[last].IsZero())

	if isZero.Test(uint(last)) {
		s[last] = one
	}

	m[last] = s[last]

	for i := last - 1; i >= 0; i-- {
		isZero.SetTo(uint(i), s[i].IsZero())

		if isZero.Test(uint(i)) {
			s[i] = one
		}

		if m[i], err = m[i+1].Mul(s[i]); err != nil {
			return err
		}
	}

	inv, err := Inverse(m[0]) // inv = s[0]⁻¹ * s[1]⁻¹ * ...
	if err != nil {
		return err
	}

	for i := 0; i < last; i++ {
		// inv = s[i]⁻¹ * s[i+1]⁻¹ * ...
		newInv, err := inv.Mul(s[i])
		if err != nil {
			return err
		}
		//
		if s[i], err = inv.Mul(m[i+1]); err != nil {
			return err
		}
		//
		inv = newInv
		// inv = s[i+1]⁻¹ * s[i+2]⁻¹ * ...
		if isZero.Test(uint(i)) {
			s[i] = zero
		}
	}

	s[last] = inv

	if isZero.Test(uint(last)) {
		s[last] = zero
	}
	//
	return nil
}
