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

	log "github.com/sirupsen/logrus"
)

// Check verifies the field axioms over a sample of elements, all of which
// must belong to the same field: additive and multiplicative identity,
// additive inverse, multiplicative inverse and the division round trip.
// Inverse-related axioms only hold when the field order is prime, so
// checking a composite-order sample is expected to fail.  The first
// violation encountered is returned.
func Check[F Element[F]](elems []F) error {
	for _, a := range elems {
		if err := checkIdentities(a); err != nil {
			return err
		}
		//
		for _, b := range elems {
			if err := checkDivision(a, b); err != nil {
				return err
			}
		}
	}
	//
	log.Debugf("field axioms verified over %d elements", len(elems))
	//
	return nil
}

func checkIdentities[F Element[F]](a F) error {
	var (
		zero = a.Zero()
		one  = a.One()
	)
	// a + 0 = a
	if b, err := a.Add(zero); err != nil {
		return err
	} else if !b.Equals(a) {
		return fmt.Errorf("additive identity violated for %s", a)
	}
	// a * 1 = a
	if b, err := a.Mul(one); err != nil {
		return err
	} else if !b.Equals(a) {
		return fmt.Errorf("multiplicative identity violated for %s", a)
	}
	// (0 - a) + a = 0
	neg, err := zero.Sub(a)
	if err != nil {
		return err
	}
	//
	if b, err := neg.Add(a); err != nil {
		return err
	} else if !b.Equals(zero) {
		return fmt.Errorf("additive inverse violated for %s", a)
	}
	// a * (1 / a) = 1
	if !a.IsZero() {
		inv, err := Inverse(a)
		if err != nil {
			return err
		}
		//
		if b, err := a.Mul(inv); err != nil {
			return err
		} else if !b.Equals(one) {
			return fmt.Errorf("multiplicative inverse violated for %s", a)
		}
	}
	//
	return nil
}

func checkDivision[F Element[F]](a, b F) error {
	// (a / b) * b = a
	if b.IsZero() {
		return nil
	}
	//
	q, err := a.Div(b)
	if err != nil {
		return err
	}
	//
	if c, err := q.Mul(b); err != nil {
		return err
	} else if !c.Equals(a) {
		return fmt.Errorf("division round trip violated for %s / %s", a, b)
	}
	//
	return nil
}
