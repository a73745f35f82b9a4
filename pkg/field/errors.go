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

import "errors"

// ErrModulusMismatch signals a binary operation whose operands are drawn
// from fields of different order.
var ErrModulusMismatch = errors.New("field elements have different orders")

// ErrOutOfRange signals a constructor argument lying outside [0, order).
var ErrOutOfRange = errors.New("value outside field range")

// ErrDivisionByZero signals a division whose divisor is the zero residue.
var ErrDivisionByZero = errors.New("division by zero field element")

// ErrInvalidOrder signals an order no field can be built over, such as an
// order below two, or an order the chosen residue representation cannot
// accommodate.
var ErrInvalidOrder = errors.New("invalid field order")
