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
	"math/big"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// Sieve bound chosen so the sieve covers every order a 16-bit engine could
// safely use, whilst staying under 8KiB of memory.
const sieveBound = 1 << 16

var (
	sieveOnce  sync.Once
	composites *bitset.BitSet
)

// IsPrime reports whether n is prime, deterministically for the full uint64
// range.  Small candidates are answered from a sieve of Eratosthenes;
// everything else falls through to the Baillie-PSW test, which is exact for
// 64-bit inputs.  Callers use this to establish the prime-order precondition
// of Div and Pow; the engines themselves never check it.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	//
	if n < sieveBound {
		sieveOnce.Do(buildSieve)
		//
		return !composites.Test(uint(n))
	}
	//
	return new(big.Int).SetUint64(n).ProbablyPrime(0)
}

func buildSieve() {
	composites = bitset.New(sieveBound)
	//
	for i := uint(2); i*i < sieveBound; i++ {
		if composites.Test(i) {
			continue
		}
		//
		for j := i * i; j < sieveBound; j += i {
			composites.Set(j)
		}
	}
}
