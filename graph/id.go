// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package graph

// Minter mints sequential base-26 ids ("a", "b", ..., "z", "aa", ...). The
// zero value is ready to use and starts at "a".
type Minter struct {
	next string
}

// NewMinter returns a Minter that will produce id starting at "a".
func NewMinter() *Minter {
	return &Minter{next: "a"}
}

// Peek returns the id that the next call to Mint will produce, without
// advancing the minter.
func (m *Minter) Peek() string {
	if m.next == "" {
		return "a"
	}
	return m.next
}

// Mint returns the next id and advances the minter.
func (m *Minter) Mint() string {
	id := m.Peek()
	m.next = Increment(id)
	return id
}

// Increment treats id as a little-endian base-26 number (the rightmost
// character varies fastest) and returns the next id in sequence, carrying
// 'z' into a fresh leading 'a' the way a spreadsheet column name rolls over
// ("z" -> "aa", "az" -> "ba", "zz" -> "aaa").
func Increment(id string) string {
	digits := []byte(id)
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] != 'z' {
			digits[i]++
			return string(digits)
		}
		digits[i] = 'a'
	}
	// every digit carried: grow by one leading 'a'.
	return "a" + string(digits)
}
