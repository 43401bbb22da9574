// Copyright 2025 go-plane Authors
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

package plane

import (
	"unsafe"

	"github.com/ajroetker/go-highway/hwy/contrib/algo"
)

// makeAligned returns n samples whose first element is DataAlignment-byte
// aligned, all set to fill. The slice's capacity equals its length.
func makeAligned[T Pixel](n int, fill T) []T {
	if n == 0 {
		return []T{}
	}
	size := SampleSize[T]()
	slack := DataAlignment / size

	buf := make([]T, n+slack)
	off := 0
	if r := int(uintptr(unsafe.Pointer(&buf[0])) % DataAlignment); r != 0 {
		off = (DataAlignment - r) / size
	}
	data := buf[off : off+n : off+n]
	algo.Fill(data, fill)
	return data
}

// isAligned reports whether the first sample of data sits on a
// DataAlignment boundary. Empty buffers have no address and are aligned.
func isAligned[T Pixel](data []T) bool {
	if len(data) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&data[0]))%DataAlignment == 0
}
