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

import "github.com/ajroetker/go-highway/hwy/contrib/algo"

// Pad fills the border by replicating the outermost visible samples.
//
// w and h are the dimensions of the reference (full resolution) plane; the
// padded area of this plane is (w >> XDec) x (h >> YDec). Left and right
// borders are filled first, so the top and bottom rows copied afterwards
// already carry their corners.
//
// The border is measured from the padded area, not from the visible size.
// When (w >> XDec) x (h >> YDec) is smaller than Width x Height, every
// sample right of or below the padded area is overwritten, visible samples
// included, and the bottom pass fills all rows below the area rather than
// only YPad of them.
//
// Pad panics with ErrBorrowConflict if any view of the plane is live.
func (p *Plane[T]) Pad(w, h int) {
	b := p.guard.acquireExclusive()
	defer b.release()

	cfg := p.cfg
	xorigin := cfg.XOrigin
	yorigin := cfg.YOrigin
	stride := cfg.Stride
	width := w >> cfg.XDec
	height := h >> cfg.YDec
	data := p.data

	if width == 0 || height == 0 {
		return
	}

	if xorigin > 0 {
		for y := range height {
			row := (yorigin + y) * stride
			algo.Fill(data[row:row+xorigin], data[row+xorigin])
		}
	}

	if xorigin+width < stride {
		for y := range height {
			row := (yorigin + y) * stride
			edge := row + xorigin + width - 1
			algo.Fill(data[edge+1:row+stride], data[edge])
		}
	}

	// Source and destination rows never overlap: the buffer is split at the
	// first visible row and rows are copied from one half into the other.
	if yorigin > 0 {
		above, rest := data[:yorigin*stride], data[yorigin*stride:]
		first := rest[:stride]
		for y := range yorigin {
			algo.Copy(first, above[y*stride:(y+1)*stride])
		}
	}

	if end := yorigin + height; end < cfg.AllocHeight {
		upto, below := data[:end*stride], data[end*stride:]
		last := upto[(end-1)*stride:]
		for y := range cfg.AllocHeight - end {
			algo.Copy(last, below[y*stride:(y+1)*stride])
		}
	}
}
