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
	"github.com/ajroetker/go-highway/hwy/contrib/algo"
	"github.com/ajroetker/go-highway/hwy/contrib/image"
)

// ToImage copies the visible samples into a new SIMD-aligned go-highway
// image of the same size. The border is not copied.
func (p *Plane[T]) ToImage() *image.Image[T] {
	img := image.NewImage[T](p.cfg.Width, p.cfg.Height)
	p.CopyToImage(img)
	return img
}

// CopyToImage copies the visible samples into a pre-allocated image,
// avoiding allocation when the image is reused across calls. Only the region
// both share is copied.
func (p *Plane[T]) CopyToImage(img *image.Image[T]) {
	if img == nil {
		return
	}
	p.guard.checkRead()

	width := min(p.cfg.Width, img.Width())
	height := min(p.cfg.Height, img.Height())
	for y := range height {
		algo.Copy(p.row(y)[:width], img.RowSlice(y)[:width])
	}
}

// CopyFromImage copies samples from img into the visible area. Only the
// region both share is copied; call Pad afterwards to refresh the border.
func (p *Plane[T]) CopyFromImage(img *image.Image[T]) {
	if img == nil {
		return
	}
	b := p.guard.acquireExclusive()
	defer b.release()

	width := min(p.cfg.Width, img.Width())
	height := min(p.cfg.Height, img.Height())
	for y := range height {
		algo.Copy(img.RowSlice(y)[:width], p.row(y)[:width])
	}
}
