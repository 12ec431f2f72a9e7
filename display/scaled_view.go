// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"context"
	"fmt"
	"io"
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/kitdemo"
)

// ScaledView resizes images before passing them to another view, the way
// an image widget scales its bitmap to the space it is given.
type ScaledView struct {
	next   View
	scale  float64
	interp draw.Interpolator
}

// NewScaledView wraps next. A nil interp selects nearest-neighbour, which
// keeps hard rectangle edges.
func NewScaledView(next View, scale float64, interp draw.Interpolator) (*ScaledView, error) {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("display: invalid scale %v", scale)
	}
	if interp == nil {
		interp = draw.NearestNeighbor
	}
	return &ScaledView{next: next, scale: scale, interp: interp}, nil
}

// SetImage scales pm and forwards the result.
func (v *ScaledView) SetImage(pm *kitdemo.Pixmap) error {
	if pm == nil {
		return ErrNilImage
	}
	if v.scale == 1 {
		return v.next.SetImage(pm)
	}

	w := max(1, int(math.Round(float64(pm.Width())*v.scale)))
	h := max(1, int(math.Round(float64(pm.Height())*v.scale)))
	scaled, err := Scale(pm, w, h, v.interp)
	if err != nil {
		return err
	}
	kitdemo.Logger().Debug("display: image scaled",
		"from", pm.Bounds().Size(), "to", scaled.Bounds().Size(), "scale", v.scale)
	return v.next.SetImage(scaled)
}

// Scale resamples pm to w x h.
func Scale(pm *kitdemo.Pixmap, w, h int, interp draw.Interpolator) (*kitdemo.Pixmap, error) {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	interp.Scale(dst, dst.Bounds(), pm.ToImage(), pm.Bounds(), draw.Src, nil)
	return kitdemo.FromImage(dst)
}

// Unwrap returns the wrapped view.
func (v *ScaledView) Unwrap() View {
	return v.next
}

// Present forwards to the wrapped view when it is a Presenter and returns
// nil otherwise.
func (v *ScaledView) Present(ctx context.Context) error {
	if p, ok := v.next.(Presenter); ok {
		return p.Present(ctx)
	}
	return nil
}

// Close forwards to the wrapped view when it is an io.Closer.
func (v *ScaledView) Close() error {
	if c, ok := v.next.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
