// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"context"
	"errors"

	"github.com/gogpu/kitdemo"
)

// View accepts a pixmap and presents it.
//
// SetImage replaces whatever the view showed before. The view may keep a
// reference to pm; callers hand over ownership.
type View interface {
	SetImage(pm *kitdemo.Pixmap) error
}

// Presenter is implemented by views that stay visible until dismissed.
// Present blocks until the user closes the view or ctx is done.
type Presenter interface {
	View
	Present(ctx context.Context) error
}

// ErrNilImage is returned by views given a nil pixmap.
var ErrNilImage = errors.New("display: nil image")

// MemoryView keeps the last image it was given.
type MemoryView struct {
	img    *kitdemo.Pixmap
	sets   int
	closed bool
}

// NewMemoryView creates an empty MemoryView.
func NewMemoryView() *MemoryView {
	return &MemoryView{}
}

// SetImage stores pm.
func (v *MemoryView) SetImage(pm *kitdemo.Pixmap) error {
	if pm == nil {
		return ErrNilImage
	}
	v.img = pm
	v.sets++
	return nil
}

// Image returns the last image set, or nil.
func (v *MemoryView) Image() *kitdemo.Pixmap {
	return v.img
}

// Sets returns how many times SetImage succeeded.
func (v *MemoryView) Sets() int {
	return v.sets
}

// Close drops the stored image.
func (v *MemoryView) Close() error {
	v.img = nil
	v.closed = true
	return nil
}

// Closed reports whether Close was called.
func (v *MemoryView) Closed() bool {
	return v.closed
}
