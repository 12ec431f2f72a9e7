// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build ebiten

// Package window shows a pixmap in a desktop window using ebiten.
//
// It needs cgo and a windowing system, so it is only compiled with
// -tags ebiten.
package window

import (
	"context"
	"errors"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/kitdemo"
	"github.com/gogpu/kitdemo/display"
)

// View is a display.Presenter backed by an ebiten window. It must be
// presented from the main goroutine.
type View struct {
	title string

	mu      sync.Mutex
	pm      *kitdemo.Pixmap
	img     *ebiten.Image
	stale   bool
	ctxDone <-chan struct{}
}

// New creates a window view with the given title.
func New(title string) *View {
	if title == "" {
		title = "kitdemo"
	}
	return &View{title: title}
}

// SetImage replaces the image shown in the window.
func (v *View) SetImage(pm *kitdemo.Pixmap) error {
	if pm == nil {
		return display.ErrNilImage
	}
	v.mu.Lock()
	v.pm = pm
	v.stale = true
	v.mu.Unlock()
	return nil
}

// Present opens the window and blocks until it is closed, Escape is
// pressed, or ctx is done.
func (v *View) Present(ctx context.Context) error {
	v.mu.Lock()
	pm := v.pm
	v.ctxDone = ctx.Done()
	v.mu.Unlock()
	if pm == nil {
		return display.ErrNilImage
	}

	ebiten.SetWindowSize(pm.Width(), pm.Height())
	ebiten.SetWindowTitle(v.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	kitdemo.Logger().Info("window: presenting", "title", v.title,
		"width", pm.Width(), "height", pm.Height())

	err := ebiten.RunGame(v)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if err == nil {
		err = ctx.Err()
	}
	return err
}

// Update implements ebiten.Game.
func (v *View) Update() error {
	select {
	case <-v.ctxDone:
		return ebiten.Termination
	default:
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.stale {
		if v.img != nil {
			v.img.Deallocate()
		}
		v.img = ebiten.NewImageFromImage(v.pm.ToImage())
		v.stale = false
	}
	return nil
}

// Draw implements ebiten.Game.
func (v *View) Draw(screen *ebiten.Image) {
	v.mu.Lock()
	img := v.img
	v.mu.Unlock()
	if img != nil {
		screen.DrawImage(img, nil)
	}
}

// Layout implements ebiten.Game. The logical screen is the pixmap size;
// ebiten scales it to the window.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.pm == nil {
		return outsideWidth, outsideHeight
	}
	return v.pm.Width(), v.pm.Height()
}

func init() {
	display.Register("window", 30, func(opts display.Options) (display.View, error) {
		return New(opts.Title), nil
	}, nil)
}
