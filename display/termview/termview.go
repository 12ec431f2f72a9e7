// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package termview shows a pixmap in a terminal using half-block cells.
//
// Every cell carries two vertically stacked pixels: the upper one as the
// foreground of '▀' and the lower one as the background. Images larger
// than the terminal are shrunk to fit, keeping the aspect ratio.
package termview

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/draw"

	"github.com/gogpu/kitdemo"
	"github.com/gogpu/kitdemo/display"
)

const halfBlock = '▀'

const interruptRetry = 10 * time.Millisecond

// View is a display.Presenter drawing into a tcell screen.
type View struct {
	screen    tcell.Screen
	img       *kitdemo.Pixmap
	cellWidth int
}

// New creates a view on an initialized screen. The view owns the screen
// from now on and finalizes it on Close.
func New(screen tcell.Screen) *View {
	return &View{
		screen:    screen,
		cellWidth: max(1, runewidth.RuneWidth(halfBlock)),
	}
}

// SetImage draws pm and shows it immediately.
func (v *View) SetImage(pm *kitdemo.Pixmap) error {
	if pm == nil {
		return display.ErrNilImage
	}
	v.img = pm
	v.draw()
	return nil
}

// Present blocks until a dismiss key (Esc, Enter, q, Ctrl-C) is pressed,
// the screen is finalized, or ctx is done. Resizes redraw the image.
func (v *View) Present(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			v.interrupt(done)
		case <-done:
		}
	}()

	for {
		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw()
		case *tcell.EventKey:
			if dismisses(ev) {
				return nil
			}
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
}

// interrupt wakes PollEvent, retrying while the event queue is full.
func (v *View) interrupt(done <-chan struct{}) {
	ticker := time.NewTicker(interruptRetry)
	defer ticker.Stop()
	for {
		err := v.screen.PostEvent(tcell.NewEventInterrupt(nil))
		if err == nil {
			return
		}
		kitdemo.Logger().Warn("termview: interrupt not queued, retrying", "err", err)
		select {
		case <-ticker.C:
		case <-done:
			return
		}
	}
}

// Close finalizes the screen.
func (v *View) Close() error {
	v.screen.Fini()
	return nil
}

func dismisses(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// fit returns the pixel size pm is drawn at on a cols x rows screen.
func (v *View) fit(cols, rows int) (w, h int) {
	maxW, maxH := cols/v.cellWidth, rows*2
	w, h = v.img.Width(), v.img.Height()
	if maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	// Shrink by the tighter of the two ratios.
	if w*maxH > h*maxW {
		return maxW, max(1, h*maxW/w)
	}
	return max(1, w*maxH/h), maxH
}

func (v *View) draw() {
	if v.img == nil {
		return
	}
	v.screen.Clear()

	cols, rows := v.screen.Size()
	w, h := v.fit(cols, rows)
	if w == 0 || h == 0 {
		v.screen.Show()
		return
	}

	var src image.Image = v.img
	if w != v.img.Width() || h != v.img.Height() {
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), v.img, v.img.Bounds(), draw.Src, nil)
		src = dst
		kitdemo.Logger().Debug("termview: image shrunk",
			"from", fmt.Sprintf("%dx%d", v.img.Width(), v.img.Height()),
			"to", fmt.Sprintf("%dx%d", w, h))
	}

	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := cellColor(src, x, y, h)
			bottom := cellColor(src, x, y+1, h)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			v.screen.SetContent(x*v.cellWidth, y/2, halfBlock, nil, style)
		}
	}
	v.screen.Show()
}

// cellColor maps a pixel to a terminal color. Transparent pixels and rows
// past the image show the terminal default; partial alpha is composited
// over black.
func cellColor(img image.Image, x, y, h int) tcell.Color {
	if y >= h {
		return tcell.ColorDefault
	}
	r, g, b, a := img.At(x, y).RGBA()
	if a == 0 {
		return tcell.ColorDefault
	}
	//nolint:gosec // G115: RGBA() values are at most 0xffff
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func init() {
	display.Register("term", 20, func(display.Options) (display.View, error) {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("termview: %w", err)
		}
		if err := s.Init(); err != nil {
			return nil, fmt.Errorf("termview: %w", err)
		}
		return New(s), nil
	}, nil)
}
