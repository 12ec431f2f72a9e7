// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/kitdemo"
	"github.com/gogpu/kitdemo/display"
)

func newSimView(t *testing.T, cols, rows int) (*View, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	s.SetSize(cols, rows)
	v := New(s)
	t.Cleanup(func() { _ = v.Close() })
	return v, s
}

func cellAt(t *testing.T, s tcell.SimulationScreen, x, y int) tcell.SimCell {
	t.Helper()
	cells, w, _ := s.GetContents()
	return cells[y*w+x]
}

func TestSetImageDrawsHalfBlocks(t *testing.T) {
	v, s := newSimView(t, 40, 10)

	pm, err := kitdemo.Render(4, 4, 0, 0, 2, 2, kitdemo.Red)
	if err != nil {
		t.Fatal(err)
	}
	if err := v.SetImage(pm); err != nil {
		t.Fatalf("SetImage() error: %v", err)
	}

	red := tcell.NewRGBColor(255, 0, 0)
	tests := []struct {
		x, y   int
		fg, bg tcell.Color
	}{
		{0, 0, red, red},
		{1, 0, red, red},
		{2, 0, tcell.ColorDefault, tcell.ColorDefault},
		{0, 1, tcell.ColorDefault, tcell.ColorDefault},
	}
	for _, tt := range tests {
		c := cellAt(t, s, tt.x*v.cellWidth, tt.y)
		if len(c.Runes) == 0 || c.Runes[0] != halfBlock {
			t.Errorf("cell (%d,%d) runes = %q, want half block", tt.x, tt.y, c.Runes)
		}
		fg, bg, _ := c.Style.Decompose()
		if fg != tt.fg || bg != tt.bg {
			t.Errorf("cell (%d,%d) fg/bg = %v/%v, want %v/%v", tt.x, tt.y, fg, bg, tt.fg, tt.bg)
		}
	}

	// Column 4 is past the image.
	if c := cellAt(t, s, 4*v.cellWidth, 0); len(c.Runes) > 0 && c.Runes[0] == halfBlock {
		t.Error("cells past the image should stay empty")
	}
}

func TestOddHeightUsesDefaultBackground(t *testing.T) {
	v, s := newSimView(t, 20, 10)
	pm, err := kitdemo.Render(1, 3, 0, 0, 1, 3, kitdemo.Blue)
	if err != nil {
		t.Fatal(err)
	}
	if err := v.SetImage(pm); err != nil {
		t.Fatal(err)
	}
	fg, bg, _ := cellAt(t, s, 0, 1).Style.Decompose()
	if fg != tcell.NewRGBColor(0, 0, 255) || bg != tcell.ColorDefault {
		t.Errorf("last row fg/bg = %v/%v", fg, bg)
	}
}

func TestFit(t *testing.T) {
	v := &View{cellWidth: 1}
	tests := []struct {
		name         string
		w, h         int
		cols, rows   int
		wantW, wantH int
	}{
		{"fits", 200, 200, 300, 120, 200, 200},
		{"height bound", 200, 200, 300, 50, 100, 100},
		{"width bound", 200, 100, 50, 100, 50, 25},
		{"no room", 10, 10, 0, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm, err := kitdemo.NewPixmap(tt.w, tt.h)
			if err != nil {
				t.Fatal(err)
			}
			v.img = pm
			w, h := v.fit(tt.cols, tt.rows)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("fit(%d, %d) = %dx%d, want %dx%d", tt.cols, tt.rows, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSetImageShrinksToScreen(t *testing.T) {
	v, s := newSimView(t, 10*v0CellWidth(), 5)
	pm, err := kitdemo.Render(200, 200, 0, 0, 100, 100, kitdemo.Red)
	if err != nil {
		t.Fatal(err)
	}
	if err := v.SetImage(pm); err != nil {
		t.Fatal(err)
	}
	// 200x200 shrinks to 10x10 pixels: 10 columns, 5 rows.
	red := tcell.NewRGBColor(255, 0, 0)
	if fg, _, _ := cellAt(t, s, 0, 0).Style.Decompose(); fg != red {
		t.Errorf("top-left fg = %v, want red", fg)
	}
	if fg, _, _ := cellAt(t, s, 9*v.cellWidth, 4).Style.Decompose(); fg != tcell.ColorDefault {
		t.Errorf("bottom-right fg = %v, want default", fg)
	}
}

func v0CellWidth() int {
	return New(nil).cellWidth
}

func TestSetImageNil(t *testing.T) {
	v, _ := newSimView(t, 10, 10)
	if err := v.SetImage(nil); !errors.Is(err, display.ErrNilImage) {
		t.Errorf("SetImage(nil) = %v, want ErrNilImage", err)
	}
}

func TestPresentDismissKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"escape", tcell.KeyEscape, 0},
		{"enter", tcell.KeyEnter, 0},
		{"q", tcell.KeyRune, 'q'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, s := newSimView(t, 20, 10)
			s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
			s.InjectKey(tt.key, tt.r, tcell.ModNone)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := v.Present(ctx); err != nil {
				t.Errorf("Present() = %v, want nil", err)
			}
		})
	}
}

func TestPresentContextCanceled(t *testing.T) {
	v, _ := newSimView(t, 20, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := v.Present(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Present() = %v, want context.Canceled", err)
	}
}

// fullQueueScreen rejects the first posts as if the event queue were full.
type fullQueueScreen struct {
	tcell.SimulationScreen
	mu       sync.Mutex
	rejects  int
	attempts int
}

func (s *fullQueueScreen) PostEvent(ev tcell.Event) error {
	s.mu.Lock()
	s.attempts++
	reject := s.attempts <= s.rejects
	s.mu.Unlock()
	if reject {
		return tcell.ErrEventQFull
	}
	return s.SimulationScreen.PostEvent(ev)
}

func TestPresentRetriesInterruptOnFullQueue(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatal(err)
	}
	s := &fullQueueScreen{SimulationScreen: sim, rejects: 3}
	v := New(s)
	t.Cleanup(func() { _ = v.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	errc := make(chan error, 1)
	go func() { errc <- v.Present(ctx) }()
	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Present() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Present() did not return after cancellation")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempts != 4 {
		t.Errorf("PostEvent attempts = %d, want 4", s.attempts)
	}
}

var _ display.Presenter = (*View)(nil)
