// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/image/draw"

	"github.com/gogpu/kitdemo"
)

func TestMemoryView(t *testing.T) {
	v := NewMemoryView()
	if v.Image() != nil || v.Sets() != 0 {
		t.Fatal("new MemoryView should be empty")
	}
	if err := v.SetImage(nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("SetImage(nil) = %v, want ErrNilImage", err)
	}

	pm := demoPixmap(t, kitdemo.Transparent)
	if err := v.SetImage(pm); err != nil {
		t.Fatal(err)
	}
	if v.Image() != pm || v.Sets() != 1 {
		t.Errorf("Image() = %p, Sets() = %d", v.Image(), v.Sets())
	}

	if err := v.Close(); err != nil {
		t.Fatal(err)
	}
	if v.Image() != nil || !v.Closed() {
		t.Error("Close should drop the image")
	}
}

func TestScaledViewNearest(t *testing.T) {
	mem := NewMemoryView()
	v, err := NewScaledView(mem, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v.Unwrap() != View(mem) {
		t.Error("Unwrap() should return the wrapped view")
	}
	if err := v.SetImage(demoPixmap(t, kitdemo.Transparent)); err != nil {
		t.Fatal(err)
	}

	got := mem.Image()
	if got.Width() != 40 || got.Height() != 40 {
		t.Fatalf("scaled size = %dx%d, want 40x40", got.Width(), got.Height())
	}
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			want := uint32(0)
			if x < 20 && y < 20 {
				want = 0xFFFF0000
			}
			if p := got.PixelARGB(x, y); p != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, p, want)
			}
		}
	}
}

func TestScaledViewIdentity(t *testing.T) {
	mem := NewMemoryView()
	v, err := NewScaledView(mem, 1, draw.CatmullRom)
	if err != nil {
		t.Fatal(err)
	}
	pm := demoPixmap(t, kitdemo.White)
	if err := v.SetImage(pm); err != nil {
		t.Fatal(err)
	}
	if mem.Image() != pm {
		t.Error("scale 1 should forward the same pixmap")
	}
}

func TestScaledViewShrink(t *testing.T) {
	mem := NewMemoryView()
	v, err := NewScaledView(mem, 0.5, draw.ApproxBiLinear)
	if err != nil {
		t.Fatal(err)
	}
	if err := v.SetImage(demoPixmap(t, kitdemo.White)); err != nil {
		t.Fatal(err)
	}
	if got := mem.Image(); got.Width() != 10 || got.Height() != 10 {
		t.Errorf("scaled size = %dx%d, want 10x10", got.Width(), got.Height())
	}
}

func TestScaledViewInvalid(t *testing.T) {
	for _, s := range []float64{0, -1} {
		if _, err := NewScaledView(NewMemoryView(), s, nil); err == nil {
			t.Errorf("NewScaledView(scale=%v) expected error", s)
		}
	}
	v, _ := NewScaledView(NewMemoryView(), 3, nil)
	if err := v.SetImage(nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("SetImage(nil) = %v, want ErrNilImage", err)
	}
}

func TestScaledViewForwardsClose(t *testing.T) {
	mem := NewMemoryView()
	v, err := NewScaledView(mem, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := v.Present(context.Background()); err != nil {
		t.Errorf("Present() on non-presenter = %v, want nil", err)
	}
	if err := v.Close(); err != nil {
		t.Fatal(err)
	}
	if !mem.Closed() {
		t.Error("Close should reach the wrapped view")
	}
}
