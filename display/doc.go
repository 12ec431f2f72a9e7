// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package display presents a finished pixmap.
//
// A [View] is anything that accepts a [kitdemo.Pixmap] and shows it: an
// image file on disk, an in-memory holder, a terminal, a desktop window.
// Views that stay on screen until dismissed also implement [Presenter].
//
// # Registry
//
// Views are created by name through a registry, so optional backends can
// register themselves from their own packages:
//
//	func init() {
//	    display.Register("term", 20, termFactory, nil)
//	}
//
//	v, err := display.NewViewByName("file", display.Options{Output: "out.png"})
//
// Built in are "file" and "memory". The termview package adds "term" and
// the window package (built with -tags ebiten) adds "window".
package display
