// Package kitdemo draws a solid rectangle into a fixed-size pixel buffer.
//
// # Overview
//
// kitdemo allocates an ARGB_8888 [Pixmap], fills one rectangle on it and
// hands the result to whatever presents it (see the display package).
//
//	pm, err := kitdemo.Render(200, 200, 0, 0, 100, 100, kitdemo.Red)
//	if err != nil {
//	    return err
//	}
//	view.SetImage(pm)
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rectangles are half-open: (0,0)-(100,100) covers x and y in [0, 100)
//
// Coordinates outside the pixmap are clipped, never rejected. The only
// failure is an [AllocationError] when the pixmap cannot be created.
package kitdemo

// Version is the current version of the library.
const Version = "0.1.0"
