// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/kitdemo"
)

// Format names an image file encoding.
type Format string

// Supported file formats.
const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// UnsupportedFormatError indicates an unknown file extension or format name.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return "display: unsupported image format: " + e.Format
}

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return "", &UnsupportedFormatError{Format: ext}
	}
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return &UnsupportedFormatError{Format: string(f)}
	}
}

// FileView writes every image it is given to a file, replacing the
// previous contents.
type FileView struct {
	path   string
	format Format
}

// NewFileView creates a view writing to path. The format follows the
// file extension.
func NewFileView(path string) (*FileView, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return &FileView{path: path, format: f}, nil
}

// Path returns the output file path.
func (v *FileView) Path() string {
	return v.path
}

// SetImage encodes pm into the output file.
func (v *FileView) SetImage(pm *kitdemo.Pixmap) (err error) {
	if pm == nil {
		return ErrNilImage
	}

	f, err := os.Create(v.path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("display: create %s: %w", v.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("display: close %s: %w", v.path, cerr)
		}
	}()

	if err := Encode(f, pm.ToImage(), v.format); err != nil {
		return fmt.Errorf("display: encode %s: %w", v.path, err)
	}

	kitdemo.Logger().Info("display: image written",
		"path", v.path, "format", v.format, "width", pm.Width(), "height", pm.Height())
	return nil
}
