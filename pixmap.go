package kitdemo

import (
	"bytes"
	"image"
	"image/color"
	"math"
)

// Format describes the in-memory layout of a pixel.
type Format uint8

const (
	// FormatARGB8888 stores alpha, red, green and blue at 8 bits each.
	// Channels are kept non-premultiplied, in R, G, B, A byte order,
	// so the buffer can back an image.NRGBA directly.
	FormatARGB8888 Format = iota
)

// BytesPerPixel returns the storage size of one pixel.
func (f Format) BytesPerPixel() int {
	return 4
}

func (f Format) String() string {
	if f == FormatARGB8888 {
		return "ARGB_8888"
	}
	return "unknown"
}

// DefaultMaxPixels bounds the pixel count of a single pixmap (256 MiB).
const DefaultMaxPixels = 1 << 26

// Pixmap represents a fixed-size rectangular pixel buffer. The
// dimensions are set at creation and never change.
type Pixmap struct {
	width  int
	height int
	format Format
	data   []uint8
}

// NewPixmap allocates a fully transparent ARGB_8888 pixmap.
func NewPixmap(width, height int) (*Pixmap, error) {
	return newPixmap(width, height, DefaultMaxPixels)
}

func newPixmap(width, height, maxPixels int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, &AllocationError{Width: width, Height: height, Reason: "dimensions must be positive"}
	}
	bpp := FormatARGB8888.BytesPerPixel()
	if width > math.MaxInt/height || width*height > math.MaxInt/bpp {
		return nil, &AllocationError{Width: width, Height: height, Reason: "size overflows"}
	}
	if maxPixels > 0 && width*height > maxPixels {
		return nil, &AllocationError{Width: width, Height: height, Reason: "exceeds pixel limit"}
	}

	Logger().Debug("kitdemo: pixmap allocated",
		"width", width, "height", height, "bytes", width*height*bpp)

	return &Pixmap{
		width:  width,
		height: height,
		format: FormatARGB8888,
		data:   make([]uint8, width*height*bpp),
	}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Format returns the pixel format.
func (p *Pixmap) Format() Format {
	return p.format
}

// Stride returns the number of bytes per row.
func (p *Pixmap) Stride() int {
	return p.width * p.format.BytesPerPixel()
}

// Data returns the raw pixel data (non-premultiplied RGBA bytes).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := p.offset(x, y)
	p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = c.bytes()
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := p.offset(x, y)
	return fromBytes(p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3])
}

// PixelARGB returns the pixel packed as 0xAARRGGBB, or 0 when out of bounds.
func (p *Pixmap) PixelARGB(x, y int) uint32 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	i := p.offset(x, y)
	d := p.data[i : i+4 : i+4]
	return uint32(d[3])<<24 | uint32(d[0])<<16 | uint32(d[1])<<8 | uint32(d[2])
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r, g, b, a := c.bytes()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// FillRect paints r with c using mode and returns the number of pixels
// touched. The rectangle is sorted and clipped to the pixmap first.
func (p *Pixmap) FillRect(r Rect, c RGBA, mode BlendMode) int {
	clipped := r.Clip(p.width, p.height)
	if clipped.Empty() {
		return 0
	}

	sr, sg, sb, sa := c.bytes()
	for y := clipped.Y0; y < clipped.Y1; y++ {
		row := p.data[p.offset(clipped.X0, y):p.offset(clipped.X1, y)]
		for i := 0; i < len(row); i += 4 {
			px := row[i : i+4 : i+4]
			if mode == BlendSrc || sa == 0xff || px[3] == 0 {
				px[0], px[1], px[2], px[3] = sr, sg, sb, sa
				continue
			}
			px[0], px[1], px[2], px[3] = srcOver(sr, sg, sb, sa, px[0], px[1], px[2], px[3])
		}
	}
	return clipped.Dx() * clipped.Dy()
}

// Equal reports whether q has the same dimensions, format and pixels.
func (p *Pixmap) Equal(q *Pixmap) bool {
	if p == nil || q == nil {
		return p == q
	}
	return p.width == q.width && p.height == q.height &&
		p.format == q.format && bytes.Equal(p.data, q.data)
}

// ToImage copies the pixmap into an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) (*Pixmap, error) {
	bounds := img.Bounds()
	pm, err := NewPixmap(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	if n, ok := img.(*image.NRGBA); ok {
		stride := pm.Stride()
		for y := 0; y < pm.height; y++ {
			off := n.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pm.data[y*stride:(y+1)*stride], n.Pix[off:off+stride])
		}
		return pm, nil
	}
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			n := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := pm.offset(x, y)
			pm.data[i+0], pm.data[i+1], pm.data[i+2], pm.data[i+3] = n.R, n.G, n.B, n.A
		}
	}
	return pm, nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := p.offset(x, y)
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

func (p *Pixmap) offset(x, y int) int {
	return (y*p.width + x) * 4
}
