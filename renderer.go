package kitdemo

// RectangleRenderer allocates a pixmap and fills one rectangle on it.
// It holds only configuration, so one renderer may be shared freely.
type RectangleRenderer struct {
	opts rendererOptions
}

// NewRectangleRenderer creates a renderer with the given options.
func NewRectangleRenderer(opts ...RendererOption) *RectangleRenderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &RectangleRenderer{opts: o}
}

// Render allocates a width x height pixmap and fills the rectangle with
// corners (x0, y0) and (x1, y1) with c.
//
// Corners are sorted and clipped to the pixmap; a rectangle with no area
// fills nothing. The only error is an *AllocationError.
func (r *RectangleRenderer) Render(width, height, x0, y0, x1, y1 int, c RGBA) (*Pixmap, error) {
	return r.RenderRect(width, height, R(x0, y0, x1, y1), c)
}

// RenderRect is Render with the rectangle given as a Rect.
func (r *RectangleRenderer) RenderRect(width, height int, rect Rect, c RGBA) (*Pixmap, error) {
	pm, err := newPixmap(width, height, r.opts.maxPixels)
	if err != nil {
		Logger().Debug("kitdemo: render failed", "width", width, "height", height, "err", err)
		return nil, err
	}
	if r.opts.background != Transparent {
		pm.Clear(r.opts.background)
	}

	filled := pm.FillRect(rect, c, r.opts.blend)
	Logger().Debug("kitdemo: rectangle filled",
		"rect", rect, "clip", rect.Clip(width, height),
		"color", c, "blend", r.opts.blend, "pixels", filled)
	return pm, nil
}

var defaultRenderer = NewRectangleRenderer()

// Render draws with a renderer using the default options.
func Render(width, height, x0, y0, x1, y1 int, c RGBA) (*Pixmap, error) {
	return defaultRenderer.Render(width, height, x0, y0, x1, y1, c)
}
