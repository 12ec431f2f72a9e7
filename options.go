package kitdemo

// RendererOption configures a RectangleRenderer during creation.
//
// Example:
//
//	r := kitdemo.NewRectangleRenderer(
//	    kitdemo.WithBackground(kitdemo.White),
//	    kitdemo.WithBlendMode(kitdemo.BlendSrc),
//	)
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for a RectangleRenderer.
type rendererOptions struct {
	background RGBA
	blend      BlendMode
	maxPixels  int
}

// defaultOptions returns the default renderer options: a transparent
// background, source-over blending and DefaultMaxPixels.
func defaultOptions() rendererOptions {
	return rendererOptions{
		background: Transparent,
		blend:      BlendSrcOver,
		maxPixels:  DefaultMaxPixels,
	}
}

// WithBackground sets the value every pixel holds before the rectangle is
// drawn.
func WithBackground(c RGBA) RendererOption {
	return func(o *rendererOptions) {
		o.background = c
	}
}

// WithBlendMode sets the transfer mode used for the rectangle fill.
func WithBlendMode(m BlendMode) RendererOption {
	return func(o *rendererOptions) {
		o.blend = m
	}
}

// WithMaxPixels bounds the number of pixels a single render may allocate.
// Requests above the limit fail with an *AllocationError. Zero or a
// negative value removes the limit.
func WithMaxPixels(n int) RendererOption {
	return func(o *rendererOptions) {
		o.maxPixels = n
	}
}
