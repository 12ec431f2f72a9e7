package kitdemo

import "math"

// BlendMode selects how a fill combines with the pixels already present.
type BlendMode uint8

const (
	// BlendSrcOver composites the paint over the destination. It is the
	// default paint transfer mode.
	BlendSrcOver BlendMode = iota

	// BlendSrc replaces the destination with the paint.
	BlendSrc
)

func (m BlendMode) String() string {
	switch m {
	case BlendSrcOver:
		return "src-over"
	case BlendSrc:
		return "src"
	default:
		return "unknown"
	}
}

// srcOver composites a non-premultiplied source over a non-premultiplied
// destination and returns a non-premultiplied result.
func srcOver(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8) {
	fsa := float64(sa) / 255
	fda := float64(da) / 255
	outA := fsa + fda*(1-fsa)
	if outA == 0 {
		return 0, 0, 0, 0
	}
	ch := func(s, d uint8) uint8 {
		v := (float64(s)*fsa + float64(d)*fda*(1-fsa)) / outA
		return uint8(clamp255(math.Round(v)))
	}
	return ch(sr, dr), ch(sg, dg), ch(sb, db), uint8(clamp255(math.Round(outA * 255)))
}
