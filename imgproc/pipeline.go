package imgproc

import (
	"gocv.io/x/gocv"
)

// Pipeline turns one frame snapshot into the mask and the masked display
// image, driven by the current Params. Intermediate Mats are allocated once
// and reused every frame.
type Pipeline struct {
	width  int
	height int

	bgr      gocv.Mat
	hsv      gocv.Mat
	adjusted gocv.Mat
	display  gocv.Mat
	mask     gocv.Mat
	filtered gocv.Mat
}

// NewPipeline allocates a pipeline for frames of the given dimensions.
func NewPipeline(width, height int) *Pipeline {
	return &Pipeline{
		width:    width,
		height:   height,
		bgr:      gocv.NewMat(),
		hsv:      gocv.NewMat(),
		adjusted: gocv.NewMat(),
		display:  gocv.NewMat(),
		mask:     gocv.NewMat(),
		filtered: gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3),
	}
}

// Close releases the pipeline's Mats.
func (p *Pipeline) Close() {
	p.bgr.Close()
	p.hsv.Close()
	p.adjusted.Close()
	p.display.Close()
	p.mask.Close()
	p.filtered.Close()
}

// Process runs one frame through the transform. src is the 4-channel frame
// snapshot; the returned Mats are owned by the pipeline and valid until the
// next call. The step order is fixed: every stage depends on the value
// range the previous one established.
func (p *Pipeline) Process(src gocv.Mat, params Params) (mask, filtered gocv.Mat) {
	// Drop the alpha channel, then move into HSV where the tuning happens.
	gocv.CvtColor(src, &p.bgr, gocv.ColorBGRAToBGR)
	gocv.CvtColor(p.bgr, &p.hsv, gocv.ColorBGRToHSV)

	channels := gocv.Split(p.hsv)

	maxima := [3]int{HueMax, SatMax, ValMax}
	subs := [3]int{params.SubHue, params.SubSat, params.SubVal}
	adds := [3]int{params.AddHue, params.AddSat, params.AddVal}

	// Widen to 16-bit signed so the subtraction cannot wrap, shift, then
	// narrow back to unsigned bytes.
	for i := range channels {
		channels[i].ConvertTo(&channels[i], gocv.MatTypeCV16S)
		AdjustPlane(&channels[i], subs[i], adds[i], maxima[i])
		channels[i].ConvertTo(&channels[i], gocv.MatTypeCV8U)
	}

	gocv.Merge(channels, &p.adjusted)
	for i := range channels {
		channels[i].Close()
	}

	// The mask is range membership across all three adjusted channels at
	// once; an inverted range (min > max) simply selects nothing.
	lower := gocv.NewScalar(float64(params.MinHue), float64(params.MinSat), float64(params.MinVal), 0)
	upper := gocv.NewScalar(float64(params.MaxHue), float64(params.MaxSat), float64(params.MaxVal), 0)
	gocv.InRangeWithScalar(p.adjusted, lower, upper, &p.mask)

	// Back to BGR for display, keeping only the pixels the mask selected.
	gocv.CvtColor(p.adjusted, &p.display, gocv.ColorHSVToBGR)
	p.filtered.SetTo(gocv.NewScalar(0, 0, 0, 0))
	p.display.CopyToWithMask(&p.filtered, p.mask)

	return p.mask, p.filtered
}
