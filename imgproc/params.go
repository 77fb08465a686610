package imgproc

// Channel maxima of OpenCV's 8-bit HSV convention: hue is quantized to
// [0,179], saturation and value to [0,255].
const (
	HueMax = 179
	SatMax = 255
	ValMax = 255
)

// Params is the live-tunable parameter set driving the transform and the
// mask. The min/max pairs bound the mask ranges, the add/sub pairs shift
// each channel before masking. The GUI mutates fields between frames and
// the pipeline reads whatever is current; no locking, last write wins per
// field.
type Params struct {
	MinHue int // [0,179]
	MaxHue int // [0,179]
	MinSat int // [0,255]
	MaxSat int // [0,255]
	MinVal int // [0,255]
	MaxVal int // [0,255]

	AddHue int // [0,179]
	SubHue int // [0,179]
	AddSat int // [0,255]
	SubSat int // [0,255]
	AddVal int // [0,255]
	SubVal int // [0,255]
}

// DefaultParams returns the identity parameter set: mask ranges wide open
// and all offsets at zero, so every pixel passes and the image is unchanged.
func DefaultParams() Params {
	return Params{
		MaxHue: HueMax,
		MaxSat: SatMax,
		MaxVal: ValMax,
	}
}

// Clamp folds every field back into its declared domain.
func (p Params) Clamp() Params {
	p.MinHue = clampInt(p.MinHue, HueMax)
	p.MaxHue = clampInt(p.MaxHue, HueMax)
	p.AddHue = clampInt(p.AddHue, HueMax)
	p.SubHue = clampInt(p.SubHue, HueMax)

	p.MinSat = clampInt(p.MinSat, SatMax)
	p.MaxSat = clampInt(p.MaxSat, SatMax)
	p.AddSat = clampInt(p.AddSat, SatMax)
	p.SubSat = clampInt(p.SubSat, SatMax)

	p.MinVal = clampInt(p.MinVal, ValMax)
	p.MaxVal = clampInt(p.MaxVal, ValMax)
	p.AddVal = clampInt(p.AddVal, ValMax)
	p.SubVal = clampInt(p.SubVal, ValMax)

	return p
}

func clampInt(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
