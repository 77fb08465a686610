package imgproc

import "gocv.io/x/gocv"

// AdjustValue applies the per-channel tone shift: subtract first and clamp
// at zero, then add and clamp at the channel maximum. The result stays in
// [0, max] for any in-domain inputs.
func AdjustValue(v, sub, add, max int) int {
	v -= sub
	if v < 0 {
		v = 0
	}
	v += add
	if v > max {
		v = max
	}
	return v
}

// AdjustPlane applies AdjustValue to every pixel of a single-channel plane.
// The plane must already be CV_16S so the subtraction cannot wrap before
// the floor clamp lands.
func AdjustPlane(plane *gocv.Mat, sub, add, max int) {
	plane.SubtractFloat(float32(sub))
	gocv.Threshold(*plane, plane, 0, 0, gocv.ThresholdToZero)
	plane.AddFloat(float32(add))
	gocv.Threshold(*plane, plane, float32(max), 0, gocv.ThresholdTrunc)
}
