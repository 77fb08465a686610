package imgproc

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gocv.io/x/gocv"

	"hsv-inspector/sharedmem"
)

const (
	// waitKeyDelayMs is the GUI poll timeout; it also sets the loop cadence.
	waitKeyDelayMs = 10
	keyEscape      = 27
)

// trackbars holds the twelve controls bound to the Params fields.
type trackbars struct {
	minHue, maxHue         *gocv.Trackbar
	minSat, maxSat         *gocv.Trackbar
	minVal, maxVal         *gocv.Trackbar
	addHue, addSat, addVal *gocv.Trackbar
	subHue, subSat, subVal *gocv.Trackbar
}

func newTrackbars(w *gocv.Window) *trackbars {
	tb := &trackbars{
		minHue: w.CreateTrackbar("Hue (min)", HueMax),
		maxHue: w.CreateTrackbar("Hue (max)", HueMax),
		minSat: w.CreateTrackbar("Sat (min)", SatMax),
		maxSat: w.CreateTrackbar("Sat (max)", SatMax),
		minVal: w.CreateTrackbar("Val (min)", ValMax),
		maxVal: w.CreateTrackbar("Val (max)", ValMax),
		addHue: w.CreateTrackbar("Hadd", HueMax),
		addSat: w.CreateTrackbar("Sadd", SatMax),
		addVal: w.CreateTrackbar("Vadd", ValMax),
		subHue: w.CreateTrackbar("Hsub", HueMax),
		subSat: w.CreateTrackbar("Ssub", SatMax),
		subVal: w.CreateTrackbar("Vsub", ValMax),
	}

	// Start from the identity parameter set: ranges wide open, offsets zero.
	defaults := DefaultParams()
	tb.maxHue.SetPos(defaults.MaxHue)
	tb.maxSat.SetPos(defaults.MaxSat)
	tb.maxVal.SetPos(defaults.MaxVal)

	return tb
}

// params reads the current trackbar positions. The user may move a slider
// at any point; each frame simply consumes whatever is current per field.
func (tb *trackbars) params() Params {
	return Params{
		MinHue: tb.minHue.GetPos(),
		MaxHue: tb.maxHue.GetPos(),
		MinSat: tb.minSat.GetPos(),
		MaxSat: tb.maxSat.GetPos(),
		MinVal: tb.minVal.GetPos(),
		MaxVal: tb.maxVal.GetPos(),
		AddHue: tb.addHue.GetPos(),
		AddSat: tb.addSat.GetPos(),
		AddVal: tb.addVal.GetPos(),
		SubHue: tb.subHue.GetPos(),
		SubSat: tb.subSat.GetPos(),
		SubVal: tb.subVal.GetPos(),
	}
}

// RunInspector attaches to the shared frame buffer and runs the interactive
// loop: snapshot, transform, render, until ESC or 'q' is pressed.
func RunInspector(cfg Config) error {
	region, err := sharedmem.Attach(cfg.Name)
	if err != nil {
		return errors.Wrap(err, "attaching frame source")
	}
	defer region.Close()

	if !region.Valid() {
		return errors.Errorf("shared memory %s is not valid", cfg.Name)
	}

	log.Info().
		Str("name", region.Name()).
		Int("bytes", region.Size()).
		Msg("attached to shared memory")

	controls := gocv.NewWindow("Inspector")
	defer controls.Close()

	maskWindow := gocv.NewWindow("Mask only")
	defer maskWindow.Close()

	resultWindow := gocv.NewWindow("Adjusted and masked")
	defer resultWindow.Close()

	bars := newTrackbars(controls)

	pipeline := NewPipeline(cfg.Width, cfg.Height)
	defer pipeline.Close()

	snapshot := make([]byte, cfg.Width*cfg.Height*4)

	for {
		// The short wait doubles as the GUI event pump.
		key := controls.WaitKey(waitKeyDelayMs)
		if key == keyEscape || key == 'q' {
			log.Info().Msg("quit requested")
			return nil
		}

		// Deliberately no wait for a new-frame notification: the producer
		// may pause while the operator is still inspecting, and parameter
		// changes keep rendering against the last frame regardless.
		if err := Snapshot(region, snapshot); err != nil {
			return errors.Wrap(err, "copying frame")
		}

		frame, err := gocv.NewMatFromBytes(cfg.Height, cfg.Width, gocv.MatTypeCV8UC4, snapshot)
		if err != nil {
			return errors.Wrap(err, "wrapping frame bytes")
		}

		mask, filtered := pipeline.Process(frame, bars.params())
		frame.Close()

		maskWindow.IMShow(mask)
		resultWindow.IMShow(filtered)
	}
}
