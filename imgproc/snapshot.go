package imgproc

// FrameSource is the raw frame buffer shared with the external producer.
// Lock and Unlock bracket every read of Data so the producer never sees a
// concurrent reader.
type FrameSource interface {
	Lock() error
	Unlock() error
	Data() []byte
}

// Snapshot copies the source buffer into dst while holding the source's
// lock. Nothing but the copy happens under the lock: any time spent here
// blocks the camera from delivering its next frame, so all transform work
// stays outside.
func Snapshot(src FrameSource, dst []byte) error {
	if err := src.Lock(); err != nil {
		return err
	}
	copy(dst, src.Data())
	return src.Unlock()
}
