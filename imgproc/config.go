package imgproc

type Config struct {
	Name   string // Name of the shared memory area holding the frame
	Width  int    // Frame width in pixels
	Height int    // Frame height in pixels
}
