// Package videopipe implements the frame pipe output: each rendered frame
// is pulled from a framebuffer as tightly packed RGB24 and written to an
// external encoder process over a pipe. Frame dimensions and rate are
// fixed at construction, mirroring the way the renderer's own Framebuffer
// is created once per run and reused frame to frame.
package videopipe

import (
	"fmt"
	"image/color"
	"io"

	"github.com/solidgen/polysplit/pkg/render"
)

// Pipe writes a sequence of framebuffers as packed RGB24 frames to an
// external encoder's stdin (or any io.WriteCloser). It does not start or
// manage the encoder process itself; callers wire that up with os/exec and
// pass the resulting stdin pipe in.
type Pipe struct {
	w             io.WriteCloser
	width, height int
	fps           int
	bottomUp      bool
	frame         []byte
}

// New builds a Pipe that writes width x height RGB24 frames at the given
// frame rate to w. bottomUp controls row order: true (the default most
// callers want) writes the framebuffer's last row first, matching the
// bottom-up convention many raw-video encoders expect.
func New(w io.WriteCloser, width, height, fps int, bottomUp bool) *Pipe {
	return &Pipe{
		w:        w,
		width:    width,
		height:   height,
		fps:      fps,
		bottomUp: bottomUp,
		frame:    make([]byte, width*height*3),
	}
}

// FrameRate returns the frame rate fixed at construction.
func (p *Pipe) FrameRate() int {
	return p.fps
}

// WriteFrame packs fb into RGB24 and writes it to the underlying encoder.
// fb's dimensions must match the pipe's; a mismatch is reported as an
// error rather than silently cropping or stretching.
func (p *Pipe) WriteFrame(fb *render.Framebuffer) error {
	if fb.Width != p.width || fb.Height != p.height {
		return fmt.Errorf("videopipe: frame size %dx%d does not match pipe size %dx%d", fb.Width, fb.Height, p.width, p.height)
	}

	for row := 0; row < p.height; row++ {
		srcRow := row
		if p.bottomUp {
			srcRow = p.height - 1 - row
		}
		base := row * p.width * 3
		for x := 0; x < p.width; x++ {
			c := fb.Pixels[srcRow*p.width+x]
			o := base + x*3
			p.frame[o], p.frame[o+1], p.frame[o+2] = packRGB(c)
		}
	}

	if _, err := p.w.Write(p.frame); err != nil {
		return fmt.Errorf("videopipe: write frame: %w", err)
	}
	return nil
}

func packRGB(c color.RGBA) (byte, byte, byte) {
	return c.R, c.G, c.B
}

// Close closes the underlying writer, signaling end-of-stream to the
// encoder (e.g. closing its stdin so it can flush and exit).
func (p *Pipe) Close() error {
	return p.w.Close()
}
