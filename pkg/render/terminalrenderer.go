package render

import (
	"bufio"
	"fmt"
	"io"
)

// TerminalRenderer writes a Framebuffer to a terminal as 24-bit-color
// half-block characters (▀): each terminal row packs two framebuffer rows,
// foreground as the top pixel and background as the bottom one. It writes
// raw ANSI SGR truecolor escapes directly.
type TerminalRenderer struct {
	w          *bufio.Writer
	cols, rows int
	fbW, fbH   int
	buf        []byte
}

// NewTerminalRenderer builds a renderer for a cols x rows terminal. Its
// framebuffer is cols wide and rows*2 tall, one pixel row pair per
// terminal row.
func NewTerminalRenderer(w io.Writer, cols, rows int) *TerminalRenderer {
	return &TerminalRenderer{
		w:    bufio.NewWriter(w),
		cols: cols,
		rows: rows,
		fbW:  cols,
		fbH:  rows * 2,
	}
}

// FramebufferSize returns the pixel dimensions the owned framebuffer
// should use.
func (t *TerminalRenderer) FramebufferSize() (width, height int) {
	return t.fbW, t.fbH
}

// Render draws fb to the internal buffer. Call Flush to emit it.
func (t *TerminalRenderer) Render(fb *Framebuffer) {
	t.buf = t.buf[:0]
	t.buf = append(t.buf, "\x1b[H"...)

	var lastTop, lastBot Color
	first := true
	for row := 0; row < t.rows; row++ {
		topY := row * 2
		botY := topY + 1
		for col := 0; col < t.cols && col < fb.Width; col++ {
			top := fb.GetPixel(col, topY)
			bot := fb.GetPixel(col, botY)
			if first || top != lastTop || bot != lastBot {
				t.buf = append(t.buf, fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm",
					top.R, top.G, top.B, bot.R, bot.G, bot.B)...)
				lastTop, lastBot = top, bot
				first = false
			}
			t.buf = append(t.buf, "\xe2\x96\x80"...) // UTF-8 for '▀'
		}
		t.buf = append(t.buf, "\x1b[0m\r\n"...)
		first = true
	}

	t.w.Write(t.buf)
}

// Flush writes any buffered output to the underlying writer.
func (t *TerminalRenderer) Flush() error {
	return t.w.Flush()
}
