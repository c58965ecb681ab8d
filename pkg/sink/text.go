package sink

import (
	"bufio"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"io"
	"strconv"
)

// Text writes iteration counts as a grid: each cell is the decimal count
// followed by a space, and each row ends with a newline.
type Text struct {
	w     *bufio.Writer
	width int
	buf   []byte
}

func NewText(w io.Writer, width int) *Text {
	return &Text{
		w:     bufio.NewWriter(w),
		width: width,
		buf:   make([]byte, 0, 16),
	}
}

func (t *Text) Consume(_, col, iterations int) error {
	t.buf = strconv.AppendInt(t.buf[:0], int64(iterations), 10)
	t.buf = append(t.buf, ' ')
	if col == t.width-1 {
		t.buf = append(t.buf, '\n')
	}

	_, err := t.w.Write(t.buf)
	return err
}

// Flush writes any buffered cells to the underlying writer.
func (t *Text) Flush() error {
	return t.w.Flush()
}

var _ escape.Sink = (*Text)(nil)
