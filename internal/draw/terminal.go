package draw

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ChunkWriter accumulates terminal output and writes it in one chunk per
// frame, which keeps SSH sessions smooth and avoids visible tearing.
// Implements io.Writer so text can be formatted straight into it.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w. offsetCol and
// offsetRow are added to all MoveCursor coordinates.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset, e.g. after a terminal resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends an ANSI cursor position sequence. col and row are
// 1-based; the centering offset is applied automatically.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// SetForeground appends a 24-bit foreground color sequence.
func (cw *ChunkWriter) SetForeground(c Color) {
	cw.buf.WriteString("\033[38;2;")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(c.R), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(c.G), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(c.B), 10))
	cw.buf.WriteByte('m')
}

// Reset appends a style reset.
func (cw *ChunkWriter) Reset() {
	cw.buf.WriteString("\033[0m")
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the pending chunk.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// Flush writes the accumulated chunk to the underlying writer.
func (cw *ChunkWriter) Flush() error {
	if _, err := cw.bufw.WriteString(cw.buf.String()); err != nil {
		return err
	}
	cw.buf.Reset()
	return cw.bufw.Flush()
}
