// Package pgmcodec implements the binary PGM ("P5") raster format used as
// pgmtool's file boundary: an ASCII header (magic, width, height, maxval)
// followed by one raw byte per pixel, row-major.
package pgmcodec

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/user/pgmtool/pkg/ports"
	"github.com/user/pgmtool/pkg/raster"
)

// MaxValue is the only sample ceiling this codec accepts and emits.
// 8-bit buffers cannot represent anything else.
const MaxValue = 255

// Codec implements ports.Codec for binary PGM data.
type Codec struct{}

// New creates a new Codec.
func New() *Codec {
	return &Codec{}
}

// Decode parses binary PGM data into an image. It fails when the magic
// token is not exactly "P5", when a header field is malformed, when the
// max value is not 255, or when fewer than width*height body bytes are
// present. Trailing bytes beyond the pixel count are ignored.
func (c *Codec) Decode(data []byte) (*raster.Image, error) {
	p := parser{data: data}

	magic, err := p.token()
	if err != nil {
		return nil, fmt.Errorf("read magic: %w", err)
	}
	if magic != "P5" {
		return nil, fmt.Errorf("unsupported magic %q, want P5", magic)
	}

	width, err := p.number("width")
	if err != nil {
		return nil, err
	}
	height, err := p.number("height")
	if err != nil {
		return nil, err
	}
	maxVal, err := p.number("max value")
	if err != nil {
		return nil, err
	}
	if maxVal != MaxValue {
		return nil, fmt.Errorf("unsupported max value %d, want %d", maxVal, MaxValue)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}

	// Exactly one whitespace byte separates the header from the body.
	if err := p.separator(); err != nil {
		return nil, err
	}

	// Division form: width*height could overflow for a crafted header, and
	// either dimension alone may already dwarf the input.
	body := p.rest()
	if width > len(body) || height > len(body)/width {
		return nil, fmt.Errorf("truncated body: have %d bytes, want %dx%d pixels", len(body), width, height)
	}

	img := raster.New(width, height)
	for y := 0; y < height; y++ {
		copy(img.Row(y), body[y*width:(y+1)*width])
	}
	return img, nil
}

// Encode serializes an image as binary PGM: "P5\n<width> <height>\n255\n"
// followed by exactly width*height body bytes. Empty images are rejected;
// the format has no representation for them.
func (c *Codec) Encode(img *raster.Image) ([]byte, error) {
	if img.IsEmpty() {
		return nil, fmt.Errorf("cannot encode empty image")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "P5\n%d %d\n%d\n", img.Width(), img.Height(), MaxValue)
	for y := 0; y < img.Height(); y++ {
		buf.Write(img.Row(y))
	}
	return buf.Bytes(), nil
}

// Ensure Codec implements ports.Codec
var _ ports.Codec = (*Codec)(nil)

// parser walks the whitespace-separated ASCII header fields.
type parser struct {
	data []byte
	pos  int
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// token skips leading whitespace and returns the next run of
// non-whitespace bytes.
func (p *parser) token() (string, error) {
	for p.pos < len(p.data) && isSpace(p.data[p.pos]) {
		p.pos++
	}
	if p.pos >= len(p.data) {
		return "", fmt.Errorf("unexpected end of header")
	}
	start := p.pos
	for p.pos < len(p.data) && !isSpace(p.data[p.pos]) {
		p.pos++
	}
	return string(p.data[start:p.pos]), nil
}

// number reads the next token as a decimal integer.
func (p *parser) number(field string) (int, error) {
	tok, err := p.token()
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", field, err)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", field, tok, err)
	}
	return n, nil
}

// separator consumes the single whitespace byte between header and body.
func (p *parser) separator() error {
	if p.pos >= len(p.data) || !isSpace(p.data[p.pos]) {
		return fmt.Errorf("missing separator after header")
	}
	p.pos++
	return nil
}

// rest returns the unread remainder of the input.
func (p *parser) rest() []byte {
	return p.data[p.pos:]
}
