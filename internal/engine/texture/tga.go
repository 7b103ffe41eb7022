package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types handled by DecodeTGA.
const (
	TGATypeUncompressed = 2
	TGATypeRLE          = 10
)

const tgaHeaderSize = 18

// ErrTGA is wrapped by every TGA decode failure.
var ErrTGA = errors.New("invalid TGA")

// tgaHeader holds the fields of the 18-byte header we use.
type tgaHeader struct {
	idLength    int
	colorMapped bool
	imageType   byte
	width       int
	height      int
	bytesPerPx  int
	topDown     bool
}

func readTGAHeader(data []byte) (tgaHeader, error) {
	if len(data) < tgaHeaderSize {
		return tgaHeader{}, fmt.Errorf("%w: %d byte header", ErrTGA, len(data))
	}
	h := tgaHeader{
		idLength:    int(data[0]),
		colorMapped: data[1] != 0,
		imageType:   data[2],
		width:       int(data[12]) | int(data[13])<<8,
		height:      int(data[14]) | int(data[15])<<8,
		bytesPerPx:  int(data[16]) / 8,
		topDown:     data[17]&0x20 != 0,
	}
	switch {
	case h.colorMapped:
		return h, fmt.Errorf("%w: color-mapped images are not supported", ErrTGA)
	case h.imageType != TGATypeUncompressed && h.imageType != TGATypeRLE:
		return h, fmt.Errorf("%w: image type %d", ErrTGA, h.imageType)
	case h.bytesPerPx != 3 && h.bytesPerPx != 4:
		return h, fmt.Errorf("%w: %d bits per pixel", ErrTGA, data[16])
	}
	return h, nil
}

// DecodeTGA decodes an uncompressed or RLE true-colour TGA (24 or 32 bit)
// into an image whose first row is the top of the picture.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	h, err := readTGAHeader(data)
	if err != nil {
		return nil, err
	}
	start := tgaHeaderSize + h.idLength
	if start > len(data) {
		return nil, fmt.Errorf("%w: truncated image id", ErrTGA)
	}

	w := &tgaWriter{
		img:   image.NewRGBA(image.Rect(0, 0, h.width, h.height)),
		total: h.width * h.height,
		h:     h,
	}
	src := data[start:]
	if h.imageType == TGATypeUncompressed {
		err = w.raw(src)
	} else {
		err = w.rle(src)
	}
	if err != nil {
		return nil, err
	}
	return w.img, nil
}

// tgaWriter places decoded pixels in file order, honouring the origin bit.
type tgaWriter struct {
	img   *image.RGBA
	h     tgaHeader
	next  int
	total int
}

func (w *tgaWriter) put(c color.RGBA) {
	x, y := w.next%w.h.width, w.next/w.h.width
	if !w.h.topDown {
		y = w.h.height - 1 - y
	}
	w.img.SetRGBA(x, y, c)
	w.next++
}

func (w *tgaWriter) pixel(p []byte) color.RGBA {
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 0xff}
	if w.h.bytesPerPx == 4 {
		c.A = p[3]
	}
	return c
}

func (w *tgaWriter) raw(src []byte) error {
	bpp := w.h.bytesPerPx
	if len(src) < w.total*bpp {
		return fmt.Errorf("%w: pixel data truncated", ErrTGA)
	}
	for i := 0; i < w.total; i++ {
		w.put(w.pixel(src[i*bpp:]))
	}
	return nil
}

// rle decodes run-length packets: the high bit of the packet byte selects a
// repeated pixel, the low seven bits hold count-1.
func (w *tgaWriter) rle(src []byte) error {
	bpp := w.h.bytesPerPx
	pos := 0
	for w.next < w.total {
		if pos >= len(src) {
			return fmt.Errorf("%w: RLE data ends after %d of %d pixels", ErrTGA, w.next, w.total)
		}
		packet := src[pos]
		pos++
		count := int(packet&0x7f) + 1
		repeat := packet&0x80 != 0

		need := bpp
		if !repeat {
			need = count * bpp
		}
		if pos+need > len(src) {
			return fmt.Errorf("%w: RLE packet truncated", ErrTGA)
		}
		for i := 0; i < count && w.next < w.total; i++ {
			if repeat {
				w.put(w.pixel(src[pos:]))
			} else {
				w.put(w.pixel(src[pos+i*bpp:]))
			}
		}
		pos += need
	}
	return nil
}
