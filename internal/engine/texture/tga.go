package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

var errTGATruncated = errors.New("TGA data truncated")

// DecodeTGA decodes a TGA image.
// Supports uncompressed true-color (type 2) and RLE compressed (type 10)
// images at 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, errTGATruncated
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := int(data[2])
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d", bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	r := &tgaReader{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		data:        data[offset:],
		width:       width,
		height:      height,
		bytesPerPix: bpp / 8,
		topToBottom: descriptor&0x20 != 0,
	}

	var err error
	if imageType == TGATypeUncompressed {
		err = r.readRaw()
	} else {
		err = r.readRLE()
	}
	if err != nil {
		return nil, err
	}
	return r.img, nil
}

type tgaReader struct {
	img         *image.RGBA
	data        []byte
	pos         int
	width       int
	height      int
	bytesPerPix int
	topToBottom bool
}

// pixel reads one BGR(A) pixel.
func (r *tgaReader) pixel() (color.RGBA, bool) {
	if r.pos+r.bytesPerPix > len(r.data) {
		return color.RGBA{}, false
	}
	p := r.data[r.pos:]
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if r.bytesPerPix == 4 {
		c.A = p[3]
	}
	r.pos += r.bytesPerPix
	return c, true
}

// set stores the n-th pixel of the file, honouring the vertical origin.
func (r *tgaReader) set(n int, c color.RGBA) {
	x, y := n%r.width, n/r.width
	if !r.topToBottom {
		y = r.height - 1 - y
	}
	r.img.SetRGBA(x, y, c)
}

func (r *tgaReader) readRaw() error {
	total := r.width * r.height
	if len(r.data) < total*r.bytesPerPix {
		return errTGATruncated
	}
	for n := 0; n < total; n++ {
		c, _ := r.pixel()
		r.set(n, c)
	}
	return nil
}

// readRLE decodes run-length packets. A stream that ends early leaves the
// remaining pixels transparent.
func (r *tgaReader) readRLE() error {
	total := r.width * r.height
	n := 0
	for n < total && r.pos < len(r.data) {
		packet := r.data[r.pos]
		r.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			c, ok := r.pixel()
			if !ok {
				return nil
			}
			for i := 0; i < count && n < total; i++ {
				r.set(n, c)
				n++
			}
			continue
		}

		for i := 0; i < count && n < total; i++ {
			c, ok := r.pixel()
			if !ok {
				return nil
			}
			r.set(n, c)
			n++
		}
	}
	return nil
}
