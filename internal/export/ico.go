package export

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

var (
	ErrNoImages      = errors.New("ico: no images")
	ErrImageTooLarge = errors.New("ico: image larger than 256 pixels")
)

// DefaultICOSizes are the favicon resolutions bundled by default.
var DefaultICOSizes = []int{16, 32, 48, 64, 128, 256}

const (
	icoHeaderSize = 6
	icoEntrySize  = 16
	bmpHeaderSize = 40
	maxICODim     = 256
)

type icoHeader struct {
	Reserved uint16
	Type     uint16 // 1 = icon
	Count    uint16
}

type icoEntry struct {
	Width      uint8 // 0 means 256
	Height     uint8
	ColorCount uint8
	Reserved   uint8
	Planes     uint16
	BitCount   uint16
	Size       uint32
	Offset     uint32
}

// bmpInfoHeader is a BITMAPINFOHEADER. Height covers the color rows and the
// AND mask, so it is twice the image height.
type bmpInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	ImageSize     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// EncodeICO writes images as a multi-resolution ICO container, one
// 32-bit BMP entry per image in the given order.
func EncodeICO(w io.Writer, images []image.Image) error {
	if len(images) == 0 {
		return ErrNoImages
	}

	payloads := make([][]byte, len(images))
	for i, img := range images {
		data, err := EncodeBMP(img)
		if err != nil {
			return fmt.Errorf("encode ico entry %d: %w", i, err)
		}
		payloads[i] = data
	}

	var buf bytes.Buffer
	le := binary.LittleEndian
	binary.Write(&buf, le, icoHeader{Type: 1, Count: uint16(len(images))})

	offset := icoHeaderSize + icoEntrySize*len(images)
	for i, img := range images {
		b := img.Bounds()
		binary.Write(&buf, le, icoEntry{
			Width:    icoDim(b.Dx()),
			Height:   icoDim(b.Dy()),
			Planes:   1,
			BitCount: 32,
			Size:     uint32(len(payloads[i])),
			Offset:   uint32(offset),
		})
		offset += len(payloads[i])
	}
	for _, p := range payloads {
		buf.Write(p)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write ico: %w", err)
	}
	return nil
}

func icoDim(n int) uint8 {
	if n == maxICODim {
		return 0
	}
	return uint8(n)
}

// EncodeBMP encodes img as the headerless-file BMP stored inside an ICO
// entry: a 40-byte info header, bottom-up BGRA rows with straight alpha,
// then a 1-bit AND mask. The mask is left all zero; alpha carries
// transparency for 32-bit entries.
func EncodeBMP(img image.Image) ([]byte, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("encode bmp: empty image %dx%d", width, height)
	}
	if width > maxICODim || height > maxICODim {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, width, height)
	}

	src := imaging.Clone(img)
	pixelSize := width * height * 4
	maskRow := ((width+7)/8 + 3) / 4 * 4
	maskSize := maskRow * height

	var buf bytes.Buffer
	buf.Grow(bmpHeaderSize + pixelSize + maskSize)
	binary.Write(&buf, binary.LittleEndian, bmpInfoHeader{
		Size:      bmpHeaderSize,
		Width:     int32(width),
		Height:    int32(height * 2),
		Planes:    1,
		BitCount:  32,
		ImageSize: uint32(pixelSize + maskSize),
	})

	for y := height - 1; y >= 0; y-- {
		row := src.Pix[y*src.Stride : y*src.Stride+width*4]
		for x := 0; x < len(row); x += 4 {
			buf.Write([]byte{row[x+2], row[x+1], row[x], row[x+3]})
		}
	}
	buf.Write(make([]byte, maskSize))

	return buf.Bytes(), nil
}
