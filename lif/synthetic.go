package lif

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Encode a block id the way LIF stores it: a zero byte before each
// character. The id text isn't checked so malformed ids can be produced.
func EncodeBlockId(id string) []byte {
	result := make([]byte, 0, len(id)*2)
	for i := 0; i < len(id); i++ {
		result = append(result, 0, id[i])
	}
	return result
}

// The marker plus encoded id for a given numeric block
func MarkerFor(block uint16) []byte {
	return MarkerForText(fmt.Sprintf("%04d", block))
}

func MarkerForText(id string) []byte {
	result := make([]byte, 0, len(MemBlockMarker)+len(id)*2)
	result = append(result, MemBlockMarker...)
	return append(result, EncodeBlockId(id)...)
}

// A little endian ramp image; each row is shifted by seed so images from
// different blocks are distinguishable.
func RampImage(g *Geometry, seed int) []byte {
	data := make([]byte, g.ImageSize())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			value := uint16((x + y + seed) % (g.MaxValue + 1))
			i := (x + y*g.Width) * g.BytesPerPixel
			if g.BytesPerPixel == 1 {
				data[i] = byte(value)
			} else {
				binary.LittleEndian.PutUint16(data[i:], value)
			}
		}
	}
	return data
}

// One memory block in a synthetic file: its marker, the two bytes after the
// id, then its images.
type SyntheticBlock struct {
	Id     uint16
	Images int
}

// Write a fake container: a leading filler (standing in for the LIF xml
// header), then each block. Since the image count for a block is taken from
// the distance back to the previous marker, the filler and earlier block
// sizes decide what gets extracted. Returns the number of bytes written.
func WriteSynthetic(w io.Writer, g *Geometry, filler int, blocks []SyntheticBlock) (int64, error) {
	var total int64
	write := func(data []byte) error {
		n, err := w.Write(data)
		total += int64(n)
		return err
	}
	if err := write(make([]byte, filler)); err != nil {
		return total, err
	}
	for bi, block := range blocks {
		if err := write(MarkerFor(block.Id)); err != nil {
			return total, err
		}
		if err := write(make([]byte, PostIdSkip)); err != nil {
			return total, err
		}
		for i := 0; i < block.Images; i++ {
			if err := write(RampImage(g, bi*block.Images+i)); err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// The filler needed in front of the first block so that it is credited with
// exactly `images` images. Later blocks line up on their own as long as an
// image is bigger than a marker, id and skip together.
func SyntheticFiller(g *Geometry, images int) int {
	filler := images*int(g.ImageSize()) - len(MemBlockMarker) - BlockIdDigits*2
	if filler < 0 {
		return 0
	}
	return filler
}
