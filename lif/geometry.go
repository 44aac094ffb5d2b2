package lif

import (
	"fmt"
)

const (
	DefaultWidth         = 1600
	DefaultHeight        = 1200
	DefaultBytesPerPixel = 2
	DefaultMaxValue      = 4095
	PgmMagic             = "P5"
)

// The shape of every raw image embedded in the container. Nothing in the
// file tells us this; it's fixed for a whole run.
type Geometry struct {
	Width         int // Pixels per row
	Height        int // Rows per image
	BytesPerPixel int // Bytes per sample (2 for 12 bit cameras)
	MaxValue      int // Largest sample value, written into the pgm header
}

func DefaultGeometry() Geometry {
	return Geometry{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		BytesPerPixel: DefaultBytesPerPixel,
		MaxValue:      DefaultMaxValue,
	}
}

// Fill in anything left at zero with the defaults
func (g *Geometry) ReasonableDefaults() {
	if g.Width == 0 {
		g.Width = DefaultWidth
	}
	if g.Height == 0 {
		g.Height = DefaultHeight
	}
	if g.BytesPerPixel == 0 {
		g.BytesPerPixel = DefaultBytesPerPixel
	}
	if g.MaxValue == 0 {
		g.MaxValue = DefaultMaxValue
	}
}

// Size in bytes of a single embedded image
func (g *Geometry) ImageSize() uint64 {
	return uint64(g.Width) * uint64(g.Height) * uint64(g.BytesPerPixel)
}

func (g *Geometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 || g.BytesPerPixel <= 0 {
		return fmt.Errorf("invalid image geometry %dx%d (%d bytes per pixel)",
			g.Width, g.Height, g.BytesPerPixel)
	}
	if g.MaxValue <= 0 || g.MaxValue > 0xFFFF {
		return fmt.Errorf("invalid max sample value %d", g.MaxValue)
	}
	return nil
}

// The text header placed before the raw samples of every output file
func (g *Geometry) PgmHeader() []byte {
	return []byte(fmt.Sprintf("%s\n%d %d\n%d\n", PgmMagic, g.Width, g.Height, g.MaxValue))
}
