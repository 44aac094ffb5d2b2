package lif

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/mazznoer/csscolorparser"
	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var PreviewFormats = []string{"png", "jpg", "gif", "bmp", "tiff"}

// Settings for the optional 8 bit preview written next to each extracted
// image. The raw samples are untouched; this is only for looking at.
type PreviewConfig struct {
	Format    string               // One of PreviewFormats
	Width     int                  // Scale down to this width (0 means full size)
	Black     csscolorparser.Color // Colour for a sample of 0
	White     csscolorparser.Color // Colour for a sample of MaxValue
	BigEndian bool                 // Sample byte order (LIF stores little endian)
}

// Build a preview config from the user facing strings
func NewPreviewConfig(format string, width int, black string, white string, bigEndian bool) (*PreviewConfig, error) {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if format == "jpeg" {
		format = "jpg"
	}
	if format == "tif" {
		format = "tiff"
	}
	valid := false
	for _, f := range PreviewFormats {
		if f == format {
			valid = true
		}
	}
	if !valid {
		return nil, fmt.Errorf("unsupported preview format '%s' (use one of %s)",
			format, strings.Join(PreviewFormats, ","))
	}
	if width < 0 {
		return nil, fmt.Errorf("preview width can't be negative: %d", width)
	}
	b, err := csscolorparser.Parse(black)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse black color: %w", err)
	}
	w, err := csscolorparser.Parse(white)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse white color: %w", err)
	}
	return &PreviewConfig{
		Format:    format,
		Width:     width,
		Black:     b,
		White:     w,
		BigEndian: bigEndian,
	}, nil
}

func (p *PreviewConfig) byteOrder() binary.ByteOrder {
	if p.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Read the sample at the given pixel index. Only the first two bytes of wide
// samples are looked at.
func (p *PreviewConfig) sample(samples []byte, i int, g *Geometry) uint16 {
	start := i * g.BytesPerPixel
	if g.BytesPerPixel == 1 {
		return uint16(samples[start])
	}
	return p.byteOrder().Uint16(samples[start : start+2])
}

func lerpChannel(a float64, b float64, t float64) uint8 {
	v := (a + (b-a)*t) * 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Map raw samples onto the black -> white ramp, then scale if requested
func (p *PreviewConfig) Render(samples []byte, g *Geometry) (image.Image, error) {
	if uint64(len(samples)) != g.ImageSize() {
		return nil, fmt.Errorf("Sample data not right size! Expected: %d, got: %d", g.ImageSize(), len(samples))
	}
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	maxValue := float64(g.MaxValue)
	for i := 0; i < g.Width*g.Height; i++ {
		t := float64(p.sample(samples, i, g)) / maxValue
		if t > 1 {
			t = 1
		}
		img.SetNRGBA(i%g.Width, i/g.Width, color.NRGBA{
			R: lerpChannel(p.Black.R, p.White.R, t),
			G: lerpChannel(p.Black.G, p.White.G, t),
			B: lerpChannel(p.Black.B, p.White.B, t),
			A: lerpChannel(p.Black.A, p.White.A, t),
		})
	}
	if p.Width > 0 && p.Width < g.Width {
		return resize.Resize(uint(p.Width), 0, img, resize.Bilinear), nil
	}
	return img, nil
}

func (p *PreviewConfig) Encode(w io.Writer, img image.Image) error {
	switch p.Format {
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	format, err := imaging.FormatFromExtension(p.Format)
	if err != nil {
		return err
	}
	return imaging.Encode(w, img, format)
}

// Path of the preview that goes with the given image file
func (p *PreviewConfig) PreviewPath(imagePath string) string {
	return strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + "." + p.Format
}

// Render and save the preview for an image already written to imagePath.
// Returns the preview path.
func (p *PreviewConfig) WriteFile(imagePath string, samples []byte, g *Geometry) (string, error) {
	path := p.PreviewPath(imagePath)
	img, err := p.Render(samples, g)
	if err != nil {
		return path, &WriteError{Path: path, Err: err}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, OutputPermissions)
	if err != nil {
		return path, &OpenError{Path: path, Role: RoleOutput, Err: err}
	}
	defer file.Close()
	wep := NewWriteErrorPass(file, path)
	if err := p.Encode(wep, img); err != nil {
		if wep.Err() != nil {
			return path, wep.Err()
		}
		return path, &WriteError{Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return path, &WriteError{Path: path, Err: err}
	}
	return path, nil
}
