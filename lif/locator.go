package lif

const (
	// Bytes between the end of the block id and the start of image data
	PostIdSkip = 2
)

// Where the images for one memory block live and how many there are
type Span struct {
	Block     uint16
	Offset    uint64 // Stream position after the marker and id
	DataStart uint64 // First byte of the first image
	Length    uint64 // Distance back to the previous marker
	Records   uint64 // Whole images that fit in Length
}

// Keeps the position of the previous marker so the distance between markers
// can be turned into an image count.
type Locator struct {
	previous  uint64
	imageSize uint64
}

func NewLocator(imageSize uint64) *Locator {
	return &Locator{imageSize: imageSize}
}

// Offset of the previous marker (0 before the first one)
func (l *Locator) Previous() uint64 {
	return l.previous
}

// Compute the span for a marker whose id ends at the given offset. The count
// is a truncating division; a partial trailing image is dropped. The baseline
// for the next span is this offset, not the data start.
func (l *Locator) Locate(block uint16, offset uint64) Span {
	span := Span{
		Block:     block,
		Offset:    offset,
		DataStart: offset + PostIdSkip,
		Length:    offset - l.previous,
	}
	if l.imageSize > 0 {
		span.Records = span.Length / l.imageSize
	}
	l.previous = offset
	return span
}
