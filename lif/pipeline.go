package lif

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// Drives the whole extraction: bytes go through the scanner, every marker has
// its id parsed and its span located, and the span is handed to the
// extractor. There is exactly one of each stage and nothing here is shared.
type Pipeline struct {
	Source    *ByteSource
	Scanner   *Scanner
	Locator   *Locator
	Extractor *Extractor // nil means only scan (nothing is written)
	OnSpan    func(Span) // Called for every marker before extraction
	Logger    *zap.Logger
}

func NewPipeline(r io.Reader, geometry Geometry, extractor *Extractor, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		Source:    NewByteSource(r),
		Scanner:   NewMemBlockScanner(),
		Locator:   NewLocator(geometry.ImageSize()),
		Extractor: extractor,
		Logger:    logger,
	}
}

// Scan forward to the next marker, parse its id, and extract its images.
func (p *Pipeline) Step() (Span, []ExtractedImage, error) {
	if _, err := p.Scanner.Next(p.Source); err != nil {
		return Span{}, nil, err
	}
	block, err := ParseBlockId(p.Source)
	if err != nil {
		return Span{}, nil, err
	}
	span := p.Locator.Locate(block, p.Source.Offset())
	p.Logger.Info("marker found",
		zap.Uint16("block", span.Block),
		zap.Uint64("offset", span.Offset),
		zap.Uint64("span", span.Length),
		zap.Uint64("records", span.Records))
	if p.OnSpan != nil {
		p.OnSpan(span)
	}
	if p.Extractor == nil {
		return span, nil, nil
	}
	images, err := p.Extractor.EmitImages(span.Block, span.DataStart, span.Length)
	return span, images, err
}

// Run until something fails. The input running out is also a failure (a
// ReadError wrapping io.EOF), so this never returns nil; the caller decides
// what each error means.
func (p *Pipeline) Run() ([]ExtractedImage, error) {
	result := make([]ExtractedImage, 0)
	for {
		_, images, err := p.Step()
		result = append(result, images...)
		if err != nil {
			return result, err
		}
	}
}

// Open the input at path and extract everything in it with the given extractor.
// The extractor's input path is pointed at the same file.
func ExtractFile(path string, extractor *Extractor, logger *zap.Logger) ([]ExtractedImage, error) {
	input, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Role: RoleInput, Err: err}
	}
	defer input.Close()
	extractor.InputPath = path
	if err := extractor.Geometry.Validate(); err != nil {
		return nil, err
	}
	pipeline := NewPipeline(input, extractor.Geometry, extractor, logger)
	return pipeline.Run()
}

// Scan the input at path without extracting, reporting every marker.
func ScanFile(path string, geometry Geometry, onSpan func(Span), logger *zap.Logger) error {
	input, err := os.Open(path)
	if err != nil {
		return &OpenError{Path: path, Role: RoleInput, Err: err}
	}
	defer input.Close()
	if err := geometry.Validate(); err != nil {
		return err
	}
	pipeline := NewPipeline(input, geometry, nil, logger)
	pipeline.OnSpan = onSpan
	_, err = pipeline.Run()
	return err
}
