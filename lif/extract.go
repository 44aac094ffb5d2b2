package lif

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	OutputPermissions = 0644
)

// Produces the file name for the index'th (1 based) image of a block
type Namer func(block uint16, index int) (string, error)

func DefaultName(block uint16, index int) string {
	return fmt.Sprintf("MemBlock_%04d_%03d.pgm", block, index)
}

func DefaultNamer(block uint16, index int) (string, error) {
	return DefaultName(block, index), nil
}

// Everything known about one image after it has been written out
type ExtractedImage struct {
	Filename string
	Preview  string `json:",omitempty"`
	Block    uint16
	Index    int
	Offset   uint64
	Length   uint64
	MD5      string
}

// Copies the images found in a span out of the input file, one output file
// per image. The input is opened fresh for every copy so the scanning handle
// never moves.
type Extractor struct {
	InputPath string
	OutDir    string
	Geometry  Geometry
	Namer     Namer                // nil means DefaultNamer
	Preview   *PreviewConfig       // nil means no previews
	Report    func(ExtractedImage) // Called after each image is complete
	Logger    *zap.Logger

	buffer []byte
}

func NewExtractor(inputPath string, geometry Geometry, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		InputPath: inputPath,
		OutDir:    ".",
		Geometry:  geometry,
		Logger:    logger,
	}
}

func (e *Extractor) logger() *zap.Logger {
	if e.Logger == nil {
		e.Logger = zap.NewNop()
	}
	return e.Logger
}

// Write out every whole image that fits in length, starting at dataStart.
// Returns whatever was extracted before the first failure along with it;
// files that were partially written stay where they are.
func (e *Extractor) EmitImages(block uint16, dataStart uint64, length uint64) ([]ExtractedImage, error) {
	imageSize := e.Geometry.ImageSize()
	if imageSize == 0 {
		return nil, e.Geometry.Validate()
	}
	namer := e.Namer
	if namer == nil {
		namer = DefaultNamer
	}
	count := length / imageSize
	result := make([]ExtractedImage, 0, count)
	for index := uint64(0); index < count; index++ {
		name, err := namer(block, int(index)+1)
		if err != nil {
			return result, fmt.Errorf("naming image %d of block %d: %w", index+1, block, err)
		}
		image, err := e.emitImage(block, int(index)+1, name, dataStart+index*imageSize)
		if err != nil {
			return result, err
		}
		result = append(result, image)
		e.logger().Info("extracted image",
			zap.String("file", image.Filename),
			zap.Uint16("block", block),
			zap.Uint64("offset", image.Offset))
		if e.Report != nil {
			e.Report(image)
		}
	}
	return result, nil
}

func (e *Extractor) emitImage(block uint16, index int, name string, offset uint64) (ExtractedImage, error) {
	imageSize := e.Geometry.ImageSize()
	path := filepath.Join(e.OutDir, name)
	image := ExtractedImage{
		Filename: path,
		Block:    block,
		Index:    index,
		Offset:   offset,
		Length:   imageSize,
	}
	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, OutputPermissions)
	if err != nil {
		return image, &OpenError{Path: path, Role: RoleOutput, Err: err}
	}
	// Close errors only matter on the success path, where they're checked below
	defer out.Close()

	wep := NewWriteErrorPass(out, path)
	wep.WritePass(e.Geometry.PgmHeader())
	if err := wep.Err(); err != nil {
		return image, err
	}

	hasher := md5.New()
	var samples *bytes.Buffer
	sinks := []io.Writer{wep, hasher}
	if e.Preview != nil {
		samples = bytes.NewBuffer(make([]byte, 0, imageSize))
		sinks = append(sinks, samples)
	}
	if err := e.splice(io.MultiWriter(sinks...), offset, imageSize); err != nil {
		return image, err
	}
	if err := out.Close(); err != nil {
		return image, &WriteError{Path: path, Err: err}
	}
	image.MD5 = hashString(hasher)

	if e.Preview != nil {
		image.Preview, err = e.Preview.WriteFile(path, samples.Bytes(), &e.Geometry)
		if err != nil {
			return image, err
		}
	}
	return image, nil
}

// Copy length bytes of the input starting at offset into dst, using an
// independent handle on the input file.
func (e *Extractor) splice(dst io.Writer, offset uint64, length uint64) error {
	in, err := os.Open(e.InputPath)
	if err != nil {
		return &OpenError{Path: e.InputPath, Role: RoleCopySource, Err: err}
	}
	defer in.Close()

	pos, err := in.Seek(int64(offset), io.SeekStart)
	if err == nil && uint64(pos) != offset {
		err = fmt.Errorf("landed at %d", pos)
	}
	if err != nil {
		return &SeekError{Offset: offset, Err: err}
	}

	if e.buffer == nil {
		e.buffer = make([]byte, BufSize)
	}
	var progress uint64
	for progress < length {
		want := min(length-progress, uint64(len(e.buffer)))
		count, err := in.Read(e.buffer[:want])
		if count <= 0 {
			if err == nil || err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return &ReadError{Offset: offset + progress, Err: err}
		}
		if _, werr := dst.Write(e.buffer[:count]); werr != nil {
			return werr
		}
		progress += uint64(count)
		if err != nil && err != io.EOF && progress < length {
			return &ReadError{Offset: offset + progress, Err: err}
		}
	}
	return nil
}
