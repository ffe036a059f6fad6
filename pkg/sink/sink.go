// Package sink writes finished images to lossless image files.
package sink

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	// ErrSink marks every failure to produce the output file.
	ErrSink = errors.New("image sink failed")

	ErrUnknownFormat = errors.New("unknown image format")
)

type Format int

const (
	FormatPNG Format = iota
	FormatBMP
	FormatTIFF
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from path's extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("encode %v: %w", f, err)
	}

	return nil
}

// File writes images to Path. Each Write is a single attempt; on failure
// the partially written file is removed.
type File struct {
	Path   string
	Format Format
}

// NewFile returns a File whose format follows path's extension.
func NewFile(path string) (File, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return File{}, err
	}
	return File{Path: path, Format: f}, nil
}

func (s File) Write(img image.Image) error {
	f, err := os.Create(filepath.Clean(s.Path))
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrSink, s.Path, err)
	}

	w := bufio.NewWriter(f)
	err = Encode(w, img, s.Format)
	if err == nil {
		err = w.Flush()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		_ = os.Remove(s.Path)
		return fmt.Errorf("%w: write %s: %w", ErrSink, s.Path, err)
	}

	return nil
}
