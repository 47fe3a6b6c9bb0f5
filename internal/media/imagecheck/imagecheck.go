package imagecheck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// The backend stores side-effect photos through an image field that only
// accepts raster formats, so anything else is rejected here before a byte
// travels.

type ImageType string

const (
	TypeJPEG ImageType = "jpeg"
	TypePNG  ImageType = "png"
	TypeGIF  ImageType = "gif"
	TypeWEBP ImageType = "webp"
)

var ErrNotAnImage = errors.New("not a supported image")

// DetectFile sniffs the magic bytes of a local file picked for upload.
func DetectFile(path string) (ImageType, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer file.Close()
	return Detect(file)
}

func Detect(r io.Reader) (ImageType, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	return DetectHead(head[:n])
}

func DetectHead(head []byte) (ImageType, error) {
	switch {
	case isJPEG(head):
		return TypeJPEG, nil
	case isPNG(head):
		return TypePNG, nil
	case isGIF(head):
		return TypeGIF, nil
	case isWEBP(head):
		return TypeWEBP, nil
	default:
		return "", ErrNotAnImage
	}
}

func isJPEG(head []byte) bool {
	return len(head) > 3 &&
		head[0] == 0xff &&
		head[1] == 0xd8 &&
		head[2] == 0xff
}

func isPNG(head []byte) bool {
	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	return len(head) >= len(pngMagic) && bytes.Equal(head[:len(pngMagic)], pngMagic)
}

func isGIF(head []byte) bool {
	return len(head) >= 6 && (bytes.Equal(head[:6], []byte("GIF87a")) || bytes.Equal(head[:6], []byte("GIF89a")))
}

func isWEBP(head []byte) bool {
	return len(head) >= 12 &&
		bytes.Equal(head[:4], []byte("RIFF")) &&
		bytes.Equal(head[8:12], []byte("WEBP"))
}
