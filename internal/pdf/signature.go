package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	_ "image/jpeg" // accept jpeg signature uploads as well as png
)

// SpoolSignature validates raw signature image bytes and writes them to
// a temporary PNG file for the renderer.
//
// The returned cleanup always removes the file; callers must defer it
// so the temp file is gone on every exit path, rendered or not.
func SpoolSignature(data []byte) (path string, cleanup func(), err error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode signature image: %w", err)
	}

	f, err := os.CreateTemp("", "signature_living_orientation_*.png")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp signature file: %w", err)
	}
	path = f.Name()
	cleanup = func() { _ = os.Remove(path) }

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("failed to write temp signature file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to close temp signature file: %w", err)
	}

	return path, cleanup, nil
}
