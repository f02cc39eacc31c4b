package validate

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
)

// Icon constraints imposed by the platform's content API.
const (
	IconMinSide = 256
	IconMaxSide = 512

	// IconMaxEncodedBytes is the limit on the base64-encoded payload,
	// roughly 100 kB of raw image data.
	IconMaxEncodedBytes = 134000
)

// Sentinel errors returned by Icon. Each failing constraint maps to exactly
// one of these, so callers can report the precise reason an icon was refused.
var (
	ErrIconEmpty     = errors.New("icon data is empty")
	ErrIconBase64    = errors.New("icon data is not valid base64")
	ErrIconNotPNG    = errors.New("icon data is not a decodable PNG")
	ErrIconNotSquare = errors.New("icon is not square")
	ErrIconSide      = errors.New("icon side length out of range")
	ErrIconTooLarge  = errors.New("icon exceeds the encoded size limit")
	ErrIconNoAlpha   = errors.New("icon has no alpha channel")
)

// Icon validates a base64-encoded icon payload against the platform's
// constraints: a square PNG with sides between 256 and 512 pixels, an alpha
// channel, and an encoded size of at most 134000 bytes. A nil return means
// the payload is accepted.
func Icon(data string) error {
	if data == "" {
		return ErrIconEmpty
	}
	if !Base64(data) {
		return ErrIconBase64
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIconBase64, err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIconNotPNG, err)
	}
	if cfg.Width != cfg.Height {
		return fmt.Errorf("%w: %dx%d", ErrIconNotSquare, cfg.Width, cfg.Height)
	}
	if cfg.Width < IconMinSide || cfg.Width > IconMaxSide {
		return fmt.Errorf("%w: %d px, want %d-%d", ErrIconSide, cfg.Width, IconMinSide, IconMaxSide)
	}
	if len(data) > IconMaxEncodedBytes {
		return fmt.Errorf("%w: %d bytes encoded, limit %d", ErrIconTooLarge, len(data), IconMaxEncodedBytes)
	}
	if !pngHasAlpha(raw) {
		return ErrIconNoAlpha
	}
	return nil
}

// pngHasAlpha inspects the IHDR colour type byte. Colour types 4
// (greyscale + alpha) and 6 (truecolour + alpha) carry an alpha channel.
func pngHasAlpha(raw []byte) bool {
	// 8-byte signature, 4-byte chunk length, "IHDR", 4+4 byte dimensions,
	// bit depth, then the colour type at offset 25.
	if len(raw) < 26 {
		return false
	}
	ct := raw[25]
	return ct == 4 || ct == 6
}
