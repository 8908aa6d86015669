package frame

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/vidyarthi-tech/face-backend/pkg/e"
)

func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeBytes(t *testing.T) {
	data := encodeTestPNG(t, 4, 3)

	fr, err := DecodeBytes(data)
	if err != nil {
		t.Fatalf("DecodeBytes returned error: %v", err)
	}

	if fr.Width != 4 || fr.Height != 3 || fr.Channels != 3 {
		t.Fatalf("unexpected dimensions: %dx%dx%d", fr.Width, fr.Height, fr.Channels)
	}
	if len(fr.Pix) != 4*3*3 {
		t.Fatalf("unexpected pix length: %d", len(fr.Pix))
	}
	// пиксель (1,2): R=1, G=2, B=128
	off := (2*4 + 1) * 3
	if fr.Pix[off] != 1 || fr.Pix[off+1] != 2 || fr.Pix[off+2] != 128 {
		t.Fatalf("unexpected pixel at (1,2): %v", fr.Pix[off:off+3])
	}
}

func TestDecodeBytesInvalid(t *testing.T) {
	if _, err := DecodeBytes([]byte("definitely not an image")); !errors.Is(err, e.ErrBadImage) {
		t.Fatalf("expected ErrBadImage, got %v", err)
	}
	if _, err := DecodeBytes(nil); !errors.Is(err, e.ErrBadImage) {
		t.Fatalf("expected ErrBadImage for empty input, got %v", err)
	}
}

func TestDecodeBase64(t *testing.T) {
	data := encodeTestPNG(t, 2, 2)
	encoded := base64.StdEncoding.EncodeToString(data)

	tests := []struct {
		name    string
		payload string
	}{
		{"plain base64", encoded},
		{"data URI", "data:image/png;base64," + encoded},
		{"unpadded", base64.RawStdEncoding.EncodeToString(data)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fr, err := DecodeBase64(tc.payload)
			if err != nil {
				t.Fatalf("DecodeBase64 returned error: %v", err)
			}
			if fr.Width != 2 || fr.Height != 2 {
				t.Fatalf("unexpected dimensions: %dx%d", fr.Width, fr.Height)
			}
		})
	}
}

func TestDecodeBase64Invalid(t *testing.T) {
	if _, err := DecodeBase64("%%%not-base64%%%"); !errors.Is(err, e.ErrBadImage) {
		t.Fatalf("expected ErrBadImage, got %v", err)
	}
	// корректный base64, но не изображение
	garbage := base64.StdEncoding.EncodeToString([]byte("garbage bytes"))
	if _, err := DecodeBase64(garbage); !errors.Is(err, e.ErrBadImage) {
		t.Fatalf("expected ErrBadImage, got %v", err)
	}
}
