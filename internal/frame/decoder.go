// Package frame декодирует входящие кадры в сырой пиксельный буфер.
package frame

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/vidyarthi-tech/face-backend/internal/domain"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
)

const channels = 3 // RGB

// DecodeBase64 декодирует текстовый payload стриминговой сессии.
// Data-URI-префикс (всё до первой запятой включительно) отбрасывается.
func DecodeBase64(payload string) (*domain.Frame, error) {
	const op = "frame.DecodeBase64"

	if idx := strings.IndexByte(payload, ','); idx >= 0 {
		payload = payload[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Некоторые клиенты шлют base64 без выравнивания.
		data, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return nil, e.Wrap(op, e.ErrBadImage)
		}
	}

	return DecodeBytes(data)
}

// DecodeBytes декодирует байты изображения (jpeg/png/gif/webp) в RGB-буфер.
func DecodeBytes(data []byte) (*domain.Frame, error) {
	const op = "frame.DecodeBytes"

	if len(data) == 0 {
		return nil, e.Wrap(op, e.ErrBadImage)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, e.Wrap(op, e.ErrBadImage)
	}

	return fromImage(img), nil
}

// fromImage переупаковывает image.Image в плотный RGB-буфер без альфа-канала.
func fromImage(img image.Image) *domain.Frame {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pix := make([]byte, 0, width*height*channels)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pix = append(pix, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}

	return domain.NewFrame(pix, width, height, channels)
}
