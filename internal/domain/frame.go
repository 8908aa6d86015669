package domain

// Frame — декодированный кадр: непрерывный RGB-буфер без выравнивания строк.
type Frame struct {
	Pix      []byte // len == Width*Height*Channels
	Width    int
	Height   int
	Channels int
}

func NewFrame(pix []byte, width, height, channels int) *Frame {
	return &Frame{
		Pix:      pix,
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}
