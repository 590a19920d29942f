package payments

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 512

// QRGenerator renders payment payloads into QR PNG images.
type QRGenerator interface {
	GeneratePNG(payload string) ([]byte, error)
}

type qrGenerator struct{}

func NewQRGenerator() QRGenerator {
	return qrGenerator{}
}

func (qrGenerator) GeneratePNG(payload string) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR image: %w", err)
	}
	return png, nil
}
