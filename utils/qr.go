package utils

import (
	"github.com/skip2/go-qrcode"
)

const (
	MinQRSize     = 128
	MaxQRSize     = 1024
	DefaultQRSize = 256
)

// QRCodePNG encodes content as a square PNG. Out of range sizes fall back to DefaultQRSize.
func QRCodePNG(content string, size int) ([]byte, error) {
	if size < MinQRSize || size > MaxQRSize {
		size = DefaultQRSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
