package qr

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// Size is the edge length in pixels of rendered codes
const Size = 256

// Encode renders content as a PNG QR code
func Encode(content string) ([]byte, error) {
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := code.PNG(Size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}
	return pngBytes, nil
}

// DataURL renders content as a base64 PNG data URL suitable for an <img> src
func DataURL(content string) (string, error) {
	pngBytes, err := Encode(content)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(pngBytes)), nil
}
