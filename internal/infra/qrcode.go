package infra

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateAssetQR renders a PNG QR code for an asset label. The encoded
// payload is the asset code — scanners resolve it via GET /v1/assets/scan/:code.
func GenerateAssetQR(assetCode string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(assetCode, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: encode %q: %w", assetCode, err)
	}
	return png, nil
}
