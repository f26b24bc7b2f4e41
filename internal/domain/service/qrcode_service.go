package service

// QRCodeService renders QR codes for order packing slips.
type QRCodeService interface {
	// GenerateTrackingQR encodes the order's public tracking URL as a PNG.
	GenerateTrackingQR(trackingURL string) ([]byte, error)
}
