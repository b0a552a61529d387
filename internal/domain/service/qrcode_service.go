package service

// QRCodeService generates QR code images for event share links.
type QRCodeService interface {
	// GenerateEventQR encodes the event's external ticketing URL as a PNG.
	GenerateEventQR(url string) ([]byte, error)
}
