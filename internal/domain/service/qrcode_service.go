package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateTabQR renders a PNG QR code carrying the account's public tab code.
	GenerateTabQR(code string) ([]byte, error)

	// ParseTabQR extracts the tab code from a scanned QR payload.
	ParseTabQR(qrData string) (string, error)
}
