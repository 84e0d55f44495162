package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"cashless/config"
	"cashless/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

// tabType marks a QR payload as carrying a public tab code.
const tabType = "tab"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig reads size and recovery level from the qrcode section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateTabQR renders the tab code as a PNG QR code.
func (s *qrcodeService) GenerateTabQR(code string) ([]byte, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("tab code must not be empty")
	}

	jsonData, err := json.Marshal(QRCodeData{Type: tabType, Code: code})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseTabQR returns the tab code of a scanned payload. Scanners that emit the
// bare code instead of the JSON envelope are accepted too.
func (s *qrcodeService) ParseTabQR(qrData string) (string, error) {
	trimmed := strings.TrimSpace(qrData)
	if trimmed == "" {
		return "", fmt.Errorf("empty QR code data")
	}
	if !strings.HasPrefix(trimmed, "{") {
		return trimmed, nil
	}

	var data QRCodeData
	if err := json.Unmarshal([]byte(trimmed), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != tabType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.Code == "" {
		return "", fmt.Errorf("QR code carries no tab code")
	}

	return data.Code, nil
}
