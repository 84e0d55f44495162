package qrcode

import (
	"encoding/json"
	"testing"

	"cashless/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateTabQR(t *testing.T) {
	service := NewQRCodeServiceFromConfig(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"},
	})

	qrBytes, err := service.GenerateTabQR("TAB-0042")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])

	_, err = service.GenerateTabQR("  ")
	assert.Error(t, err)
}

func TestQRCodeService_GenerateTabQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")
			qrBytes, err := service.GenerateTabQR("TAB-0042")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseTabQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	valid, err := json.Marshal(QRCodeData{Type: "tab", Code: "TAB-0042"})
	require.NoError(t, err)
	wrongType, err := json.Marshal(QRCodeData{Type: "subscription", Code: "TAB-0042"})
	require.NoError(t, err)
	noCode, err := json.Marshal(QRCodeData{Type: "tab"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{"JSON envelope", string(valid), "TAB-0042", false},
		{"Bare code", " TAB-0042\n", "TAB-0042", false},
		{"Wrong type", string(wrongType), "", true},
		{"Missing code", string(noCode), "", true},
		{"Broken JSON", "{not json", "", true},
		{"Empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseTabQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
