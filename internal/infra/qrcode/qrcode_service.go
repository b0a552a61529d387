// Package qrcode renders event share links as QR code images.
package qrcode

import (
	"happnings/config"
	"happnings/internal/domain/service"
	"happnings/internal/errors"

	qr "github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrCodeService struct {
	size  int
	level qr.RecoveryLevel
}

// New creates a QRCodeService from config.
func New(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := qr.Medium
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = parseRecoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
	}

	return &qrCodeService{size: size, level: level}
}

func parseRecoveryLevel(level string) qr.RecoveryLevel {
	switch level {
	case "low":
		return qr.Low
	case "high":
		return qr.High
	case "highest":
		return qr.Highest
	default:
		return qr.Medium
	}
}

func (s *qrCodeService) GenerateEventQR(url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New("event url is empty")
	}

	png, err := qr.Encode(url, s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "encode qr code")
	}

	return png, nil
}
