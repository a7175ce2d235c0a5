package qrcode

import (
	"net/url"
	"strings"

	"directorio/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const businessPath = "/negocios/"

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service that links to business pages under baseURL.
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// BusinessURL returns the public page of a business.
func (s *qrcodeService) BusinessURL(businessID uuid.UUID) string {
	return s.baseURL + businessPath + businessID.String()
}

// GenerateBusinessQR returns a PNG encoding the public URL of the business.
func (s *qrcodeService) GenerateBusinessQR(businessID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.BusinessURL(businessID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseBusinessQR extracts the business ID from a scanned business URL.
func (s *qrcodeService) ParseBusinessQR(content string) (uuid.UUID, error) {
	u, err := url.Parse(strings.TrimSpace(content))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code content")
	}

	rest, ok := strings.CutPrefix(u.Path, businessPath)
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return uuid.Nil, errors.Errorf("QR code does not point to a business: %q", content)
	}

	businessID, err := uuid.Parse(rest)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse business ID")
	}

	return businessID, nil
}
