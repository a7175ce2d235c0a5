package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share codes for public business pages.
type QRCodeService interface {
	// GenerateBusinessQR returns a PNG encoding the public URL of the business.
	GenerateBusinessQR(businessID uuid.UUID) ([]byte, error)

	// ParseBusinessQR extracts the business ID from the encoded URL.
	ParseBusinessQR(content string) (uuid.UUID, error)
}
