package service

import "github.com/google/uuid"

// QRCodeService generates and parses event share QR codes.
type QRCodeService interface {
	// GenerateEventQR generates a QR code PNG that deep-links to an event.
	GenerateEventQR(eventID uuid.UUID) ([]byte, error)

	// ParseEventQR parses QR code data and returns the event ID.
	ParseEventQR(qrData string) (uuid.UUID, error)
}
