// Package qrcode generates share codes that deep-link to schedule events.
package qrcode

import (
	"encoding/json"
	"fmt"

	"companion/config"
	"companion/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	EventID string `json:"event_id"`
	Type    string `json:"type"`
	URL     string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch cfg.QRCode.ErrorCorrectionLevel {
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
		size:                 cfg.QRCode.Size,
		errorCorrectionLevel: level,
		baseURL:              cfg.QRCode.BaseURL,
	}
}

// GenerateEventQR generates a QR code PNG that deep-links to an event.
func (s *qrcodeService) GenerateEventQR(eventID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		EventID: eventID.String(),
		Type:    "event",
		URL:     s.baseURL + "/events/" + eventID.String(),
	}

	jsonData, err := json.Marshal(data)
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

// ParseEventQR parses QR code data and returns the event ID.
func (s *qrcodeService) ParseEventQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "event" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	eventID, err := uuid.Parse(data.EventID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse event ID: %w", err)
	}

	return eventID, nil
}
