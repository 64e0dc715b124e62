package qrcode

import (
	"encoding/json"
	"testing"

	"companion/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *qrcodeService {
	cfg := &config.Config{}
	cfg.QRCode = &config.QRCodeConfig{
		Size:                 256,
		ErrorCorrectionLevel: "M",
		BaseURL:              "https://companion.example.com",
	}

	return NewQRCodeService(cfg).(*qrcodeService)
}

func TestQRCodeService_GenerateEventQR(t *testing.T) {
	svc := newTestService()
	eventID := uuid.New()

	png, err := svc.GenerateEventQR(eventID)

	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestQRCodeService_ParseEventQR(t *testing.T) {
	svc := newTestService()
	eventID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		EventID: eventID.String(),
		Type:    "event",
		URL:     "https://companion.example.com/events/" + eventID.String(),
	})
	require.NoError(t, err)

	parsed, err := svc.ParseEventQR(string(payload))

	require.NoError(t, err)
	assert.Equal(t, eventID, parsed)
}

func TestQRCodeService_ParseEventQR_InvalidPayloads(t *testing.T) {
	svc := newTestService()

	_, err := svc.ParseEventQR("not json")
	assert.Error(t, err)

	payload, _ := json.Marshal(QRCodeData{EventID: uuid.NewString(), Type: "ticket"})
	_, err = svc.ParseEventQR(string(payload))
	assert.Error(t, err)

	payload, _ = json.Marshal(QRCodeData{EventID: "not-a-uuid", Type: "event"})
	_, err = svc.ParseEventQR(string(payload))
	assert.Error(t, err)
}
