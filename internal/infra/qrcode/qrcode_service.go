package qrcode

import (
	"encoding/json"
	"strings"

	"patrol/config"
	"patrol/internal/domain/entity"
	"patrol/internal/domain/service"
	"patrol/internal/errors"

	"github.com/skip2/go-qrcode"
)

// PayloadTypeCheckpoint marks QR codes printed for patrol checkpoints.
const PayloadTypeCheckpoint = "checkpoint"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	CheckpointID   string `json:"checkpointId"`
	DesignatedUser string `json:"designatedUser,omitempty"`
	Type           string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(256, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateCheckpointQR renders the checkpoint payload as a PNG.
func (s *qrcodeService) GenerateCheckpointQR(payload service.CheckpointQRPayload) ([]byte, error) {
	if payload.CheckpointID == "" {
		return nil, errors.New("checkpoint id is required")
	}

	jsonData, err := EncodePayload(payload)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(jsonData, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseCheckpointQR decodes the JSON text a guard's device read from a printed code.
func (s *qrcodeService) ParseCheckpointQR(qrData string) (*service.CheckpointQRPayload, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(strings.TrimSpace(qrData)), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != PayloadTypeCheckpoint {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	checkpointID := strings.TrimSpace(data.CheckpointID)
	if checkpointID == "" {
		return nil, errors.New("QR code has no checkpoint id")
	}

	return &service.CheckpointQRPayload{
		CheckpointID:   entity.CheckpointID(checkpointID),
		DesignatedUser: strings.TrimSpace(data.DesignatedUser),
	}, nil
}

// EncodePayload returns the exact text embedded in a checkpoint QR code.
func EncodePayload(payload service.CheckpointQRPayload) (string, error) {
	jsonData, err := json.Marshal(QRCodeData{
		CheckpointID:   payload.CheckpointID.String(),
		DesignatedUser: payload.DesignatedUser,
		Type:           PayloadTypeCheckpoint,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(jsonData), nil
}
