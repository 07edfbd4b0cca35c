package service

import (
	"patrol/internal/domain/entity"
)

// CheckpointQRPayload is the content encoded into a printed checkpoint QR code.
type CheckpointQRPayload struct {
	CheckpointID   entity.CheckpointID
	DesignatedUser string
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCheckpointQR renders the payload as a PNG QR code.
	GenerateCheckpointQR(payload CheckpointQRPayload) ([]byte, error)

	// ParseCheckpointQR decodes a scanned QR string back into its payload.
	ParseCheckpointQR(qrData string) (*CheckpointQRPayload, error)
}
