package usecase

import (
	"context"

	"patrol/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// CreateCheckpointInput represents the input for creating a checkpoint
type CreateCheckpointInput struct {
	ID            entity.CheckpointID `json:"id,omitempty"`
	Name          string              `json:"name"`
	Location      string              `json:"location"`
	Description   string              `json:"description"`
	Latitude      *float64            `json:"latitude,omitempty"`
	Longitude     *float64            `json:"longitude,omitempty"`
	AllowedRadius *float64            `json:"allowed_radius,omitempty"`
	GPSAccuracy   *float64            `json:"gps_accuracy,omitempty"`
}

// CheckpointUsecase defines the checkpoint management use cases
type CheckpointUsecase interface {
	ListCheckpoints(ctx context.Context) ([]*entity.Checkpoint, error)
	CreateCheckpoint(ctx context.Context, input *CreateCheckpointInput) (*entity.Checkpoint, error)

	// ExportGeoJSON returns every checkpoint with coordinates as a point feature.
	ExportGeoJSON(ctx context.Context) (*geojson.FeatureCollection, error)

	// GetCheckpointQR returns the PNG QR code printed at the checkpoint.
	GetCheckpointQR(ctx context.Context, id entity.CheckpointID, designatedUser string) ([]byte, error)
}
