package handler

import (
	"net/http"
	"testing"

	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	mockUsecase "patrol/internal/mocks/usecase"
	"patrol/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCheckpointTestEcho(t *testing.T) (*mockUsecase.MockCheckpointUsecase, *CheckpointHandler) {
	checkpointUC := mockUsecase.NewMockCheckpointUsecase(t)

	return checkpointUC, NewCheckpointHandler(CheckpointHandlerParams{CheckpointUC: checkpointUC, Logger: newDiscardLogger()})
}

func TestCheckpointHandler_CreateCheckpoint(t *testing.T) {
	checkpointUC, h := newCheckpointTestEcho(t)
	checkpointUC.EXPECT().
		CreateCheckpoint(mock.Anything, &usecase.CreateCheckpointInput{
			Name:          "Gate A",
			Latitude:      ptrFloat(25),
			Longitude:     ptrFloat(121.5),
			AllowedRadius: ptrFloat(40),
		}).
		Return(&entity.Checkpoint{ID: "cp-1", Name: "Gate A"}, nil)

	e := newTestEcho()
	e.POST("/checkpoints", h.CreateCheckpoint)

	rec := serve(e, http.MethodPost, "/checkpoints",
		`{"name":"Gate A","latitude":25,"longitude":121.5,"allowedRadius":40}`, asAdmin("admin-1"))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCheckpointHandler_CreateCheckpoint_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		ucErr error
		code  string
	}{
		{name: "missing name", body: `{"latitude":1,"longitude":2}`, code: "VALIDATION_ERROR"},
		{name: "zero radius", body: `{"name":"Gate","latitude":1,"longitude":2,"allowedRadius":0}`, code: "VALIDATION_ERROR"},
		{name: "half coordinates", body: `{"name":"Gate","latitude":1}`, ucErr: errors.Wrap(domainerrors.ErrInvalidInput, "create checkpoint"), code: "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkpointUC, h := newCheckpointTestEcho(t)
			if tt.ucErr != nil {
				checkpointUC.EXPECT().CreateCheckpoint(mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			e := newTestEcho()
			e.POST("/checkpoints", h.CreateCheckpoint)

			rec := serve(e, http.MethodPost, "/checkpoints", tt.body, asAdmin("admin-1"))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, errorCode(t, rec))
		})
	}
}

func TestCheckpointHandler_ExportGeoJSON(t *testing.T) {
	checkpointUC, h := newCheckpointTestEcho(t)
	fc := geojson.NewFeatureCollection()
	feature := geojson.NewFeature(orb.Point{121.5, 25})
	feature.ID = "cp-1"
	fc.Append(feature)
	checkpointUC.EXPECT().ExportGeoJSON(mock.Anything).Return(fc, nil)

	e := newTestEcho()
	e.GET("/checkpoints/geojson", h.ExportGeoJSON)

	rec := serve(e, http.MethodGet, "/checkpoints/geojson", "", asAdmin("admin-1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))
	body := decodeBody(t, rec)
	assert.Equal(t, "FeatureCollection", body["type"])
	assert.Len(t, body["features"], 1)
}

func TestCheckpointHandler_GetQRCode(t *testing.T) {
	checkpointUC, h := newCheckpointTestEcho(t)
	checkpointUC.EXPECT().GetCheckpointQR(mock.Anything, entity.CheckpointID("cp-1"), "Bob").Return([]byte("\x89PNG"), nil)

	e := newTestEcho()
	e.GET("/checkpoints/:id/qr", h.GetQRCode)

	rec := serve(e, http.MethodGet, "/checkpoints/cp-1/qr?designatedUser=Bob", "", asAdmin("admin-1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestCheckpointHandler_GetQRCode_NotFound(t *testing.T) {
	checkpointUC, h := newCheckpointTestEcho(t)
	checkpointUC.EXPECT().
		GetCheckpointQR(mock.Anything, entity.CheckpointID("ghost"), "").
		Return(nil, errors.Wrap(domainerrors.ErrCheckpointNotFound, "checkpoint qr"))

	e := newTestEcho()
	e.GET("/checkpoints/:id/qr", h.GetQRCode)

	rec := serve(e, http.MethodGet, "/checkpoints/ghost/qr", "", asAdmin("admin-1"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CHECKPOINT_NOT_FOUND", errorCode(t, rec))
}
