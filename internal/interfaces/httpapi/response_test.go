package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afthonia/elo-dashboard/internal/usecase"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: player name is required", usecase.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "no players supplied",
			err:        usecase.ErrNoPlayersSupplied,
			wantStatus: http.StatusBadRequest,
			wantReason: "noPlayersSupplied",
		},
		{
			name:       "no matching players",
			err:        usecase.ErrNoMatchingPlayers,
			wantStatus: http.StatusNotFound,
			wantReason: "noMatchingPlayers",
		},
		{
			name:       "season unavailable",
			err:        fmt.Errorf("%w: data for season 2017/2018 not found", usecase.ErrSeasonUnavailable),
			wantStatus: http.StatusNotFound,
			wantReason: "seasonUnavailable",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: no game data", usecase.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantReason: "notFound",
		},
		{
			name:       "unclassified",
			err:        fmt.Errorf("something broke"),
			wantStatus: http.StatusInternalServerError,
			wantReason: "internalError",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mapped := mapError(tt.err)
			assert.Equal(t, tt.wantStatus, mapped.HTTPStatus)
			assert.Equal(t, tt.wantReason, mapped.Reason)
		})
	}
}

func TestWriteSuccessEnvelope(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	writeSuccess(context.Background(), rr, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var envelope struct {
		APIVersion string            `json:"apiVersion"`
		Data       map[string]string `json:"data"`
		Error      any               `json:"error"`
	}
	require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, "2.0", envelope.APIVersion)
	assert.Equal(t, "ok", envelope.Data["status"])
	assert.Nil(t, envelope.Error)
}

func TestWriteErrorEnvelope(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	err := fmt.Errorf("%w: check the names and try again", usecase.ErrNoMatchingPlayers)
	writeError(context.Background(), rr, err)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var envelope googleResponseEnvelope
	require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, http.StatusNotFound, envelope.Error.Code)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Status)
	require.Len(t, envelope.Error.Errors, 1)
	assert.Equal(t, "noMatchingPlayers", envelope.Error.Errors[0].Reason)
	assert.Contains(t, envelope.Error.Message, "check the names")
}
