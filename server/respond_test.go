package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/jbarros/go-timeclock-server/authn"
	"github.com/jbarros/go-timeclock-server/tracking"
	"github.com/jbarros/go-timeclock-server/worksessions"
)

func TestWriteServiceErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "no open shift", err: tracking.ErrNoOpenShift, wantStatus: http.StatusNotFound},
		{name: "employee not found", err: tracking.ErrEmployeeNotFound, wantStatus: http.StatusNotFound},
		{name: "shift already open", err: tracking.ErrShiftAlreadyOpen, wantStatus: http.StatusConflict},
		{name: "invalid reason", err: worksessions.ErrInvalidReason, wantStatus: http.StatusBadRequest},
		{name: "details required", err: tracking.ErrDetailsRequired, wantStatus: http.StatusBadRequest},
		{name: "bad credentials", err: authn.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "wrapped kind still matches", err: errors.Wrap(tracking.ErrShiftAlreadyOpen, "checkin"), wantStatus: http.StatusConflict},
		{name: "unclassified falls back to 500", err: errors.New("disk on fire"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/work/checkin", nil)

			writeServiceError(w, r, tt.err)

			require.Equal(t, tt.wantStatus, w.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, tt.wantStatus, body.Status)
			require.Equal(t, "/work/checkin", body.Path)
			require.NotEmpty(t, body.Message)
		})
	}
}
