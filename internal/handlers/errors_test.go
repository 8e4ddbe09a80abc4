package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irisagenda/agenda-api/internal/domain/schedule"
	"github.com/irisagenda/agenda-api/internal/httperr"
)

func respondWith(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	mapDomainError(c, err)
	return w
}

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", schedule.ErrValidation("date", "esperado YYYY-MM-DD"), http.StatusBadRequest},
		{"conflict", schedule.ErrConflict("slot_unavailable"), http.StatusConflict},
		{"store", schedule.ErrStore("get_override", errors.New("down")), http.StatusServiceUnavailable},
		{"business", httperr.ErrBusiness("service_not_found"), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := respondWith(t, tc.err)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestMapDomainError_PartialFailureListsDates(t *testing.T) {
	err := &schedule.PartialFailure{
		FailedDates: []string{"2026-03-01", "2026-03-08"},
		Err:         errors.New("conexão perdida"),
	}

	w := respondWith(t, err)
	assert.Equal(t, http.StatusConflict, w.Code)

	var body struct {
		ErrorCode   string   `json:"error_code"`
		FailedDates []string `json:"failed_dates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "partial_failure", body.ErrorCode)
	assert.Equal(t, []string{"2026-03-01", "2026-03-08"}, body.FailedDates)
}
