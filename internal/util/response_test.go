package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: plan x", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: bad", ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("%w: day 9", ErrOutOfRange), http.StatusBadRequest},
		{fmt.Errorf("%w: not yours", ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("%w: superseded", ErrConflict), http.StatusConflict},
		{ErrEmailRegistered, http.StatusConflict},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFor(tc.err), tc.err.Error())
	}
}

func TestHandleErrorHidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleError(c, errors.New("dial tcp 10.0.0.1:3306: connection refused"))

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", resp.Message)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/", nil)
	HandleError(c, fmt.Errorf("%w: study plan abc has been superseded", ErrConflict))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, resp.Message, "superseded")
}

func TestParseIndex(t *testing.T) {
	n, err := ParseIndex("dayIndex", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, s := range []string{"-1", "x", ""} {
		_, err := ParseIndex("dayIndex", s)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
