package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body string, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewCustomValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWriteError_MapsCoreErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", errs.NewObjectNotFoundError("parcelID", "x"), http.StatusNotFound},
		{"unauthorized", errs.NewUnauthorizedError("not the sender"), http.StatusForbidden},
		{"precondition failed", errs.NewPreconditionFailedError("already accepted"), http.StatusConflict},
		{"value required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"value invalid", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"value out of range", errs.NewValueIsOutOfRangeError("weight", -1, 0, 100), http.StatusBadRequest},
		{"unclassified", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newTestContext(http.MethodGet, "/", "", nil)

			require.NoError(t, writeError(ctx, tt.err))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestWriteError_InsufficientBalance_CarriesAmounts(t *testing.T) {
	ctx, rec := newTestContext(http.MethodGet, "/", "", nil)

	err := writeError(ctx, errs.NewInsufficientBalanceError(216.00, 50.00))

	require.NoError(t, err)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), `"required":216`)
	assert.Contains(t, rec.Body.String(), `"current":50`)
}

func TestWriteError_UnclassifiedError_HidesDetails(t *testing.T) {
	ctx, rec := newTestContext(http.MethodGet, "/", "", nil)

	require.NoError(t, writeError(ctx, errors.New("pq: password authentication failed")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestIdentity(t *testing.T) {
	t.Run("missing header is unauthorized", func(t *testing.T) {
		ctx, _ := newTestContext(http.MethodGet, "/", "", nil)

		_, err := identity(ctx, HeaderSenderID)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("malformed header is unauthorized", func(t *testing.T) {
		ctx, _ := newTestContext(http.MethodGet, "/", "",
			map[string]string{HeaderSenderID: "not-a-uuid"})

		_, err := identity(ctx, HeaderSenderID)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("valid header yields the caller ID", func(t *testing.T) {
		want := kernel.NewUUID()
		ctx, _ := newTestContext(http.MethodGet, "/", "",
			map[string]string{HeaderSenderID: want.String()})

		got, err := identity(ctx, HeaderSenderID)
		require.NoError(t, err)
		assert.True(t, got.IsEqual(want))
	})
}

func TestCreateParcel_MissingSenderHeader_ReturnsForbidden(t *testing.T) {
	server := &Server{}
	ctx, rec := newTestContext(http.MethodPost, "/api/v1/parcels", `{}`, nil)

	require.NoError(t, server.CreateParcel(ctx))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateParcel_InvalidPayload_ReturnsBadRequest(t *testing.T) {
	server := &Server{}
	ctx, rec := newTestContext(http.MethodPost, "/api/v1/parcels",
		`{"receiver_name": "Somsak"}`,
		map[string]string{HeaderSenderID: kernel.NewUUID().String()})

	require.NoError(t, server.CreateParcel(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateParcelStatus_WithoutStop_RequiresEventFields(t *testing.T) {
	server := &Server{}
	ctx, rec := newTestContext(http.MethodPost, "/api/v1/parcels/x/status",
		`{"description": "on the way"}`,
		map[string]string{HeaderCarrierID: kernel.NewUUID().String()})
	ctx.SetParamNames("parcelID")
	ctx.SetParamValues(kernel.NewUUID().String())

	require.NoError(t, server.UpdateParcelStatus(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrackParcel_MalformedTrackingNumber_ReturnsBadRequest(t *testing.T) {
	server := &Server{}
	ctx, rec := newTestContext(http.MethodGet, "/api/v1/tracking/x", "", nil)
	ctx.SetParamNames("trackingNumber")
	ctx.SetParamValues("not-a-tracking-number")

	require.NoError(t, server.TrackParcel(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
