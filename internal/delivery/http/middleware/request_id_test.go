package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "mangahub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when absent", incoming: ""},
		{name: "client id reused", incoming: "client-abc-123", keep: true},
		{name: "spaces rejected", incoming: "has space"},
		{name: "control characters rejected", incoming: "bad\x01id"},
		{name: "oversized rejected", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/mangas", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var fromCtx string
			var hasLogger bool
			next := func(c echo.Context) error {
				fromCtx = deliverycontext.RequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.LoggerOr(c.Request().Context(), nil) != nil

				return c.NoContent(http.StatusOK)
			}

			require.NoError(t, NewRequestIDMiddleware(newDiscardLogger()).Process(next)(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.Equal(t, got, fromCtx)
			assert.Equal(t, got, deliverycontext.RequestID(c))
			assert.True(t, hasLogger)
		})
	}
}
