package passenger_ticket_controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namankalra/TicketReservation/utils/passenger_token"
)

// Bad tokens must be rejected with a generic message before any store
// access, so these tests run without a database.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewPassengerTicketController(nil)
	r.GET("/view_ticket/:token", controller.ViewTicket)
	r.PUT("/cancel_ticket/:token", controller.CancelTicket)
	return r
}

func TestViewTicket_MalformedToken(t *testing.T) {
	t.Setenv("PASSENGER_TICKET_SECRET", "test-secret-key")
	r := newTestRouter()

	req, _ := http.NewRequest(http.MethodGet, "/view_ticket/not-a-token", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unable to fetch token data")
}

func TestViewTicket_TamperedToken(t *testing.T) {
	t.Setenv("PASSENGER_TICKET_SECRET", "test-secret-key")
	r := newTestRouter()

	token, err := passenger_token.Issue("TID-view-tampered")
	require.NoError(t, err)
	suffix := "xx"
	if strings.HasSuffix(token, suffix) {
		suffix = "yy"
	}
	tampered := token[:len(token)-2] + suffix

	req, _ := http.NewRequest(http.MethodGet, "/view_ticket/"+tampered, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unable to fetch token data")
}

func TestCancelTicket_MalformedToken(t *testing.T) {
	t.Setenv("PASSENGER_TICKET_SECRET", "test-secret-key")
	r := newTestRouter()

	req, _ := http.NewRequest(http.MethodPut, "/cancel_ticket/garbage", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unable to fetch token data")
}

func TestCancelTicket_TokenSignedWithOtherSecret(t *testing.T) {
	t.Setenv("PASSENGER_TICKET_SECRET", "secret-one")
	token, err := passenger_token.Issue("TID-foreign")
	require.NoError(t, err)

	t.Setenv("PASSENGER_TICKET_SECRET", "secret-two")
	r := newTestRouter()

	req, _ := http.NewRequest(http.MethodPut, "/cancel_ticket/"+token, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unable to fetch token data")
}
