package ticket_controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Request validation runs before any store access, so these tests cover the
// rejection paths without a database.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewTicketController(nil)
	r.POST("/tickets", controller.BookTicket)
	return r
}

func postTicket(r *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, "/tickets", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"source":          "0b9c7a52-2f67-4a0f-9f2a-1f1f54f9e001",
		"destination":     "0b9c7a52-2f67-4a0f-9f2a-1f1f54f9e002",
		"travel_date":     "2025-01-01",
		"travel_mode":     "Car",
		"passenger_name":  "Asha",
		"passenger_phone": "9876543210",
		"seat_number":     "S1",
	}
}

func TestBookTicket_InvalidPhone(t *testing.T) {
	r := newTestRouter()

	for _, phone := range []string{"12345", "5876543210", "98765432100"} {
		payload := validPayload()
		payload["passenger_phone"] = phone
		w := postTicket(r, payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid passenger mobile no")
	}
}

func TestBookTicket_SameSourceAndDestination(t *testing.T) {
	r := newTestRouter()

	payload := validPayload()
	payload["destination"] = payload["source"]
	w := postTicket(r, payload)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Source & Destination cannot be same")
}

func TestBookTicket_UnknownTravelMode(t *testing.T) {
	r := newTestRouter()

	// Unknown modes are rejected at binding, never priced at zero.
	for _, mode := range []string{"Bus", "car", "Boat", ""} {
		payload := validPayload()
		payload["travel_mode"] = mode
		w := postTicket(r, payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestBookTicket_InvalidTravelDate(t *testing.T) {
	r := newTestRouter()

	payload := validPayload()
	payload["travel_date"] = "01-01-2025"
	w := postTicket(r, payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid travel date")
}

func TestBookTicket_MissingFields(t *testing.T) {
	r := newTestRouter()

	payload := validPayload()
	delete(payload, "seat_number")
	w := postTicket(r, payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
