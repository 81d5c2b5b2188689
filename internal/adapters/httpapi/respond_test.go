package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelopeBody struct {
	Message string          `json:"message"`
	Errors  []FieldError    `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelopeBody {
	t.Helper()
	var body envelopeBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a valid envelope: %v", err)
	}
	return body
}

func TestRespondOKDefaults(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	respondOK(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if body.Message != "OK" {
		t.Fatalf("expected message OK, got %q", body.Message)
	}
	if body.Errors == nil || len(body.Errors) != 0 {
		t.Fatalf("expected empty errors array, got %v", body.Errors)
	}
	if string(body.Data) != "{}" {
		t.Fatalf("expected empty data object, got %s", body.Data)
	}
}

func TestRespondOKWithDataCarriesPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	respondOKWithData(c, gin.H{"id": "42"})

	body := decodeEnvelope(t, rec)
	var data map[string]string
	if err := json.Unmarshal(body.Data, &data); err != nil {
		t.Fatalf("data is not an object: %v", err)
	}
	if data["id"] != "42" {
		t.Fatalf("payload lost: %v", data)
	}
}

func TestRespondFixedStatusMessages(t *testing.T) {
	cases := []struct {
		name    string
		fn      func(*gin.Context)
		status  int
		message string
	}{
		{"not found", respondNotFound, http.StatusNotFound, "Not Found"},
		{"unauthorized", respondUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden", respondForbidden, http.StatusForbidden, "Forbidden"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		tc.fn(c)

		if rec.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.status, rec.Code)
		}
		body := decodeEnvelope(t, rec)
		if body.Message != tc.message {
			t.Fatalf("%s: expected message %q, got %q", tc.name, tc.message, body.Message)
		}
		if string(body.Data) != "{}" {
			t.Fatalf("%s: expected empty data, got %s", tc.name, body.Data)
		}
	}
}

func TestRespondValidationFailedKeepsFieldOrder(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	respondValidationFailed(c, []FieldError{
		{Field: "title", Message: "The title field is required."},
		{Field: "content", Message: "The content field is required."},
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if len(body.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(body.Errors))
	}
	if body.Errors[0].Field != "title" || body.Errors[1].Field != "content" {
		t.Fatalf("error order not preserved: %v", body.Errors)
	}
}
