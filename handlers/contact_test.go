package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"law_office_site_go/config"
	"law_office_site_go/services"
)

func newTestMailer(configured bool) *services.Mailer {
	return services.NewMailer(&config.Config{
		EmailTestMode: configured,
		EmailFrom:     "noreply@test.example",
		EmailFromName: "Site",
		ContactEmail:  "office@test.example",
		MailTimeout:   time.Second,
	})
}

func postContact(t *testing.T, h *Contact, payload string) (int, map[string]interface{}) {
	_, c, rec := setupEcho(http.MethodPost, "/api/contact", strings.NewReader(payload))
	assert.NoError(t, h.Submit(c))

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestContactSubmitValid(t *testing.T) {
	h := NewContact(newTestMailer(true))

	code, body := postContact(t, h, `{
		"name": "Dana",
		"phone": "050-1234567",
		"caseType": "Traffic",
		"email": "d@example.com",
		"message": "Hello\nWorld",
		"lang": "he"
	}`)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["ok"])
	assert.NotContains(t, body, "error")
}

func TestContactSubmitValidationErrors(t *testing.T) {
	h := NewContact(newTestMailer(true))

	t.Run("Missing Fields", func(t *testing.T) {
		code, body := postContact(t, h, `{"name": "", "phone": "123", "caseType": "x"}`)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, false, body["ok"])
		assert.Equal(t, []interface{}{"name"}, body["fields"])
	})

	t.Run("Invalid Phone", func(t *testing.T) {
		code, body := postContact(t, h, `{"name": "Dana", "phone": "abc", "caseType": "x"}`)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, false, body["ok"])
		assert.Equal(t, []interface{}{"phone"}, body["fields"])
	})

	t.Run("Name Too Long", func(t *testing.T) {
		longName := strings.Repeat("a", 300)
		code, body := postContact(t, h, `{"name": "`+longName+`", "phone": "123", "caseType": "x"}`)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, false, body["ok"])
		assert.Contains(t, body["error"], "200")
	})

	t.Run("Malformed Body", func(t *testing.T) {
		code, body := postContact(t, h, `{not json`)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, false, body["ok"])
	})
}

func TestContactSubmitNotConfigured(t *testing.T) {
	h := NewContact(newTestMailer(false))

	code, body := postContact(t, h, `{
		"name": "Dana",
		"phone": "050-1234567",
		"caseType": "Traffic",
		"email": "d@example.com",
		"message": "Hello\nWorld",
		"lang": "he"
	}`)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Email not configured", body["error"])
}

func TestContactSubmitValidationBeforeDispatch(t *testing.T) {
	// An invalid submission is rejected as a client error even when the relay
	// is unconfigured: validation always runs first and nothing is sent.
	h := NewContact(newTestMailer(false))

	code, body := postContact(t, h, `{"name": "", "phone": "", "caseType": ""}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["ok"])
}
