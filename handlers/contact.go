package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"law_office_site_go/models"
	"law_office_site_go/services"
)

// Contact handles the contact-form API
type Contact struct {
	mailer *services.Mailer
}

func NewContact(mailer *services.Mailer) *Contact {
	return &Contact{mailer: mailer}
}

type contactResponse struct {
	OK     bool     `json:"ok"`
	Error  string   `json:"error,omitempty"`
	Fields []string `json:"fields,omitempty"`
}

// Submit validates a contact submission and relays it by email. The response
// is sent only after the relay confirms or fails; there is no retry.
func (h *Contact) Submit(c echo.Context) error {
	var sub models.ContactSubmission
	if err := c.Bind(&sub); err != nil {
		return c.JSON(http.StatusBadRequest, contactResponse{OK: false, Error: "Invalid request body"})
	}

	sub, err := services.ValidateContact(sub)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, contactResponse{OK: false, Error: verr.Error(), Fields: verr.Fields})
		}
		return c.JSON(http.StatusBadRequest, contactResponse{OK: false, Error: "Invalid submission"})
	}

	if err := h.mailer.Dispatch(sub); err != nil {
		if errors.Is(err, services.ErrMailNotConfigured) {
			c.Logger().Error("Contact send path disabled: email relay not configured")
			return c.JSON(http.StatusServiceUnavailable, contactResponse{OK: false, Error: "Email not configured"})
		}
		// Transport details were already logged by the mailer
		return c.JSON(http.StatusInternalServerError, contactResponse{OK: false, Error: "Failed to send message"})
	}

	return c.JSON(http.StatusOK, contactResponse{OK: true})
}
