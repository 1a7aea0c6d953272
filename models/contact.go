package models

// ContactSubmission is the transient payload of a contact-form request. It is
// constructed from the request body, validated, and discarded after dispatch.
type ContactSubmission struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	CaseType string `json:"caseType"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Lang     string `json:"lang"`
}

// OutboundEmail is the write-once message derived from a validated submission.
// It is handed to the mail relay and never persisted.
type OutboundEmail struct {
	From    string
	To      string
	Subject string
	HTML    string
}
