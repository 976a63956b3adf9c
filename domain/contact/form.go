// Package contact is the contact form: its per-visitor state machine, the
// submission pipeline behind it, and the section view.
package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/gogetwell/website/domain/notify"
)

// Field names as used by the HTML form and live input events.
const (
	FieldFullName = "fullname"
	FieldEmail    = "email"
	FieldSubject  = "subject"
	FieldMessage  = "message"
)

const (
	maxNameLen    = 200
	maxSubjectLen = 200
	maxMessageLen = 5000
)

var (
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrAlreadySubmitted   = errors.New("the form was already submitted")
	ErrUnknownField       = errors.New("unknown contact field")
)

// Fields is the visitor's input. Subject is optional.
type Fields struct {
	FullName string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// Trimmed returns a copy with surrounding whitespace removed.
func (f Fields) Trimmed() Fields {
	return Fields{
		FullName: strings.TrimSpace(f.FullName),
		Email:    strings.TrimSpace(f.Email),
		Subject:  strings.TrimSpace(f.Subject),
		Message:  strings.TrimSpace(f.Message),
	}
}

// ValidationError lists the offending fields. The browser's own required
// checks normally stop these before they reach the server.
type ValidationError struct {
	Missing []string
	Invalid map[string]string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	for _, name := range []string{FieldFullName, FieldEmail, FieldSubject, FieldMessage} {
		if msg, ok := e.Invalid[name]; ok {
			parts = append(parts, name+": "+msg)
		}
	}
	return "invalid contact form: " + strings.Join(parts, "; ")
}

// Validate checks required fields, the email address and length limits.
func (f Fields) Validate() error {
	f = f.Trimmed()
	verr := &ValidationError{Invalid: map[string]string{}}

	if f.FullName == "" {
		verr.Missing = append(verr.Missing, FieldFullName)
	}
	if f.Email == "" {
		verr.Missing = append(verr.Missing, FieldEmail)
	}
	if f.Message == "" {
		verr.Missing = append(verr.Missing, FieldMessage)
	}

	if f.Email != "" {
		if addr, err := mail.ParseAddress(f.Email); err != nil || addr.Address != f.Email {
			verr.Invalid[FieldEmail] = "not a valid email address"
		}
	}
	if len(f.FullName) > maxNameLen {
		verr.Invalid[FieldFullName] = fmt.Sprintf("must be at most %d characters", maxNameLen)
	}
	if len(f.Subject) > maxSubjectLen {
		verr.Invalid[FieldSubject] = fmt.Sprintf("must be at most %d characters", maxSubjectLen)
	}
	if len(f.Message) > maxMessageLen {
		verr.Invalid[FieldMessage] = fmt.Sprintf("must be at most %d characters", maxMessageLen)
	}

	if len(verr.Missing) == 0 && len(verr.Invalid) == 0 {
		return nil
	}
	return verr
}

// FormState is the per-mount contact form state.
//
// Idle -> Submitting (Begin) -> Idle with a failure toast, or Submitted
// (Complete). Submitted -> Idle (Reset).
type FormState struct {
	Fields     Fields
	Submitting bool
	Submitted  bool
}

// Set updates one field from a keystroke.
func (f *FormState) Set(name, value string) error {
	switch name {
	case FieldFullName, "name":
		f.Fields.FullName = value
	case FieldEmail:
		f.Fields.Email = value
	case FieldSubject:
		f.Fields.Subject = value
	case FieldMessage:
		f.Fields.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Begin moves the form into Submitting and returns the trimmed fields to
// send. It refuses while another submission is outstanding and while the
// confirmation is shown; Reset re-arms it.
func (f *FormState) Begin() (Fields, error) {
	switch {
	case f.Submitting:
		return Fields{}, ErrSubmissionInFlight
	case f.Submitted:
		return Fields{}, ErrAlreadySubmitted
	}
	fields := f.Fields.Trimmed()
	if err := fields.Validate(); err != nil {
		return Fields{}, err
	}
	f.Submitting = true
	return fields, nil
}

// Complete records the outcome of the submission started by Begin and
// returns the toast to show. Success clears the fields and shows the
// confirmation; failure keeps them for another attempt.
func (f *FormState) Complete(err error) notify.Toast {
	f.Submitting = false
	if err != nil {
		return FailureToast(err)
	}
	f.Fields = Fields{}
	f.Submitted = true
	return SuccessToast()
}

// Reset leaves the confirmation view for an empty form.
func (f *FormState) Reset() {
	f.Submitted = false
	f.Fields = Fields{}
}

const (
	defaultErrorTitle   = "Error submitting form"
	defaultErrorMessage = "Please try again later."
)

func SuccessToast() notify.Toast {
	return notify.Success("Success", "Successfully submitted")
}

// FailureToast uses the failure's human readable detail for both title and
// body when there is one, and generic copy otherwise.
func FailureToast(err error) notify.Toast {
	detail := Detail(err)
	if detail == "" {
		return notify.Danger(defaultErrorTitle, defaultErrorMessage)
	}
	return notify.Danger(detail, detail)
}

// ValidationToast is shown when the server rejects incomplete input the
// browser let through.
func ValidationToast() notify.Toast {
	return notify.Danger(defaultErrorTitle, "Please fill in your name, a valid email address and a message.")
}
