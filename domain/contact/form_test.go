package contact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogetwell/website/domain/notify"
)

func filledForm() FormState {
	return FormState{Fields: Fields{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Subject:  "Demo",
		Message:  "Hello",
	}}
}

func TestFormSuccessfulSubmission(t *testing.T) {
	f := filledForm()

	fields, err := f.Begin()
	require.NoError(t, err)
	assert.True(t, f.Submitting)
	assert.Equal(t, "Asha Rao", fields.FullName)

	toast := f.Complete(nil)
	assert.False(t, f.Submitting)
	assert.True(t, f.Submitted)
	assert.Equal(t, Fields{}, f.Fields)
	assert.Equal(t, notify.Success("Success", "Successfully submitted"), toast)
}

func TestFormFailedSubmissionKeepsFields(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantTitle string
		wantBody  string
	}{
		{"with detail", &SubmitError{Detail: "Mailbox full"}, "Mailbox full", "Mailbox full"},
		{"without detail", errors.New("boom"), "Error submitting form", "Please try again later."},
		{"empty detail", &SubmitError{}, "Error submitting form", "Please try again later."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := filledForm()
			_, err := f.Begin()
			require.NoError(t, err)

			toast := f.Complete(tt.err)
			assert.False(t, f.Submitting)
			assert.False(t, f.Submitted)
			assert.Equal(t, filledForm().Fields, f.Fields)
			assert.Equal(t, notify.SeverityDanger, toast.Severity)
			assert.Equal(t, tt.wantTitle, toast.Title)
			assert.Equal(t, tt.wantBody, toast.Message)
		})
	}
}

func TestFormRejectsSecondSubmitWhileInFlight(t *testing.T) {
	f := filledForm()
	_, err := f.Begin()
	require.NoError(t, err)

	_, err = f.Begin()
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.True(t, f.Submitting)
}

func TestFormRejectsSubmitWhileConfirmationShown(t *testing.T) {
	f := filledForm()
	_, err := f.Begin()
	require.NoError(t, err)
	f.Complete(nil)

	f.Fields = filledForm().Fields
	_, err = f.Begin()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.False(t, f.Submitting)
	assert.True(t, f.Submitted)

	f.Reset()
	f.Fields = filledForm().Fields
	_, err = f.Begin()
	assert.NoError(t, err)
}

func TestFormBeginValidates(t *testing.T) {
	f := FormState{Fields: Fields{Email: "asha@example.com", Subject: "only subject"}}

	_, err := f.Begin()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{FieldFullName, FieldMessage}, verr.Missing)
	assert.False(t, f.Submitting)
}

func TestFormReset(t *testing.T) {
	f := filledForm()
	_, err := f.Begin()
	require.NoError(t, err)
	f.Complete(nil)

	f.Reset()
	assert.False(t, f.Submitted)
	assert.Equal(t, Fields{}, f.Fields)
}

func TestFormSet(t *testing.T) {
	var f FormState
	require.NoError(t, f.Set(FieldFullName, "A"))
	require.NoError(t, f.Set("name", "B"))
	require.NoError(t, f.Set(FieldEmail, "e"))
	require.NoError(t, f.Set(FieldSubject, "s"))
	require.NoError(t, f.Set(FieldMessage, "m"))
	assert.Equal(t, Fields{FullName: "B", Email: "e", Subject: "s", Message: "m"}, f.Fields)

	assert.ErrorIs(t, f.Set("phone", "1"), ErrUnknownField)
}

func TestFieldsValidate(t *testing.T) {
	tests := []struct {
		name        string
		fields      Fields
		wantMissing []string
		wantInvalid []string
	}{
		{
			name:   "subject is optional",
			fields: Fields{FullName: "A", Email: "a@example.com", Message: "m"},
		},
		{
			name:        "whitespace counts as missing",
			fields:      Fields{FullName: "  ", Email: "a@example.com", Message: "\n"},
			wantMissing: []string{FieldFullName, FieldMessage},
		},
		{
			name:        "malformed email",
			fields:      Fields{FullName: "A", Email: "not-an-email", Message: "m"},
			wantInvalid: []string{FieldEmail},
		},
		{
			name:        "display name form is not an address",
			fields:      Fields{FullName: "A", Email: "A <a@example.com>", Message: "m"},
			wantInvalid: []string{FieldEmail},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fields.Validate()
			if tt.wantMissing == nil && tt.wantInvalid == nil {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMissing, verr.Missing)
			for _, name := range tt.wantInvalid {
				assert.Contains(t, verr.Invalid, name)
			}
		})
	}
}
