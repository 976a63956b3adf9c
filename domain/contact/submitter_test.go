package contact

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogetwell/website/domain/email"
)

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

type fakeSender struct {
	result *email.SendResult
	err    error
	sent   []email.SendOptions
}

func (s *fakeSender) Send(_ context.Context, opts email.SendOptions) (*email.SendResult, error) {
	s.sent = append(s.sent, opts)
	return s.result, s.err
}

func testMessage() Message {
	return NewMessage(Fields{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Subject:  "Demo request",
		Message:  "We run 3 clinics.",
	}, "203.0.113.7")
}

func TestSimulatedSubmitterSucceeds(t *testing.T) {
	msg := testMessage()
	receipt, err := SimulatedSubmitter{Delay: time.Millisecond}.Submit(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, msg.ID, receipt.ID)
}

func TestSimulatedSubmitterHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SimulatedSubmitter{Delay: time.Hour}.Submit(ctx, testMessage())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMailSubmitter(t *testing.T) {
	templates, err := email.NewTemplateService(discard())
	require.NoError(t, err)

	t.Run("delivered", func(t *testing.T) {
		sender := &fakeSender{result: &email.SendResult{Success: true, MessageID: "<abc@mg>"}}
		m := NewMailSubmitter(sender, templates, "hello@gogetwell.ai", "gogetwell.ai", discard())

		msg := testMessage()
		receipt, err := m.Submit(context.Background(), msg)
		require.NoError(t, err)
		assert.Equal(t, msg.ID, receipt.ID)
		assert.Equal(t, "<abc@mg>", receipt.MessageID)

		require.Len(t, sender.sent, 1)
		sent := sender.sent[0]
		assert.Equal(t, "hello@gogetwell.ai", sent.To)
		assert.Equal(t, "asha@example.com", sent.ReplyTo)
		assert.Equal(t, "[gogetwell.ai] Demo request", sent.Subject)
		assert.Contains(t, sent.HTML, "Asha Rao")
		assert.Contains(t, sent.HTML, msg.ID.String())
		assert.Contains(t, sent.Text, "We run 3 clinics.")
	})

	t.Run("rejected maps to SubmitError", func(t *testing.T) {
		sender := &fakeSender{result: &email.SendResult{Success: false, Error: "Recipient rejected"}}
		m := NewMailSubmitter(sender, templates, "hello@gogetwell.ai", "gogetwell.ai", discard())

		_, err := m.Submit(context.Background(), testMessage())
		var serr *SubmitError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "Recipient rejected", serr.Detail)
		assert.Equal(t, "Recipient rejected", Detail(err))
	})

	t.Run("transport error passes through", func(t *testing.T) {
		boom := errors.New("dial tcp: refused")
		sender := &fakeSender{err: boom}
		m := NewMailSubmitter(sender, templates, "hello@gogetwell.ai", "gogetwell.ai", discard())

		_, err := m.Submit(context.Background(), testMessage())
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, Detail(err))
	})
}

type fakeArchive struct {
	records []*Submission
	err     error
}

func (a *fakeArchive) Record(_ context.Context, sub *Submission) error {
	a.records = append(a.records, sub)
	return a.err
}

type stubSubmitter struct {
	receipt Receipt
	err     error
	calls   int
}

func (s *stubSubmitter) Submit(_ context.Context, msg Message) (Receipt, error) {
	s.calls++
	if s.err != nil {
		return Receipt{}, s.err
	}
	r := s.receipt
	r.ID = msg.ID
	return r, nil
}

func TestArchivingSubmitter(t *testing.T) {
	t.Run("records delivered", func(t *testing.T) {
		archive := &fakeArchive{}
		s := &ArchivingSubmitter{Next: &stubSubmitter{receipt: Receipt{MessageID: "m-1"}}, Archive: archive, Log: discard()}

		msg := testMessage()
		_, err := s.Submit(context.Background(), msg)
		require.NoError(t, err)

		require.Len(t, archive.records, 1)
		rec := archive.records[0]
		assert.Equal(t, msg.ID, rec.ID)
		assert.Equal(t, StatusDelivered, rec.Status)
		require.NotNil(t, rec.MessageID)
		assert.Equal(t, "m-1", *rec.MessageID)
		require.NotNil(t, rec.Subject)
		assert.Equal(t, "Demo request", *rec.Subject)
	})

	t.Run("records failure and keeps the error", func(t *testing.T) {
		archive := &fakeArchive{}
		s := &ArchivingSubmitter{Next: &stubSubmitter{err: &SubmitError{Detail: "nope"}}, Archive: archive, Log: discard()}

		_, err := s.Submit(context.Background(), testMessage())
		assert.Equal(t, "nope", Detail(err))
		require.Len(t, archive.records, 1)
		assert.Equal(t, StatusFailed, archive.records[0].Status)
		require.NotNil(t, archive.records[0].LastError)
	})

	t.Run("archive failure does not fail the submission", func(t *testing.T) {
		archive := &fakeArchive{err: errors.New("db down")}
		s := &ArchivingSubmitter{Next: &stubSubmitter{}, Archive: archive, Log: discard()}

		_, err := s.Submit(context.Background(), testMessage())
		assert.NoError(t, err)
	})
}

func TestNewArchiveWithoutDatabase(t *testing.T) {
	archive := NewArchive(nil, discard())
	assert.NoError(t, archive.Record(context.Background(), &Submission{}))
}

func TestTaskDeliversOneResult(t *testing.T) {
	msg := testMessage()
	task := Start(context.Background(), func(ctx context.Context) (Receipt, error) {
		return SimulatedSubmitter{Delay: time.Millisecond}.Submit(ctx, msg)
	})

	select {
	case res := <-task.Done():
		require.NoError(t, res.Err)
		assert.Equal(t, msg.ID, res.Receipt.ID)
	case <-time.After(time.Second):
		t.Fatal("task did not complete")
	}
}

func TestTaskCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	task := Start(ctx, func(ctx context.Context) (Receipt, error) {
		return SimulatedSubmitter{Delay: time.Hour}.Submit(ctx, testMessage())
	})
	cancel()

	select {
	case res := <-task.Done():
		assert.ErrorIs(t, res.Err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("task ignored cancellation")
	}
}
