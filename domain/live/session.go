package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	g "maragu.dev/gomponents"

	"github.com/gogetwell/website/domain/contact"
	"github.com/gogetwell/website/domain/faq"
	"github.com/gogetwell/website/domain/features"
	"github.com/gogetwell/website/domain/hero"
	"github.com/gogetwell/website/domain/page"
	"github.com/gogetwell/website/internal/ui"
	"github.com/gogetwell/website/pkg/logger"
)

// Conn is the part of *websocket.Conn a session uses.
type Conn interface {
	ReadJSON(v any) error
	WriteJSON(v any) error
	Close() error
}

// SubmitFunc delivers a contact submission for a client.
type SubmitFunc func(ctx context.Context, clientKey string, fields contact.Fields) (contact.Receipt, error)

// Session is one mounted page. All page state is owned by the goroutine
// running Run.
type Session struct {
	ID        uuid.UUID
	conn      Conn
	page      *page.Page
	submit    SubmitFunc
	clientKey string
	log       *slog.Logger

	watcher page.ScrollWatcher
	chrome  liveChrome
	task    *contact.Task
}

func NewSession(conn Conn, p *page.Page, submit SubmitFunc, clientKey string, log *slog.Logger) *Session {
	id := uuid.New()
	return &Session{
		ID:        id,
		conn:      conn,
		page:      p,
		submit:    submit,
		clientKey: clientKey,
		log:       log.With(logger.Scope("live.session"), slog.String("session_id", id.String())),
	}
}

type inbound struct {
	event Event
	err   error
}

// Run processes events until the connection ends or ctx is cancelled. On
// return the scroll watcher is detached and any submission still in flight
// is cancelled; its result is discarded.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.watcher.Attach(&s.chrome)
	defer s.watcher.Detach()

	events := make(chan inbound)
	readErr := make(chan error, 1)
	go s.readLoop(ctx, events, readErr)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-readErr:
			return err

		case in := <-events:
			var patches []Patch
			if in.err != nil {
				patches = []Patch{ErrorPatch("malformed event")}
			} else {
				patches = s.Handle(ctx, in.event)
			}
			if err := s.send(patches); err != nil {
				return err
			}

		case res := <-s.taskDone():
			if err := s.send(s.complete(res)); err != nil {
				return err
			}
		}
	}
}

// readLoop forwards decoded events to the loop. A JSON decode error only
// rejects that message; any other read error ends the session.
func (s *Session) readLoop(ctx context.Context, events chan<- inbound, readErr chan<- error) {
	for {
		var ev Event
		err := s.conn.ReadJSON(&ev)

		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if err != nil && !errors.As(err, &syntaxErr) && !errors.As(err, &typeErr) {
			readErr <- err
			return
		}

		select {
		case events <- inbound{event: ev, err: err}:
		case <-ctx.Done():
			return
		}
	}
}

func (s *Session) taskDone() <-chan contact.Result {
	if s.task == nil {
		return nil
	}
	return s.task.Done()
}

func (s *Session) send(patches []Patch) error {
	if len(patches) == 0 {
		return nil
	}
	if err := s.conn.WriteJSON(Message{Patches: patches}); err != nil {
		return fmt.Errorf("write patches: %w", err)
	}
	return nil
}

// Handle applies one event to the page and returns the resulting patches.
func (s *Session) Handle(ctx context.Context, ev Event) []Patch {
	eventsTotal.WithLabelValues(metricType(ev.Type)).Inc()
	p := s.page

	switch ev.Type {
	case EventScroll:
		s.watcher.Observe(ev.Offset)
		return s.chrome.drain()

	case EventNavigate:
		id, err := page.ParseSection(ev.Data["section"])
		if err != nil {
			return []Patch{ErrorPatch(err.Error())}
		}
		return []Patch{ScrollPatch(page.ScrollToSection(id))}

	case EventFilter:
		cat, err := features.ParseCategory(ev.Data["value"])
		if err != nil {
			cat = features.All
		}
		p.Filter = cat
		return s.render(features.GridID, p.Features().Grid())

	case EventFAQ:
		i, err := strconv.Atoi(ev.Data["index"])
		if err != nil {
			return []Patch{ErrorPatch("invalid faq index")}
		}
		if err := p.Accordion.Toggle(i); err != nil {
			return []Patch{ErrorPatch(err.Error())}
		}
		return s.render(faq.ListID, p.FAQ().List())

	case EventFAQSearch:
		p.Query = ev.Data["query"]
		return s.render(faq.ListID, p.FAQ().List())

	case EventVideoOpen:
		p.Modal.OpenModal()
		return s.render(hero.ModalID, p.Hero().ModalNode())

	case EventVideoPlay:
		if !p.Modal.Play() {
			return nil
		}
		return s.render(hero.ModalID, p.Hero().ModalNode())

	case EventVideoClose:
		p.Modal.Close()
		return s.render(hero.ModalID, p.Hero().ModalNode())

	case EventCTA:
		// Get Started has no destination yet.
		return nil

	case EventContactInput:
		if err := p.Form.Set(ev.Data["name"], ev.Data["value"]); err != nil {
			return []Patch{ErrorPatch(err.Error())}
		}
		return nil

	case EventContactSubmit:
		return s.beginSubmit(ctx, ev)

	case EventContactReset:
		p.Form.Reset()
		return s.render(contact.PanelID, p.Contact().Panel())
	}

	return []Patch{ErrorPatch(fmt.Sprintf("unknown event %q", ev.Type))}
}

func (s *Session) beginSubmit(ctx context.Context, ev Event) []Patch {
	p := s.page
	if ev.Fields != nil && !p.Form.Submitting && !p.Form.Submitted {
		p.Form.Fields = *ev.Fields
	}

	fields, err := p.Form.Begin()
	switch {
	case errors.Is(err, contact.ErrSubmissionInFlight), errors.Is(err, contact.ErrAlreadySubmitted):
		return nil
	case err != nil:
		return []Patch{ToastPatch(contact.ValidationToast())}
	}

	s.task = contact.Start(ctx, func(ctx context.Context) (contact.Receipt, error) {
		return s.submit(ctx, s.clientKey, fields)
	})
	return s.render(contact.PanelID, p.Contact().Panel())
}

func (s *Session) complete(res contact.Result) []Patch {
	s.task = nil
	toast := s.page.Form.Complete(res.Err)
	if res.Err != nil {
		s.log.Debug("contact submission failed", logger.Error(res.Err))
	}
	patches := s.render(contact.PanelID, s.page.Contact().Panel())
	return append(patches, ToastPatch(toast))
}

func (s *Session) render(target string, node g.Node) []Patch {
	html, err := ui.String(node)
	if err != nil {
		s.log.Error("render fragment failed", slog.String("target", target), logger.Error(err))
		return []Patch{ErrorPatch("render failed")}
	}
	return []Patch{HTMLPatch(target, html)}
}

func metricType(t string) string {
	switch t {
	case EventScroll, EventNavigate, EventFilter, EventFAQ, EventFAQSearch,
		EventVideoOpen, EventVideoClose, EventVideoPlay, EventCTA,
		EventContactInput, EventContactSubmit, EventContactReset:
		return t
	}
	return "unknown"
}
