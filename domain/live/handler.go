package live

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/gogetwell/website/domain/contact"
	"github.com/gogetwell/website/domain/page"
	"github.com/gogetwell/website/internal/config"
	"github.com/gogetwell/website/pkg/logger"
)

// Handler upgrades GET /live and runs one Session per socket.
type Handler struct {
	site     *page.Site
	submit   SubmitFunc
	cfg      config.LiveConfig
	upgrader websocket.Upgrader
	log      *slog.Logger

	base     context.Context
	shutdown context.CancelFunc
	wg       sync.WaitGroup
}

func NewHandler(site *page.Site, svc *contact.Service, cfg *config.Config, log *slog.Logger) *Handler {
	return newHandler(site, svc.Submit, cfg.Live, log)
}

func newHandler(site *page.Site, submit SubmitFunc, cfg config.LiveConfig, log *slog.Logger) *Handler {
	base, cancel := context.WithCancel(context.Background())
	return &Handler{
		site:   site,
		submit: submit,
		cfg:    cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		log:      log.With(logger.Scope("live")),
		base:     base,
		shutdown: cancel,
	}
}

// Serve handles GET /live. The query string carries the view state the
// page was rendered with.
func (h *Handler) Serve(c echo.Context) error {
	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.log.Debug("websocket upgrade failed", logger.Error(err))
		return nil
	}
	defer ws.Close()

	h.wg.Add(1)
	defer h.wg.Done()

	ws.SetReadLimit(h.cfg.MaxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
	})

	ctx, cancel := context.WithCancel(h.base)
	defer cancel()
	go h.ping(ctx, ws)

	p := h.site.NewPage(page.ParseViewState(c.QueryParams()))
	sess := NewSession(&deadlineConn{Conn: ws, readTimeout: h.cfg.ReadTimeout, writeTimeout: h.cfg.WriteTimeout}, p, h.submit, c.RealIP(), h.log)

	activeSessions.Inc()
	defer activeSessions.Dec()
	sess.log.Debug("live session started")

	err = sess.Run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		_ = ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
	case websocket.IsUnexpectedCloseError(err,
		websocket.CloseGoingAway,
		websocket.CloseNormalClosure,
		websocket.CloseNoStatusReceived):
		sess.log.Warn("live session ended", logger.Error(err))
	}
	sess.log.Debug("live session closed")
	return nil
}

func (h *Handler) ping(ctx context.Context, ws *websocket.Conn) {
	ticker := time.NewTicker(h.cfg.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(h.cfg.WriteTimeout)); err != nil {
				return
			}
		}
	}
}

// Shutdown ends every session and waits for them to close.
func (h *Handler) Shutdown(ctx context.Context) error {
	h.shutdown()
	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// deadlineConn refreshes deadlines around each message.
type deadlineConn struct {
	*websocket.Conn
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func (c *deadlineConn) ReadJSON(v any) error {
	if err := c.Conn.ReadJSON(v); err != nil {
		return err
	}
	return c.Conn.SetReadDeadline(time.Now().Add(c.readTimeout))
}

func (c *deadlineConn) WriteJSON(v any) error {
	if err := c.Conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
		return err
	}
	return c.Conn.WriteJSON(v)
}

var _ Conn = (*deadlineConn)(nil)
