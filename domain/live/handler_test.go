package live

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogetwell/website/domain/faq"
	"github.com/gogetwell/website/internal/config"
)

func TestHandlerServesLiveSession(t *testing.T) {
	h := newHandler(testSite(t), accept, config.LiveConfig{
		ReadTimeout:    5 * time.Second,
		PingInterval:   time.Second,
		WriteTimeout:   time.Second,
		MaxMessageSize: 16384,
	}, discard())

	e := echo.New()
	RegisterRoutes(e, h)
	srv := httptest.NewServer(e)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/live?faq=none&q=website"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, ws.WriteJSON(Event{Type: EventFAQ, Data: map[string]string{"index": "0"}}))

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, ws.ReadJSON(&msg))
	require.Len(t, msg.Patches, 1)
	assert.Equal(t, faq.ListID, msg.Patches[0].Target)
	// The session started from the query string: collapsed, filtered by
	// the search, and the toggle opened entry 0.
	assert.Contains(t, msg.Patches[0].HTML, `aria-expanded="true"`)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, h.Shutdown(ctx))

	_, _, err = ws.ReadMessage()
	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, websocket.CloseGoingAway, closeErr.Code)
}
