// Package maps renders the head office map, falling back to a static card
// when the embed cannot be configured.
package maps

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/internal/ui"
)

var (
	ErrMissingAPIKey = errors.New("maps api key is not configured")
	ErrInvalidCenter = errors.New("map center is out of range")
	ErrInvalidZoom   = errors.New("map zoom is out of range")
)

type LatLng struct {
	Lat float64
	Lng float64
}

// Widget describes one map embed. Zoom 0 is the whole world; the site
// default comes from MAPS_ZOOM.
type Widget struct {
	Center      LatLng
	Zoom        int
	MarkerLabel string
	Address     string
	APIKey      string
}

// Init checks the widget can be embedded.
func (w Widget) Init() error {
	if w.APIKey == "" {
		return ErrMissingAPIKey
	}
	if w.Center.Lat < -90 || w.Center.Lat > 90 || w.Center.Lng < -180 || w.Center.Lng > 180 {
		return fmt.Errorf("%w: %v,%v", ErrInvalidCenter, w.Center.Lat, w.Center.Lng)
	}
	if w.Zoom < 0 || w.Zoom > 21 {
		return fmt.Errorf("%w: %d", ErrInvalidZoom, w.Zoom)
	}
	return nil
}

// EmbedURL is the Maps Embed API place URL for the widget.
func (w Widget) EmbedURL() string {
	q := url.Values{}
	q.Set("key", w.APIKey)
	q.Set("q", strconv.FormatFloat(w.Center.Lat, 'f', -1, 64)+","+strconv.FormatFloat(w.Center.Lng, 'f', -1, 64))
	q.Set("zoom", strconv.Itoa(w.Zoom))
	return "https://www.google.com/maps/embed/v1/place?" + q.Encode()
}

// Render returns the interactive embed, or the static fallback when Init
// fails. The fallback is final for this render; nothing retries.
func (w Widget) Render() g.Node {
	if err := w.Init(); err != nil {
		return Fallback(w.Address)
	}
	// The place embed has no marker label parameter, so the label is drawn
	// over the map.
	return Div(
		Class("relative w-full h-full"),
		g.El("iframe",
			Src(w.EmbedURL()),
			g.Attr("title", w.MarkerLabel),
			g.Attr("loading", "lazy"),
			g.Attr("referrerpolicy", "no-referrer-when-downgrade"),
			g.Attr("allowfullscreen", ""),
			Class("w-full h-full border-0"),
		),
		g.If(w.MarkerLabel != "",
			Span(
				Class("absolute left-3 top-3 badge badge-primary gap-1 shadow"),
				g.Attr("data-map-label", ""),
				ui.Icon("lucide--map-pin size-3", ""),
				g.Text(w.MarkerLabel),
			),
		),
	)
}

// Fallback is the card shown instead of a map.
func Fallback(address string) g.Node {
	if address == "" {
		address = "New Delhi, India"
	}
	return Div(
		Class("w-full h-full bg-gray-100 flex flex-col items-center justify-center"),
		g.Attr("data-map-fallback", ""),
		Div(Class("text-blue-600 mb-3"), ui.Icon("lucide--map-pin size-10", "")),
		P(Class("text-gray-600 font-medium text-xl"), g.Text(address)),
		P(Class("text-gray-400 text-sm mt-2"), g.Text("Map visualization unavailable")),
	)
}
