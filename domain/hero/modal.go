// Package hero is the above-the-fold banner with its demo video modal.
package hero

// VideoModal is the demo video dialog. Playing implies Open. Autoplay is
// only set by Play, so a player restored from a URL waits for the visitor.
type VideoModal struct {
	Open     bool
	Playing  bool
	Autoplay bool
}

// OpenModal shows the dialog with the thumbnail. Playback is left untouched,
// so a fresh open always starts on the thumbnail.
func (m *VideoModal) OpenModal() {
	m.Open = true
}

// Play swaps the thumbnail for the embedded player. It has no effect while
// the dialog is closed.
func (m *VideoModal) Play() bool {
	if !m.Open {
		return false
	}
	m.Playing = true
	m.Autoplay = true
	return true
}

// Close hides the dialog and stops playback.
func (m *VideoModal) Close() {
	*m = VideoModal{}
}

// VideoParam is the query value encoding of the modal for no-script links.
func (m VideoModal) VideoParam() string {
	switch {
	case m.Playing:
		return "play"
	case m.Open:
		return "open"
	}
	return ""
}

// ParseVideoParam is the inverse of VideoParam. Unknown values mean closed.
func ParseVideoParam(s string) VideoModal {
	switch s {
	case "play":
		return VideoModal{Open: true, Playing: true}
	case "open":
		return VideoModal{Open: true}
	}
	return VideoModal{}
}
