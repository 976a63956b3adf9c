package page

// The profile widget is rendered by the product shell, not by this page.
// Only its class is ours to flip.
const (
	ProfileSelector = ".hcf-profile"
	ProfileFixed    = "hcf-profile-fixed"
)

// ChromeController pins or releases the externally owned profile widget.
type ChromeController interface {
	SetFixed(fixed bool)
}

// ScrollWatcher turns scroll offsets into chrome updates: scrolling down
// pins the profile widget, scrolling up releases it.
type ScrollWatcher struct {
	chrome ChromeController
	last   int
}

// Attach starts forwarding to chrome. The first offset observed is compared
// against 0.
func (w *ScrollWatcher) Attach(chrome ChromeController) {
	w.chrome = chrome
	w.last = 0
}

// Observe handles one scroll event. Equal offsets change nothing.
func (w *ScrollWatcher) Observe(offset int) {
	if w.chrome == nil {
		return
	}
	switch {
	case offset > w.last:
		w.chrome.SetFixed(true)
	case offset < w.last:
		w.chrome.SetFixed(false)
	}
	w.last = offset
}

// Detach stops forwarding. Later Observe calls are no-ops.
func (w *ScrollWatcher) Detach() {
	w.chrome = nil
}

func (w *ScrollWatcher) Attached() bool {
	return w.chrome != nil
}
