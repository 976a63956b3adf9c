package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSection(t *testing.T) {
	for _, id := range Sections {
		got, err := ParseSection(string(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}

	_, err := ParseSection("pricing")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestScrollToSection(t *testing.T) {
	assert.Equal(t, Scroll{Target: "#faq", Behavior: "smooth", Block: "start"}, ScrollToSection(SectionFAQ))
}

type recordingChrome struct {
	calls []bool
}

func (c *recordingChrome) SetFixed(fixed bool) { c.calls = append(c.calls, fixed) }

func TestScrollWatcher(t *testing.T) {
	chrome := &recordingChrome{}
	var w ScrollWatcher
	w.Attach(chrome)

	w.Observe(120) // down from 0
	w.Observe(120) // no movement
	w.Observe(80)  // up
	w.Observe(300) // down

	assert.Equal(t, []bool{true, false, true}, chrome.calls)
}

func TestScrollWatcherFirstEventAtTop(t *testing.T) {
	chrome := &recordingChrome{}
	var w ScrollWatcher
	w.Attach(chrome)

	w.Observe(0)
	assert.Empty(t, chrome.calls)
}

func TestScrollWatcherDetach(t *testing.T) {
	chrome := &recordingChrome{}
	var w ScrollWatcher
	w.Attach(chrome)
	w.Observe(10)
	w.Detach()

	w.Observe(500)
	w.Observe(0)
	assert.Equal(t, []bool{true}, chrome.calls)
	assert.False(t, w.Attached())
}
