package faq

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogetwell/website/internal/ui"
)

func TestView_List(t *testing.T) {
	entries, err := LoadEntries()
	require.NoError(t, err)

	acc := NewAccordion(len(entries))
	require.NoError(t, acc.Toggle(3))

	v := View{
		Entries:    entries,
		Accordion:  acc,
		ToggleHref: func(i int) string { return "/?faq=" + strconv.Itoa(i) + "#faq" },
	}
	html, err := ui.String(v.List())
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(html, `aria-expanded="true"`))
	assert.Equal(t, 10, strings.Count(html, `aria-expanded="false"`))
	assert.Contains(t, html, `aria-controls="faq-answer-3"`)
	assert.Contains(t, html, `data-live-index="3"`)
	assert.Equal(t, 10, strings.Count(html, `hidden=""`))
}

func TestView_ListNoMatches(t *testing.T) {
	entries, err := LoadEntries()
	require.NoError(t, err)

	v := View{
		Entries:    entries,
		Accordion:  NewAccordion(len(entries)),
		Query:      "zzzz-no-such-thing",
		ToggleHref: func(int) string { return "#" },
	}
	html, err := ui.String(v.List())
	require.NoError(t, err)

	assert.Contains(t, html, "No questions match your search.")
}
