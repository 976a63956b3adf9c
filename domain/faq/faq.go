// Package faq is the single-expansion question and answer accordion.
package faq

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogetwell/website/internal/content"
)

// None is the open index when every entry is collapsed.
const None = -1

var ErrIndexOutOfRange = errors.New("faq index out of range")

// Entry is one question and its answer.
type Entry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type document struct {
	Entries []Entry `yaml:"faq"`
}

// LoadEntries decodes the embedded FAQ list.
func LoadEntries() ([]Entry, error) {
	var doc document
	if err := content.Decode("faq.yaml", &doc); err != nil {
		return nil, err
	}
	if len(doc.Entries) == 0 {
		return nil, errors.New("faq list is empty")
	}
	for i, e := range doc.Entries {
		if e.Question == "" || e.Answer == "" {
			return nil, fmt.Errorf("faq %d: question and answer are required", i)
		}
	}
	return doc.Entries, nil
}

// Accordion tracks which entry is expanded. At most one is open.
type Accordion struct {
	Open int
	size int
}

// NewAccordion starts with the first entry expanded.
func NewAccordion(size int) *Accordion {
	open := 0
	if size == 0 {
		open = None
	}
	return &Accordion{Open: open, size: size}
}

// Toggle collapses i if it is open, otherwise expands it and collapses
// whatever was open before.
func (a *Accordion) Toggle(i int) error {
	if i < 0 || i >= a.size {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	if a.Open == i {
		a.Open = None
	} else {
		a.Open = i
	}
	return nil
}

func (a *Accordion) IsOpen(i int) bool {
	return a.Open != None && a.Open == i
}

// Set restores a previously serialised open index, e.g. from a query
// parameter. Out of range values collapse everything.
func (a *Accordion) Set(i int) {
	if i < 0 || i >= a.size {
		a.Open = None
		return
	}
	a.Open = i
}

// Match is an entry together with its position in the full list.
type Match struct {
	Index int
	Entry
}

// Matching returns the entries whose question or answer contains every word of
// query, case-insensitively. Indices refer to the full list so the accordion
// state survives narrowing.
func Matching(entries []Entry, query string) []Match {
	words := strings.Fields(strings.ToLower(query))
	out := make([]Match, 0, len(entries))
	for i, e := range entries {
		text := strings.ToLower(e.Question + " " + e.Answer)
		ok := true
		for _, w := range words {
			if !strings.Contains(text, w) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, Match{Index: i, Entry: e})
		}
	}
	return out
}
