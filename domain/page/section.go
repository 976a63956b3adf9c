// Package page is the landing page container: it owns the per-visit view
// state, composes the sections and serves them over HTTP.
package page

import (
	"errors"
	"fmt"
)

// SectionID names one of the page's sections. The value is also the
// element id and the URL fragment.
type SectionID string

const (
	SectionHero     SectionID = "hero"
	SectionFeatures SectionID = "features"
	SectionAbout    SectionID = "about"
	SectionFAQ      SectionID = "faq"
	SectionContact  SectionID = "contact"
	SectionFooter   SectionID = "footer"
)

// Sections in page order.
var Sections = []SectionID{
	SectionHero,
	SectionFeatures,
	SectionAbout,
	SectionFAQ,
	SectionContact,
	SectionFooter,
}

var ErrUnknownSection = errors.New("unknown section")

func ParseSection(s string) (SectionID, error) {
	for _, id := range Sections {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// Scroll is a smooth-scroll command for the browser, shaped like the
// options of Element.scrollIntoView.
type Scroll struct {
	Target   string `json:"target"`
	Behavior string `json:"behavior"`
	Block    string `json:"block"`
}

// ScrollToSection aligns the top of target with the top of the viewport.
func ScrollToSection(target SectionID) Scroll {
	return Scroll{
		Target:   "#" + string(target),
		Behavior: "smooth",
		Block:    "start",
	}
}
