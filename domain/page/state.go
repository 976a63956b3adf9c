package page

import (
	"net/url"
	"strconv"

	"github.com/gogetwell/website/domain/faq"
	"github.com/gogetwell/website/domain/features"
	"github.com/gogetwell/website/domain/hero"
)

// Query parameters carrying view state for visitors without script.
const (
	paramFilter  = "filter"
	paramFAQ     = "faq"
	paramQuery   = "q"
	paramVideo   = "video"
	paramContact = "contact"
	paramEager   = "eager"

	faqNone     = "none"
	contactSent = "sent"
)

var stateParams = []string{paramFilter, paramFAQ, paramQuery, paramVideo, paramContact, paramEager}

// ViewState is the serialisable part of a Page.
type ViewState struct {
	Filter features.Category
	// FAQ is the open entry, faq.None for all collapsed.
	FAQ         int
	Query       string
	Video       hero.VideoModal
	ContactSent bool
}

// DefaultState is a fresh visit: all features, first question open.
func DefaultState() ViewState {
	return ViewState{Filter: features.All}
}

// ParseViewState reads view state from query parameters. Unknown or
// malformed values fall back to the defaults.
func ParseViewState(q url.Values) ViewState {
	s := DefaultState()

	if cat, err := features.ParseCategory(q.Get(paramFilter)); err == nil {
		s.Filter = cat
	}

	switch v := q.Get(paramFAQ); v {
	case "":
	case faqNone:
		s.FAQ = faq.None
	default:
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			s.FAQ = i
		}
	}

	s.Query = q.Get(paramQuery)
	s.Video = hero.ParseVideoParam(q.Get(paramVideo))
	s.ContactSent = q.Get(paramContact) == contactSent
	return s
}

// HasStateParams reports whether the request navigates the page without
// script, in which case every section renders eagerly.
func HasStateParams(q url.Values) bool {
	for _, p := range stateParams {
		if q.Has(p) {
			return true
		}
	}
	return false
}

// Values encodes s, leaving out defaults.
func (s ViewState) Values() url.Values {
	q := url.Values{}
	if s.Filter != "" && s.Filter != features.All {
		q.Set(paramFilter, string(s.Filter))
	}
	switch {
	case s.FAQ == faq.None:
		q.Set(paramFAQ, faqNone)
	case s.FAQ > 0:
		q.Set(paramFAQ, strconv.Itoa(s.FAQ))
	}
	if s.Query != "" {
		q.Set(paramQuery, s.Query)
	}
	if v := s.Video.VideoParam(); v != "" {
		q.Set(paramVideo, v)
	}
	if s.ContactSent {
		q.Set(paramContact, contactSent)
	}
	return q
}

// URL is the no-script link to s, scrolled to section.
func (s ViewState) URL(section SectionID) string {
	q := s.Values()
	q.Set(paramEager, "1")
	u := url.URL{Path: "/", RawQuery: q.Encode()}
	if section != "" {
		u.Fragment = string(section)
	}
	return u.String()
}
