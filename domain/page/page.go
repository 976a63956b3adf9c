package page

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"

	"github.com/gogetwell/website/domain/contact"
	"github.com/gogetwell/website/domain/faq"
	"github.com/gogetwell/website/domain/features"
	"github.com/gogetwell/website/domain/footer"
	"github.com/gogetwell/website/domain/hero"
	"github.com/gogetwell/website/domain/info"
	"github.com/gogetwell/website/domain/maps"
	"github.com/gogetwell/website/internal/config"
)

// Site is the content shared by every visit.
type Site struct {
	Name        string
	Description string
	URL         string
	VideoID     string
	Lazy        bool
	Catalog     *features.Catalog
	FAQ         []faq.Entry
	Map         maps.Widget
	Now         func() time.Time
}

// NewSite loads the embedded catalogs and applies site configuration.
func NewSite(cfg *config.Config) (*Site, error) {
	catalog, err := features.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load feature catalog: %w", err)
	}
	entries, err := faq.LoadEntries()
	if err != nil {
		return nil, fmt.Errorf("load faq: %w", err)
	}

	return &Site{
		Name:        cfg.Site.Name,
		Description: cfg.Site.Description,
		URL:         cfg.Site.URL,
		VideoID:     cfg.Site.HeroVideoID,
		Lazy:        cfg.Site.LazySections,
		Catalog:     catalog,
		FAQ:         entries,
		Map: maps.Widget{
			Center:      maps.LatLng{Lat: cfg.Maps.CenterLat, Lng: cfg.Maps.CenterLng},
			Zoom:        cfg.Maps.Zoom,
			MarkerLabel: cfg.Maps.MarkerLabel,
			Address:     cfg.Maps.Address,
			APIKey:      cfg.Maps.APIKey,
		},
		Now: time.Now,
	}, nil
}

// Page is the state of one mounted page. Only one goroutine may use a
// Page at a time.
type Page struct {
	site *Site

	Filter    features.Category
	Accordion *faq.Accordion
	Query     string
	Modal     hero.VideoModal
	Form      contact.FormState
}

// NewPage mounts a page in the given state.
func (s *Site) NewPage(state ViewState) *Page {
	p := &Page{
		site:      s,
		Filter:    state.Filter,
		Accordion: faq.NewAccordion(len(s.FAQ)),
		Query:     state.Query,
		Modal:     state.Video,
	}
	if p.Filter == "" {
		p.Filter = features.All
	}
	if state.FAQ != 0 {
		p.Accordion.Set(state.FAQ)
	}
	p.Form.Submitted = state.ContactSent
	return p
}

func (p *Page) Site() *Site {
	return p.site
}

// State captures everything a no-script link must carry.
func (p *Page) State() ViewState {
	return ViewState{
		Filter:      p.Filter,
		FAQ:         p.Accordion.Open,
		Query:       p.Query,
		Video:       p.Modal,
		ContactSent: p.Form.Submitted,
	}
}

func (p *Page) Hero() hero.View {
	return hero.View{
		Brand:   p.site.Name,
		VideoID: p.site.VideoID,
		Modal:   p.Modal,
		ModalHref: func(m hero.VideoModal) string {
			s := p.State()
			s.Video = m
			return s.URL(SectionHero)
		},
	}
}

func (p *Page) Features() features.View {
	return features.View{
		Catalog:  p.site.Catalog,
		Selected: p.Filter,
		FilterHref: func(c features.Category) string {
			s := p.State()
			s.Filter = c
			return s.URL(SectionFeatures)
		},
	}
}

func (p *Page) FAQ() faq.View {
	return faq.View{
		Entries:   p.site.FAQ,
		Accordion: p.Accordion,
		Query:     p.Query,
		ToggleHref: func(i int) string {
			s := p.State()
			next := *p.Accordion
			_ = next.Toggle(i)
			s.FAQ = next.Open
			return s.URL(SectionFAQ)
		},
	}
}

func (p *Page) Contact() contact.View {
	action := "/contact"
	if q := p.State().Values(); len(q) > 0 {
		q.Del(paramContact)
		if len(q) > 0 {
			action += "?" + q.Encode()
		}
	}

	reset := p.State()
	reset.ContactSent = false

	return contact.View{
		Form:      p.Form,
		Map:       p.site.Map,
		Action:    action + "#" + string(SectionContact),
		ResetHref: reset.URL(SectionContact),
	}
}

// RenderSection renders one section in the page's current state.
func (p *Page) RenderSection(id SectionID) g.Node {
	switch id {
	case SectionHero:
		return p.Hero().Render()
	case SectionFeatures:
		return p.Features().Render()
	case SectionAbout:
		return info.Render()
	case SectionFAQ:
		return p.FAQ().Render()
	case SectionContact:
		return p.Contact().Render()
	case SectionFooter:
		return footer.Render(p.site.Name, p.site.Now().Year())
	}
	return nil
}

// Sections renders the page body. When lazy, everything after the hero is
// a placeholder the browser fills in after first paint.
func (p *Page) Sections(lazy bool) []g.Node {
	nodes := make([]g.Node, 0, len(Sections))
	for _, id := range Sections {
		if lazy && id != SectionHero {
			nodes = append(nodes, SectionLoader(id))
			continue
		}
		nodes = append(nodes, p.RenderSection(id))
	}
	return nodes
}
