package live

import "github.com/gogetwell/website/domain/page"

// liveChrome turns profile widget changes into class patches, skipping
// repeats of the last state sent.
type liveChrome struct {
	fixed   bool
	sent    bool
	pending []Patch
}

func (c *liveChrome) SetFixed(fixed bool) {
	if c.sent && c.fixed == fixed {
		return
	}
	c.fixed = fixed
	c.sent = true
	c.pending = append(c.pending, ClassPatch(page.ProfileSelector, page.ProfileFixed, fixed))
}

func (c *liveChrome) drain() []Patch {
	out := c.pending
	c.pending = nil
	return out
}
