package hud

import "github.com/schmitthub/hudkit/internal/scheduler"

// Container hosts HUDs over a host view. HUDs attached later sit on top.
// Like the HUDs it holds, a Container belongs to the UI thread.
type Container struct {
	huds     []*HUD
	bounds   Rect
	safeArea Insets
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{}
}

// Attach puts h on top of the container, moving it there if it is already
// attached here and detaching it from any other container first.
func (c *Container) Attach(h *HUD) {
	if h.container != nil {
		h.container.Detach(h)
	}
	c.huds = append(c.huds, h)
	h.container = c
}

// Detach removes h. It reports whether h was attached.
func (c *Container) Detach(h *HUD) bool {
	for i, x := range c.huds {
		if x == h {
			c.huds = append(c.huds[:i], c.huds[i+1:]...)
			h.container = nil
			return true
		}
	}
	return false
}

// HUDs returns the attached HUDs, bottom first.
func (c *Container) HUDs() []*HUD {
	out := make([]*HUD, len(c.huds))
	copy(out, c.huds)
	return out
}

// Active returns the topmost HUD that is requested visible and has no
// delayed hide pending, or nil.
func (c *Container) Active() *HUD {
	for i := len(c.huds) - 1; i >= 0; i-- {
		h := c.huds[i]
		if h.active && !h.prepareHidden {
			return h
		}
	}
	return nil
}

// SetBounds sets the container's size in cells.
func (c *Container) SetBounds(r Rect) { c.bounds = r }

// Bounds returns the container's size in cells.
func (c *Container) Bounds() Rect { return c.bounds }

// SetSafeArea sets insets the bezel must stay clear of.
func (c *Container) SetSafeArea(in Insets) { c.safeArea = in }

// SafeArea returns the safe-area insets.
func (c *Container) SafeArea() Insets { return c.safeArea }

// Frame lays out h's bezel for the given content size.
func (c *Container) Frame(h *HUD, content Size) Rect {
	return h.layout.Frame(c.bounds, c.safeArea, content)
}

// Close closes every attached HUD.
func (c *Container) Close() {
	for _, h := range c.HUDs() {
		h.Close()
	}
}

// Show creates a HUD, attaches it to c and shows it. The HUD detaches
// itself once hidden.
func Show(c *Container, sched scheduler.Scheduler, animated bool, opts ...Option) *HUD {
	h := New(sched, opts...)
	h.SetRemoveWhenStopped(true)
	c.Attach(h)
	h.Show(animated)
	return h
}

// Hide hides the active HUD of c and lets it detach itself. It reports
// false when c has no active HUD.
func Hide(c *Container, animated bool) bool {
	h := c.Active()
	if h == nil {
		return false
	}
	h.SetRemoveWhenStopped(true)
	h.Hide(animated)
	return true
}
