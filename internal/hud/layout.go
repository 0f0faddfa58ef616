package hud

// Size is a width/height pair in terminal cells.
type Size struct {
	W, H int
}

// Rect is a cell rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H int
}

// Offset moves the bezel away from the centre, in cells.
type Offset struct {
	X, Y int
}

// Insets are per-edge distances in cells.
type Insets struct {
	Top, Left, Bottom, Right int
}

func (in Insets) add(o Insets) Insets {
	return Insets{
		Top:    in.Top + o.Top,
		Left:   in.Left + o.Left,
		Bottom: in.Bottom + o.Bottom,
		Right:  in.Right + o.Right,
	}
}

// Inset shrinks r by in. Sizes never go negative.
func (r Rect) Inset(in Insets) Rect {
	out := Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: r.W - in.Left - in.Right,
		H: r.H - in.Top - in.Bottom,
	}
	out.W = max(out.W, 0)
	out.H = max(out.H, 0)
	return out
}

// Layout positions the bezel inside its container.
type Layout struct {
	// Offset from the centred position.
	Offset Offset
	// Margin is the minimum distance between the bezel and the container
	// edges (added to the safe area).
	Margin Insets
	// MinimumSize is the smallest bezel size.
	MinimumSize Size
	// ContentMargin pads the content inside the bezel.
	ContentMargin Insets
}

// DefaultLayout is the layout a new HUD starts with.
var DefaultLayout = Layout{
	Margin:        Insets{Top: 1, Left: 2, Bottom: 1, Right: 2},
	ContentMargin: Insets{Top: 1, Left: 2, Bottom: 1, Right: 2},
}

// Frame computes the bezel rectangle for content inside bounds. Constraints
// are applied in priority order: the minimum size always holds, then the
// margins and safe area, then the centring offset.
func (l Layout) Frame(bounds Rect, safeArea Insets, content Size) Rect {
	avail := bounds.Inset(safeArea.add(l.Margin))

	w := content.W + l.ContentMargin.Left + l.ContentMargin.Right
	h := content.H + l.ContentMargin.Top + l.ContentMargin.Bottom
	w = max(min(w, avail.W), l.MinimumSize.W)
	h = max(min(h, avail.H), l.MinimumSize.H)

	x := bounds.X + (bounds.W-w)/2 + l.Offset.X
	y := bounds.Y + (bounds.H-h)/2 + l.Offset.Y

	return Rect{
		X: clampSpan(x, w, avail.X, avail.W),
		Y: clampSpan(y, h, avail.Y, avail.H),
		W: w,
		H: h,
	}
}

// clampSpan keeps [pos, pos+size) inside [lo, lo+span). A size larger than
// the span is centred over it.
func clampSpan(pos, size, lo, span int) int {
	if size > span {
		return lo + (span-size)/2
	}
	return min(max(pos, lo), lo+span-size)
}
