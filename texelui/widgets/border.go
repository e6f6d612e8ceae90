package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/framegrace/texelpane/texelui/core"
)

// Border draws a border around its Rect and can optionally have a child rendered inside.
type Border struct {
	core.BaseWidget
	Style   tcell.Style
	Charset [6]rune // h, v, tl, tr, bl, br
	Title   string
	Child   core.Widget
}

func NewBorder(x, y, w, h int, style tcell.Style) *Border {
	b := &Border{Style: style}
	// default single-line charset
	b.Charset = [6]rune{'─', '│', '┌', '┐', '└', '┘'}
	b.SetPosition(x, y)
	b.Resize(w, h)
	return b
}

func (b *Border) ClientRect() core.Rect {
	r := b.Rect
	if r.W < 2 || r.H < 2 {
		return core.Rect{X: r.X, Y: r.Y, W: 0, H: 0}
	}
	return core.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
}

func (b *Border) SetChild(w core.Widget) {
	b.Child = w
	b.layoutChild()
}

func (b *Border) SetPosition(x, y int) {
	b.BaseWidget.SetPosition(x, y)
	b.layoutChild()
}

func (b *Border) Resize(w, h int) {
	b.BaseWidget.Resize(w, h)
	b.layoutChild()
}

func (b *Border) layoutChild() {
	if b.Child == nil {
		return
	}
	cr := b.ClientRect()
	b.Child.SetPosition(cr.X, cr.Y)
	b.Child.Resize(cr.W, cr.H)
}

func (b *Border) Draw(p *core.Painter) {
	p.DrawBorder(b.Rect, b.Style, b.Charset)
	if b.Title != "" && b.Rect.W > 4 {
		t := " " + b.Title + " "
		if len([]rune(t)) > b.Rect.W-2 {
			t = string([]rune(t)[:b.Rect.W-2])
		}
		p.DrawText(b.Rect.X+1, b.Rect.Y, t, b.Style)
	}
	if b.Child != nil {
		b.Child.Draw(p)
	}
}

// VisitChildren exposes the child to focus and invalidation traversal.
func (b *Border) VisitChildren(f func(core.Widget)) {
	if b.Child != nil {
		f(b.Child)
	}
}

// WidgetAt returns the deepest widget under the point inside the child.
func (b *Border) WidgetAt(x, y int) core.Widget {
	if b.Child == nil || !b.Child.HitTest(x, y) {
		return nil
	}
	if ht, ok := b.Child.(core.HitTester); ok {
		if w := ht.WidgetAt(x, y); w != nil {
			return w
		}
	}
	return b.Child
}

// HandleMouse forwards mouse events to the child.
func (b *Border) HandleMouse(ev *tcell.EventMouse) bool {
	if ma, ok := b.Child.(core.MouseAware); ok {
		return ma.HandleMouse(ev)
	}
	return false
}
