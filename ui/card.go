package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// TechCard describes a technology logo tile.
type TechCard struct {
	Logo        string
	Name        string
	Width       string // e.g. "w-40"
	Height      string
	Class       string
	ColorFrom   string // gradient start, e.g. "from-orange-500"
	ColorTo     string
	ImageWidth  int
	ImageHeight int
	// Colour disables the grayscale filter applied until hover.
	Colour bool
}

// Render draws the card: a gradient border revealed on hover around the logo.
func (c TechCard) Render() g.Node {
	imgClass := Classes("group-hover:scale-110 transition-transform", grayscale(!c.Colour), "group-hover:grayscale-0 filter rounded-lg p-2")
	return h.Div(
		h.Class(Classes("group relative flex items-center justify-center rounded-lg transition-all hover:border-transparent shadow-lg shadow-shadowPrimary", c.Width, c.Height, c.Class)),
		h.Div(h.Class(Classes("absolute -inset-[2px] rounded-lg p-1 transition-all opacity-0 group-hover:opacity-100 group-hover:bg-gradient-to-br", c.ColorFrom, c.ColorTo))),
		h.Div(
			h.Class("relative flex items-center justify-center w-full h-full bg-white rounded-lg"),
			h.Img(
				h.Src(c.Logo),
				h.Alt(c.Name+" Logo"),
				h.Class(imgClass),
				h.Width(strconv.Itoa(c.ImageWidth)),
				h.Height(strconv.Itoa(c.ImageHeight)),
			),
		),
	)
}

func grayscale(on bool) string {
	if on {
		return "grayscale"
	}
	return ""
}

// Logo renders the site logo linking to href.
func Logo(href, src, label, class string) g.Node {
	return h.A(
		h.Href(href),
		h.Aria("label", label),
		h.Class(Classes("flex items-center", class)),
		h.Img(h.Src(src), h.Alt(label+" Logo"), h.Width("120"), h.Height("40")),
	)
}
