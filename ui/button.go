package ui

import (
	"errors"
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ErrUnknownVariant is returned for a variant outside the closed set.
var ErrUnknownVariant = errors.New("unknown button variant")

// Variant selects a button's visual treatment.
type Variant int

const (
	Primary Variant = iota
	Secondary
	Tertiary
	Custom
)

var variantNames = [...]string{"primary", "secondary", "tertiary", "custom"}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return "Variant(" + strconv.Itoa(int(v)) + ")"
	}
	return variantNames[v]
}

// ParseVariant maps a variant name to its Variant.
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if name == s {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// ButtonStyle holds the knobs of a button. Zero-valued strings contribute no
// tokens; start from DefaultButtonStyle for the house look.
type ButtonStyle struct {
	Variant     Variant
	Width       string // CSS length, e.g. "230px"
	Height      string
	TextColor   string
	BgColor     string
	BorderColor string
	FontWeight  string
	Opacity     int // percent
	Padding     string
	Radius      string
	Shadow      string
	ShadowColor string
	Class       string
	Disabled    bool
}

// DefaultButtonStyle returns a primary button with the house defaults.
func DefaultButtonStyle() ButtonStyle {
	return ButtonStyle{
		Variant:     Primary,
		Width:       "230px",
		Height:      "40px",
		TextColor:   "text-primary",
		BgColor:     "bg-primary",
		BorderColor: "border-primary",
		FontWeight:  "font-normal",
		Opacity:     100,
		Padding:     "px-5 py-3",
		Radius:      "rounded-full",
		Shadow:      "shadow-md",
		ShadowColor: "shadow-primaryLight",
	}
}

// Classes returns the ordered token list for s.
func (s ButtonStyle) Classes() ([]string, error) {
	hoverShadow := ""
	if s.ShadowColor != "" {
		hoverShadow = "hover:" + s.ShadowColor
	}
	switch s.Variant {
	case Primary:
		return Tokens(s.base(), s.BgColor, "shadow-md text-white bg-[linear-gradient(315deg,_#FF5A01_0%,_#FD5901_100%)] hover:bg-primary-dark"), nil
	case Secondary:
		return Tokens(s.base(), "bg-white text-primary shadow-md hover:bg-primary-light"), nil
	case Tertiary:
		return Tokens(s.base(), "border-2", s.BorderColor, s.Shadow, hoverShadow, "hover:shadow-md text-primary hover:bg-primary-light border-opacity-50 rounded-full"), nil
	case Custom:
		return Tokens(s.Class, s.Shadow, hoverShadow, "rounded-full"), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariant, s.Variant)
	}
}

func (s ButtonStyle) base() string {
	parts := []string{s.TextColor, s.Padding, s.FontWeight}
	if s.Width != "" {
		parts = append(parts, "w-["+s.Width+"]")
	}
	if s.Height != "" {
		parts = append(parts, "h-["+s.Height+"]")
	}
	parts = append(parts, s.Radius, "flex justify-center items-center gap-0 transition-all duration-300 ease-out")
	if s.Opacity > 0 {
		parts = append(parts, "opacity-"+strconv.Itoa(s.Opacity))
	}
	if s.Disabled {
		parts = append(parts, "cursor-not-allowed opacity-50")
	}
	parts = append(parts, s.Class)
	return Classes(parts...)
}

// Button renders a <button>. typ is "button", "submit" or "reset".
func Button(typ string, s ButtonStyle, children ...g.Node) (g.Node, error) {
	cls, err := s.Classes()
	if err != nil {
		return nil, err
	}
	return h.Button(
		h.Type(typ),
		h.Class(Classes(cls...)),
		g.If(s.Disabled, h.Disabled()),
		g.Group(children),
	), nil
}

// MustButton is Button for styles fixed in code.
func MustButton(typ string, s ButtonStyle, children ...g.Node) g.Node {
	n, err := Button(typ, s, children...)
	if err != nil {
		panic(err)
	}
	return n
}

// LinkButton renders an anchor styled as a button.
func LinkButton(href string, s ButtonStyle, children ...g.Node) (g.Node, error) {
	cls, err := s.Classes()
	if err != nil {
		return nil, err
	}
	if s.Disabled {
		return h.Span(h.Class(Classes(cls...)), h.Aria("disabled", "true"), g.Group(children)), nil
	}
	return h.A(h.Href(href), h.Class(Classes(cls...)), g.Group(children)), nil
}

// MustLinkButton is LinkButton for styles fixed in code.
func MustLinkButton(href string, s ButtonStyle, children ...g.Node) g.Node {
	n, err := LinkButton(href, s, children...)
	if err != nil {
		panic(err)
	}
	return n
}
