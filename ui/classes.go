// Package ui is the site's small component library: buttons, tech cards,
// the logo and navigation link styling.
//
// Styles are Tailwind class tokens. Every style helper is a pure function
// from a closed set of options to an ordered token list.
package ui

import "strings"

// Classes joins class strings into one attribute value. Each part may hold
// several space-separated tokens; empty and repeated tokens are dropped and
// the first occurrence wins.
func Classes(parts ...string) string {
	return strings.Join(Tokens(parts...), " ")
}

// Tokens is Classes without the final join.
func Tokens(parts ...string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range parts {
		for _, tok := range strings.Fields(p) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			out = append(out, tok)
		}
	}
	return out
}

// NavLinkClasses returns the classes for a navigation link. Block links are
// used in the stacked mobile menu.
func NavLinkClasses(active, block bool) string {
	state := "text-gray-800"
	if active {
		state = "text-black font-semibold"
	}
	if block {
		return Classes("block", state)
	}
	return state
}
