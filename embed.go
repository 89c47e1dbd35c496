package site

import "embed"

// EmbeddedAssets contains static assets shipped with the binary:
// favicon.svg, logo.svg and the compiled stylesheet. Files in the static
// directory are served alongside them under /public/.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
