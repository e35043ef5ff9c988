package app

import "embed"

// staticFS contains the stylesheet and print script bundled with the binary.
//
//go:embed static/*
var staticFS embed.FS
