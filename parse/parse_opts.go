package parse

import "github.com/confedit/go-confedit/format"

type ParseOption func(*parseOpts)

type parseOpts struct {
	syntax     *format.Syntax
	file       string
	defaultSec string
}

// WithSyntax selects the INI dialect to parse with.
func WithSyntax(syn *format.Syntax) ParseOption {
	return func(po *parseOpts) { po.syntax = syn }
}

// WithFilename names the input in error messages.
func WithFilename(name string) ParseOption {
	return func(po *parseOpts) { po.file = name }
}

// WithDefaultSection collects option lines appearing before any section
// header into a headerless section named name, instead of failing on
// them. Off by default.
func WithDefaultSection(name string) ParseOption {
	return func(po *parseOpts) { po.defaultSec = name }
}
