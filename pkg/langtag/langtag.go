// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

/*
Package langtag provides best-effort display names for language tags.

Translation requests carry opaque BCP-47-ish tags ("en", "fr", "pt-BR") that
the server deliberately does not validate against a fixed set — unknown tags
are forwarded to providers untouched. This package only decorates history
listings with a human-readable name when the tag happens to parse.
*/
package langtag

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Display returns the English display name for a language tag,
// or the raw tag unchanged when it cannot be parsed.
//
// # Examples
//
//	Display("fr")    // "French"
//	Display("pt-BR") // "Brazilian Portuguese"
//	Display("xx-zz") // "xx-zz"
func Display(tag string) string {
	if tag == "" {
		return tag
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return tag
	}

	name := display.English.Tags().Name(parsed)
	if name == "" {
		return tag
	}
	return name
}
