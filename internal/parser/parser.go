// Package parser extracts the three fixed language sections from a raw model
// completion. The model is prompted to reply in the form
//
//	ENGLISH:
//	<body>
//	TAMIL:
//	<body>
//	HINDI:
//	<body>
//
// but replies are free text, so each section is resolved independently and a
// missing or empty section falls back to a configured per-language sentence.
package parser

import (
	"regexp"
	"strings"
)

// Labels are the literal tokens that delimit the language sections.
type Labels struct {
	English string
	Tamil   string
	Hindi   string
}

// DefaultLabels match the prompt's response format.
var DefaultLabels = Labels{English: "ENGLISH", Tamil: "TAMIL", Hindi: "HINDI"}

// Fallbacks are substituted for sections absent from the input. They must be
// non-empty, user-presentable sentences in the respective language.
type Fallbacks struct {
	English string
	Tamil   string
	Hindi   string
}

// Sections holds the three extracted (or substituted) bodies.
type Sections struct {
	English string
	Tamil   string
	Hindi   string
}

// A section ends where the next all-caps label starts on a fresh line.
var sectionBoundary = regexp.MustCompile(`\n[A-Z]+[ \t]*:`)

// Parse locates each label in raw and captures the text strictly between that
// label's colon and the next recognized label (or end of input), trimmed of
// surrounding whitespace. Labels may appear in any order; a missing ENGLISH
// section does not invalidate a present TAMIL one.
func Parse(raw string, labels Labels, fb Fallbacks) Sections {
	return Sections{
		English: section(raw, labels.English, fb.English),
		Tamil:   section(raw, labels.Tamil, fb.Tamil),
		Hindi:   section(raw, labels.Hindi, fb.Hindi),
	}
}

func section(raw, label, fallback string) string {
	// Tolerate whitespace between the label and its colon.
	start := regexp.MustCompile(regexp.QuoteMeta(label) + `[ \t]*:`)
	loc := start.FindStringIndex(raw)
	if loc == nil {
		return fallback
	}

	body := raw[loc[1]:]
	if end := sectionBoundary.FindStringIndex(body); end != nil {
		body = body[:end[0]]
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return fallback
	}
	return body
}
