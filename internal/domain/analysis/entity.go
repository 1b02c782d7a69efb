package analysis

import (
	"time"
)

// Language enum for the three display languages
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageTamil   Language = "tamil"
	LanguageHindi   Language = "hindi"
)

// ParseLanguage maps user input to a Language, defaulting to English.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LanguageTamil:
		return LanguageTamil
	case LanguageHindi:
		return LanguageHindi
	default:
		return LanguageEnglish
	}
}

// Result is one normalized three-language analysis payload. Failure responses
// are well-formed Results too: the three text fields carry per-language failure
// sentences and Err carries the diagnostic, so callers never branch on error kind.
type Result struct {
	Result      string `json:"result"`
	TamilResult string `json:"tamilResult"`
	HindiResult string `json:"hindiResult"`
	Err         string `json:"error,omitempty"`
}

// Failed reports whether this result came from a failure path.
func (r Result) Failed() bool { return r.Err != "" }

// Text returns the section for the given language. A section that is empty
// (chat failures carry English only) degrades to the English text.
func (r Result) Text(lang Language) string {
	var s string
	switch lang {
	case LanguageTamil:
		s = r.TamilResult
	case LanguageHindi:
		s = r.HindiResult
	default:
		s = r.Result
	}
	if s == "" {
		return r.Result
	}
	return s
}

// HistoryItem is a persisted record of one completed image analysis,
// successful or failed. Never mutated after creation except deletion by ID.
type HistoryItem struct {
	ID          string    `json:"id"`
	Result      string    `json:"result"`
	TamilResult string    `json:"tamilResult"`
	HindiResult string    `json:"hindiResult"`
	Timestamp   time.Time `json:"timestamp"`
}

// ChatMessage is one entry in the chat transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsBot     bool      `json:"isBot"`
	Timestamp time.Time `json:"timestamp"`
}
