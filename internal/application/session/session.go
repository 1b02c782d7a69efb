// Package session holds the in-memory view-model for one scanning session:
// the current analysis, the active display language, the chat transcript and
// the link to the persisted history.
package session

import (
	"context"
	"strconv"

	"github.com/apex/log"

	"github.com/medicode-ai/medicode/internal/application"
	"github.com/medicode-ai/medicode/internal/domain/analysis"
)

// Phase of the active scan.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseCapturing     Phase = "capturing"
	PhaseAnalyzing     Phase = "analyzing"
	PhaseShowingResult Phase = "showing_result"
)

// State is the transient display state. While IsAnalyzing is true the three
// result fields hold the in-progress placeholder, never stale results.
type State struct {
	Result       string
	TamilResult  string
	HindiResult  string
	IsAnalyzing  bool
	HasImage     bool
	CurrentImage string
}

func initialState() State {
	p := analysis.PlaceholderResult()
	return State{Result: p.Result, TamilResult: p.TamilResult, HindiResult: p.HindiResult}
}

// Session coordinates user actions, the analysis client and the history
// store. All methods must be called from a single goroutine: network calls
// are the only suspension points and the session does not serialize
// overlapping requests itself. If the caller fails to disable capture while a
// request is in flight, the later response wins on the transient state and
// both responses still append to history.
type Session struct {
	client  analysis.Client
	history analysis.HistoryStore
	clock   application.Clock
	log     log.Interface

	phase    Phase
	state    State
	language analysis.Language
	messages []analysis.ChatMessage
}

func New(client analysis.Client, history analysis.HistoryStore, clock application.Clock, logger log.Interface) *Session {
	if logger == nil {
		logger = log.Log
	}
	s := &Session{
		client:   client,
		history:  history,
		clock:    clock,
		log:      logger,
		phase:    PhaseIdle,
		state:    initialState(),
		language: analysis.LanguageEnglish,
	}
	s.messages = []analysis.ChatMessage{{
		ID:        s.nextID(),
		Text:      analysis.Greeting,
		IsBot:     true,
		Timestamp: clock.Now(),
	}}
	return s
}

func (s *Session) nextID() string {
	return strconv.FormatInt(s.clock.Now().UnixMilli(), 10)
}

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) State() State { return s.state }
func (s *Session) Language() analysis.Language { return s.language }
func (s *Session) SetLanguage(l analysis.Language) { s.language = l }

// Messages returns the chat transcript, greeting first.
func (s *Session) Messages() []analysis.ChatMessage { return s.messages }

// BeginCapture marks that the user opened the camera or file picker.
func (s *Session) BeginCapture() {
	if s.phase == PhaseIdle {
		s.phase = PhaseCapturing
	}
}

// AnalyzeImage runs one scan: placeholder copy goes up immediately, the
// client call settles, and the outcome (success or normalized failure) lands
// in both the transient state and the persisted history. The session always
// leaves the analyzing phase once the call settles; a failed analysis is a
// result, not a stuck state.
func (s *Session) AnalyzeImage(ctx context.Context, imageData string) analysis.Result {
	busy := analysis.AnalyzingResult()
	s.phase = PhaseAnalyzing
	s.state = State{
		Result:       busy.Result,
		TamilResult:  busy.TamilResult,
		HindiResult:  busy.HindiResult,
		IsAnalyzing:  true,
		HasImage:     true,
		CurrentImage: imageData,
	}

	res := s.client.AnalyzeImage(ctx, imageData)

	// Failed analyses are recorded too, so a scan attempt never vanishes.
	if _, err := s.history.Append(ctx, res); err != nil {
		s.log.WithError(err).Error("history append failed")
	}

	s.phase = PhaseShowingResult
	s.state = State{
		Result:       res.Result,
		TamilResult:  res.TamilResult,
		HindiResult:  res.HindiResult,
		IsAnalyzing:  false,
		HasImage:     true,
		CurrentImage: imageData,
	}
	return res
}

// Reset clears the displayed scan and returns to the initial placeholder
// copy. History entries already committed stay committed, and an in-flight
// request is not aborted.
func (s *Session) Reset() {
	s.phase = PhaseIdle
	s.state = initialState()
}

// History returns the persisted items, most-recent-first.
func (s *Session) History(ctx context.Context) []analysis.HistoryItem {
	return s.history.List(ctx)
}

// DeleteHistoryItem removes one entry by ID; unknown IDs are a no-op.
func (s *Session) DeleteHistoryItem(ctx context.Context, id string) error {
	return s.history.Delete(ctx, id)
}

// SendChat appends the user's message and the bot reply, projected into the
// active display language, to the transcript. Returns the bot message.
func (s *Session) SendChat(ctx context.Context, text string) analysis.ChatMessage {
	s.messages = append(s.messages, analysis.ChatMessage{
		ID:        s.nextID(),
		Text:      text,
		IsBot:     false,
		Timestamp: s.clock.Now(),
	})

	res := s.client.SendChatMessage(ctx, text)
	reply := analysis.ChatMessage{
		ID:        s.nextID(),
		Text:      res.Text(s.language),
		IsBot:     true,
		Timestamp: s.clock.Now(),
	}
	s.messages = append(s.messages, reply)
	return reply
}
