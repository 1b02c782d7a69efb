package session

import (
	"context"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/medicode-ai/medicode/internal/domain/analysis"
)

type stubClient struct {
	analyzeResult analysis.Result
	chatResult    analysis.Result
	duringAnalyze func()
}

func (c *stubClient) AnalyzeImage(_ context.Context, _ string) analysis.Result {
	if c.duringAnalyze != nil {
		c.duringAnalyze()
	}
	return c.analyzeResult
}

func (c *stubClient) SendChatMessage(_ context.Context, _ string) analysis.Result {
	return c.chatResult
}

type stubHistory struct {
	items []analysis.HistoryItem
	next  int
}

func (h *stubHistory) List(_ context.Context) []analysis.HistoryItem { return h.items }

func (h *stubHistory) Append(_ context.Context, res analysis.Result) (analysis.HistoryItem, error) {
	h.next++
	item := analysis.HistoryItem{
		ID:          string(rune('a' + h.next)),
		Result:      res.Result,
		TamilResult: res.TamilResult,
		HindiResult: res.HindiResult,
		Timestamp:   time.Now(),
	}
	h.items = append([]analysis.HistoryItem{item}, h.items...)
	return item, nil
}

func (h *stubHistory) Delete(_ context.Context, id string) error {
	kept := h.items[:0]
	for _, it := range h.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	h.items = kept
	return nil
}

type tickClock struct {
	now time.Time
}

func (c *tickClock) Now() time.Time {
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

func newTestSession(client analysis.Client, hist analysis.HistoryStore) *Session {
	logger := &log.Logger{Handler: discard.New(), Level: log.InfoLevel}
	return New(client, hist, &tickClock{now: time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)}, logger)
}

func TestInitialStateShowsPlaceholder(t *testing.T) {
	s := newTestSession(&stubClient{}, &stubHistory{})

	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %s, want idle", s.Phase())
	}
	st := s.State()
	if st.Result != "Take or upload a photo to analyze the medicine" {
		t.Errorf("Result = %q, want placeholder copy", st.Result)
	}
	if st.IsAnalyzing || st.HasImage || st.CurrentImage != "" {
		t.Errorf("initial state not clean: %+v", st)
	}
	if s.Language() != analysis.LanguageEnglish {
		t.Errorf("Language() = %s, want english default", s.Language())
	}
	if msgs := s.Messages(); len(msgs) != 1 || !msgs[0].IsBot || msgs[0].Text != analysis.Greeting {
		t.Errorf("Messages() = %+v, want single greeting", msgs)
	}
}

func TestAnalyzeImageShowsInProgressCopyWhileInFlight(t *testing.T) {
	var seen State
	var phase Phase
	client := &stubClient{analyzeResult: analysis.Result{Result: "done"}}
	hist := &stubHistory{}
	s := newTestSession(client, hist)
	client.duringAnalyze = func() {
		seen = s.State()
		phase = s.Phase()
	}

	s.AnalyzeImage(context.Background(), "data:image/png;base64,aGk=")

	if phase != PhaseAnalyzing {
		t.Errorf("phase during call = %s, want analyzing", phase)
	}
	if !seen.IsAnalyzing {
		t.Error("IsAnalyzing = false while request in flight")
	}
	busy := analysis.AnalyzingResult()
	if seen.Result != busy.Result || seen.TamilResult != busy.TamilResult || seen.HindiResult != busy.HindiResult {
		t.Errorf("in-flight copy = %+v, want analyzing placeholders", seen)
	}
	if !seen.HasImage || seen.CurrentImage != "data:image/png;base64,aGk=" {
		t.Errorf("pending image not recorded: %+v", seen)
	}
}

func TestAnalyzeImageSuccessTransitionsAndAppendsHistory(t *testing.T) {
	res := analysis.Result{
		Result:      "Paracetamol 500mg.",
		TamilResult: "பாராசிட்டமால்.",
		HindiResult: "पेरासिटामोल।",
	}
	hist := &stubHistory{}
	s := newTestSession(&stubClient{analyzeResult: res}, hist)

	got := s.AnalyzeImage(context.Background(), "img")

	if got != res {
		t.Errorf("AnalyzeImage() = %+v, want %+v", got, res)
	}
	if s.Phase() != PhaseShowingResult {
		t.Errorf("Phase() = %s, want showing_result", s.Phase())
	}
	st := s.State()
	if st.IsAnalyzing {
		t.Error("IsAnalyzing still true after settle")
	}
	if st.Result != res.Result {
		t.Errorf("State().Result = %q, want %q", st.Result, res.Result)
	}
	if len(hist.items) != 1 || hist.items[0].Result != res.Result {
		t.Errorf("history = %+v, want one entry with result text", hist.items)
	}
}

func TestAnalyzeImageFailureStillAppendsExactlyOneHistoryItem(t *testing.T) {
	failure := analysis.FailureResult("connection refused")
	hist := &stubHistory{}
	s := newTestSession(&stubClient{analyzeResult: failure}, hist)

	got := s.AnalyzeImage(context.Background(), "img")

	if !got.Failed() {
		t.Fatal("expected normalized failure result")
	}
	if s.Phase() != PhaseShowingResult {
		t.Errorf("Phase() = %s, want showing_result (never stuck in analyzing)", s.Phase())
	}
	if len(hist.items) != 1 {
		t.Fatalf("history has %d items after failure, want exactly 1", len(hist.items))
	}
	item := hist.items[0]
	if item.Result != "Analysis failed. Please check the image and try again." {
		t.Errorf("history English text = %q", item.Result)
	}
	if item.TamilResult != "பகுப்பாய்வு தோல்வியடைந்தது. படத்தைச் சரிபார்த்து மீண்டும் முயற்சிக்கவும்." {
		t.Errorf("history Tamil text = %q", item.TamilResult)
	}
	if item.HindiResult != "विश्लेषण असफल। कृपया छवि की जांच करें और पुनः प्रयास करें।" {
		t.Errorf("history Hindi text = %q", item.HindiResult)
	}
}

func TestResetClearsDisplayButKeepsHistory(t *testing.T) {
	hist := &stubHistory{}
	s := newTestSession(&stubClient{analyzeResult: analysis.Result{Result: "ok"}}, hist)

	s.AnalyzeImage(context.Background(), "img")
	s.Reset()

	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %s, want idle", s.Phase())
	}
	st := s.State()
	if st.HasImage || st.CurrentImage != "" || st.IsAnalyzing {
		t.Errorf("state after reset: %+v", st)
	}
	if st.Result != "Take or upload a photo to analyze the medicine" {
		t.Errorf("Result = %q, want placeholder", st.Result)
	}
	if len(hist.items) != 1 {
		t.Errorf("history items = %d after reset, want 1 (reset must not delete)", len(hist.items))
	}
}

func TestBeginCapture(t *testing.T) {
	s := newTestSession(&stubClient{}, &stubHistory{})
	s.BeginCapture()
	if s.Phase() != PhaseCapturing {
		t.Errorf("Phase() = %s, want capturing", s.Phase())
	}
}

func TestSendChatUsesSelectedLanguage(t *testing.T) {
	reply := analysis.Result{
		Result:      "Paracetamol is used for fever and mild pain.",
		TamilResult: "காய்ச்சலுக்கு பயன்படுகிறது.",
		HindiResult: "पेरासिटामोल बुखार और हल्के दर्द के लिए उपयोग होता है।",
	}
	s := newTestSession(&stubClient{chatResult: reply}, &stubHistory{})
	s.SetLanguage(analysis.LanguageHindi)

	got := s.SendChat(context.Background(), "What is paracetamol used for?")

	if got.Text != reply.HindiResult {
		t.Errorf("bot message = %q, want hindiResult verbatim", got.Text)
	}
	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("transcript has %d messages, want 3 (greeting, user, bot)", len(msgs))
	}
	if msgs[1].IsBot || msgs[1].Text != "What is paracetamol used for?" {
		t.Errorf("user message = %+v", msgs[1])
	}
	if !msgs[2].IsBot {
		t.Error("reply not marked as bot message")
	}
}

func TestSendChatFailureShowsApologyInAnyLanguage(t *testing.T) {
	s := newTestSession(&stubClient{chatResult: analysis.ChatFailureResult("boom")}, &stubHistory{})
	s.SetLanguage(analysis.LanguageTamil)

	got := s.SendChat(context.Background(), "hello")

	if got.Text != "I'm having trouble responding. Please try again shortly." {
		t.Errorf("bot message = %q, want single-language apology", got.Text)
	}
}

func TestDeleteHistoryItemDelegates(t *testing.T) {
	hist := &stubHistory{}
	s := newTestSession(&stubClient{analyzeResult: analysis.Result{Result: "ok"}}, hist)
	s.AnalyzeImage(context.Background(), "img")

	id := hist.items[0].ID
	if err := s.DeleteHistoryItem(context.Background(), id); err != nil {
		t.Fatalf("DeleteHistoryItem() error = %v", err)
	}
	if len(s.History(context.Background())) != 0 {
		t.Error("history not empty after delete")
	}
}
