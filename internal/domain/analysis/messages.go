package analysis

// User-presentable copy in the three supported languages. The Tamil and Hindi
// sentences are fixed strings; keep them in sync with the English wording
// when editing.

// PlaceholderResult is the idle-state copy shown before any image is taken.
func PlaceholderResult() Result {
	return Result{
		Result:      "Take or upload a photo to analyze the medicine",
		TamilResult: "மருந்தை பகுப்பாய்வு செய்ய புகைப்படம் எடுக்கவும் அல்லது பதிவேற்றவும்",
		HindiResult: "दवा का विश्लेषण करने के लिए फोटो लें या अपलोड करें",
	}
}

// AnalyzingResult is the in-progress copy held while a request is in flight.
func AnalyzingResult() Result {
	return Result{
		Result:      "Analyzing medicine...",
		TamilResult: "மருந்தை பகுப்பாய்வு செய்கிறோம்...",
		HindiResult: "दवा का विश्लेषण कर रहे हैं...",
	}
}

// FailureResult is the normalized image-analysis failure: fixed trilingual
// failure sentences plus a diagnostic string.
func FailureResult(diag string) Result {
	if diag == "" {
		diag = "unknown error"
	}
	return Result{
		Result:      "Analysis failed. Please check the image and try again.",
		TamilResult: "பகுப்பாய்வு தோல்வியடைந்தது. படத்தைச் சரிபார்த்து மீண்டும் முயற்சிக்கவும்.",
		HindiResult: "विश्लेषण असफल। कृपया छवि की जांच करें और पुनः प्रयास करें।",
		Err:         diag,
	}
}

// ChatFailureResult degrades to one line, not three: the chat surface shows
// only the selected language and falls back to the English field.
func ChatFailureResult(diag string) Result {
	if diag == "" {
		diag = "unknown error"
	}
	return Result{
		Result: "I'm having trouble responding. Please try again shortly.",
		Err:    diag,
	}
}

// FallbackText is the per-language substitute used when an image-analysis
// section is missing from the model reply.
func FallbackText(lang Language) string {
	switch lang {
	case LanguageTamil:
		return "இந்த மொழியில் பகுப்பாய்வு எதுவும் கிடைக்கவில்லை."
	case LanguageHindi:
		return "इस भाषा में कोई विश्लेषण उपलब्ध नहीं है।"
	default:
		return "No analysis available in this language."
	}
}

// ChatFallbackText is the per-language substitute for a missing chat section.
func ChatFallbackText(lang Language) string {
	switch lang {
	case LanguageTamil:
		return "மன்னிக்கவும், இந்த மொழியில் பதிலைத் தயாரிக்க முடியவில்லை."
	case LanguageHindi:
		return "क्षमा करें, इस भाषा में उत्तर तैयार नहीं किया जा सका।"
	default:
		return "Sorry, I could not prepare an answer in this language."
	}
}

// Greeting is the fixed first message of the chat transcript.
const Greeting = "Hello! I'm your AI medical assistant. I can help with health questions, medicine info, and wellness tips. How can I assist?"
