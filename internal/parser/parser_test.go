package parser

import (
	"testing"
)

var testFallbacks = Fallbacks{
	English: "english fallback",
	Tamil:   "tamil fallback",
	Hindi:   "hindi fallback",
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Sections
	}{
		{
			name: "all three labels in order",
			raw:  "ENGLISH:\nTake one tablet every 8 hours after food.\nTAMIL:\nஉணவுக்குப் பிறகு 8 மணி நேரத்திற்கு ஒரு மாத்திரை.\nHINDI:\nभोजन के बाद हर 8 घंटे में एक गोली लें।",
			want: Sections{
				English: "Take one tablet every 8 hours after food.",
				Tamil:   "உணவுக்குப் பிறகு 8 மணி நேரத்திற்கு ஒரு மாத்திரை.",
				Hindi:   "भोजन के बाद हर 8 घंटे में एक गोली लें।",
			},
		},
		{
			name: "missing tamil section falls back",
			raw:  "ENGLISH:\nTake one pill daily.\nHINDI:\nएक गोली रोज़ लें।",
			want: Sections{
				English: "Take one pill daily.",
				Tamil:   "tamil fallback",
				Hindi:   "एक गोली रोज़ लें।",
			},
		},
		{
			name: "trailing section captures to end of string including newlines",
			raw:  "ENGLISH:\nParacetamol 500mg.\nHINDI:\nपेरासिटामोल 500mg।\nबुखार और दर्द के लिए।",
			want: Sections{
				English: "Paracetamol 500mg.",
				Tamil:   "tamil fallback",
				Hindi:   "पेरासिटामोल 500mg।\nबुखार और दर्द के लिए।",
			},
		},
		{
			name: "labels out of order",
			raw:  "HINDI:\nहिंदी उत्तर\nENGLISH:\nEnglish answer\nTAMIL:\nதமிழ் பதில்",
			want: Sections{
				English: "English answer",
				Tamil:   "தமிழ் பதில்",
				Hindi:   "हिंदी उत्तर",
			},
		},
		{
			name: "whitespace before colon and around bodies",
			raw:  "ENGLISH :\n  Cough syrup, 5ml twice daily.  \nTAMIL\t:\n  இருமல் மருந்து.  \nHINDI :\n  खांसी की दवा।  ",
			want: Sections{
				English: "Cough syrup, 5ml twice daily.",
				Tamil:   "இருமல் மருந்து.",
				Hindi:   "खांसी की दवा।",
			},
		},
		{
			name: "empty input falls back everywhere",
			raw:  "",
			want: Sections{
				English: "english fallback",
				Tamil:   "tamil fallback",
				Hindi:   "hindi fallback",
			},
		},
		{
			name: "label present but body empty falls back",
			raw:  "ENGLISH:\nTAMIL:\nமாத்திரை தகவல்\nHINDI:\n",
			want: Sections{
				English: "english fallback",
				Tamil:   "மாத்திரை தகவல்",
				Hindi:   "hindi fallback",
			},
		},
		{
			name: "unlabeled preamble is ignored",
			raw:  "Sure, here is the analysis you asked for.\n\nENGLISH:\nAmoxicillin capsules.\nTAMIL:\nஅமோக்ஸிசில்லின் காப்ஸ்யூல்கள்.\nHINDI:\nएमोक्सिसिलिन कैप्सूल।",
			want: Sections{
				English: "Amoxicillin capsules.",
				Tamil:   "அமோக்ஸிசில்லின் காப்ஸ்யூல்கள்.",
				Hindi:   "एमोक्सिसिलिन कैप्सूल।",
			},
		},
		{
			name: "multi-line english body stops at next label",
			raw:  "ENGLISH:\nLine one.\nLine two.\nLine three.\nTAMIL:\nதமிழ்",
			want: Sections{
				English: "Line one.\nLine two.\nLine three.",
				Tamil:   "தமிழ்",
				Hindi:   "hindi fallback",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw, DefaultLabels, testFallbacks)
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseCustomLabels(t *testing.T) {
	labels := Labels{English: "EN", Tamil: "TA", Hindi: "HI"}
	got := Parse("EN: hello\nTA: vanakkam\nHI: namaste", labels, testFallbacks)
	want := Sections{English: "hello", Tamil: "vanakkam", Hindi: "namaste"}
	if got != want {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}
