package filetype

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		ext      string
		expected Kind
	}{
		{"jpg", Image},
		{"jpeg", Image},
		{"png", Image},
		{"mp4", Video},
		{"mov", Video},
		{"mp3", Audio},
		{"pdf", PDF},
		{"txt", Unsupported},
		{"gif", Unsupported},
		{"wav", Unsupported},
		{"docx", Unsupported},
		{"", Unsupported},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := Classify(tt.ext); got != tt.expected {
				t.Errorf("Classify(%q) = %v, expected %v", tt.ext, got, tt.expected)
			}
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	for _, ext := range SupportedExtensions {
		upper := strings.ToUpper(ext)
		if Classify(upper) == Unsupported {
			t.Errorf("Classify(%q) = Unsupported, expected supported kind", upper)
		}
		mixed := strings.ToUpper(ext[:1]) + ext[1:]
		if Classify(mixed) != Classify(ext) {
			t.Errorf("Classify(%q) != Classify(%q)", mixed, ext)
		}
	}
}

func TestClassifyLeadingDot(t *testing.T) {
	tests := []struct {
		ext      string
		expected Kind
	}{
		{".jpg", Image},
		{".MOV", Video},
		{".Pdf", PDF},
		{".mp3", Audio},
		{".txt", Unsupported},
	}

	for _, tt := range tests {
		if got := Classify(tt.ext); got != tt.expected {
			t.Errorf("Classify(%q) = %v, expected %v", tt.ext, got, tt.expected)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{Image, "image"},
		{Video, "video"},
		{Audio, "audio"},
		{PDF, "pdf"},
		{Unsupported, "unsupported"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind.String() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestDialogPattern(t *testing.T) {
	pattern := DialogPattern()

	for _, ext := range SupportedExtensions {
		if !strings.Contains(pattern, "*."+ext) {
			t.Errorf("DialogPattern() missing extension %q: %s", ext, pattern)
		}
	}

	if strings.Contains(pattern, " ") {
		t.Errorf("DialogPattern() contains spaces: %s", pattern)
	}
}
