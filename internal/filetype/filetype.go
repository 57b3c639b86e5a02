package filetype

import "strings"

// Kind identifies the handling strategy for a selected file.
type Kind int

const (
	Unsupported Kind = iota
	Image
	Video
	Audio
	PDF
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Image:
		return "image"
	case Video:
		return "video"
	case Audio:
		return "audio"
	case PDF:
		return "pdf"
	default:
		return "unsupported"
	}
}

// SupportedExtensions is the set of extensions offered by the open dialog.
var SupportedExtensions = []string{"jpg", "jpeg", "png", "mp4", "mp3", "mov", "pdf"}

// Classify maps a file extension to its handling strategy. The extension
// is matched case-insensitively and may carry a leading dot.
func Classify(ext string) Kind {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))

	switch ext {
	case "jpg", "jpeg", "png":
		return Image
	case "mp4", "mov":
		return Video
	case "mp3":
		return Audio
	case "pdf":
		return PDF
	default:
		return Unsupported
	}
}

// DialogPattern returns the open-dialog filter pattern for the supported
// extension set, e.g. "*.jpg;*.jpeg;...".
func DialogPattern() string {
	patterns := make([]string, len(SupportedExtensions))
	for i, ext := range SupportedExtensions {
		patterns[i] = "*." + ext
	}
	return strings.Join(patterns, ";")
}
