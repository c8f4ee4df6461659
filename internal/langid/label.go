package langid

// Label is the routing decision for a message.
type Label string

const (
	English     Label = "en"
	German      Label = "de"
	Unsupported Label = "unsupported"
)

// Display returns the human-facing tag shown next to a message.
func (l Label) Display() string {
	switch l {
	case English:
		return "🇺🇸 English"
	case German:
		return "🇩🇪 German"
	default:
		return "❓ Unknown"
	}
}

// Supported reports whether a persona exists for the label.
func (l Label) Supported() bool {
	return l == English || l == German
}

// fromCode maps a two-letter language code to a Label.
func fromCode(code string) (Label, bool) {
	switch code {
	case "en":
		return English, true
	case "de":
		return German, true
	default:
		return Unsupported, false
	}
}
