package models

// Mood is the categorical tag on a post. The codes below are the stable
// wire and storage form; emoji are display labels only.
type Mood string

const (
	MoodTech     Mood = "tech"
	MoodCreative Mood = "creative"
	MoodThought  Mood = "thought"
)

// DefaultMood applies when a post is created without an explicit mood.
const DefaultMood = MoodTech

// Moods lists every valid mood in display order.
var Moods = []Mood{MoodTech, MoodCreative, MoodThought}

// Valid reports whether m is a member of the mood enumeration.
func (m Mood) Valid() bool {
	switch m {
	case MoodTech, MoodCreative, MoodThought:
		return true
	}
	return false
}

// Emoji returns the display label for a mood, or an empty string for an
// unknown code.
func (m Mood) Emoji() string {
	switch m {
	case MoodTech:
		return "💻"
	case MoodCreative:
		return "🎨"
	case MoodThought:
		return "🤔"
	}
	return ""
}

func (m Mood) String() string { return string(m) }
