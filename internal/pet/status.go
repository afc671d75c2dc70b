package pet

// Mood is the pet's most pressing feeling
type Mood int

const (
	MoodGreat Mood = iota
	MoodBored
	MoodTired
	MoodHungry
	MoodDead
)

// Status emojis
const (
	StatusEmojiHappy  = "😸"
	StatusEmojiHungry = "🙀"
	StatusEmojiSad    = "😿"
	StatusEmojiTired  = "😾"
	StatusEmojiDead   = "💀"
)

// Status returns the mood shown in the status line. A need shows once it
// drops below the rules' low stat threshold.
// Priority: Dead > Hungry > Tired > Bored > Great
func Status(s State, r Rules) Mood {
	switch {
	case !s.Alive:
		return MoodDead
	case s.Hunger < r.LowStatThreshold:
		return MoodHungry
	case s.Energy < r.LowStatThreshold:
		return MoodTired
	case s.Happiness < r.LowStatThreshold:
		return MoodBored
	default:
		return MoodGreat
	}
}

// Message returns the status line for the mood
func (m Mood) Message() string {
	switch m {
	case MoodDead:
		return MessageGameOver
	case MoodHungry:
		return MessageHungry
	case MoodTired:
		return MessageTired
	case MoodBored:
		return MessageBored
	default:
		return MessageGreat
	}
}

// Emoji returns the face for the mood
func (m Mood) Emoji() string {
	switch m {
	case MoodDead:
		return StatusEmojiDead
	case MoodHungry:
		return StatusEmojiHungry
	case MoodTired:
		return StatusEmojiTired
	case MoodBored:
		return StatusEmojiSad
	default:
		return StatusEmojiHappy
	}
}

// StatusWithLabel returns the emoji and message together for the UI
func StatusWithLabel(s State, r Rules) string {
	m := Status(s, r)
	return m.Emoji() + " " + m.Message()
}
