package pet

// Game constants
const (
	MaxStat = 100
	MinStat = 0

	InitialStat      = 70
	LowStatThreshold = 30 // Default point below which a need shows
	CriticalStat     = 15 // Below this the pet changes colour on the badge

	// Decay rates (points per second, foreground).
	// That is 8/5/4 points every 2.5s.
	HungerDecayRate    = 3.2
	HappinessDecayRate = 2.0
	EnergyDecayRate    = 1.6

	// Extra happiness loss per second while hungry or tired
	LowStatPenalty = 2.0

	// Minimised apps keep running at half speed
	BackgroundScale = 0.5

	FeedAmount     = 30
	PlayAmount     = 30
	RestAmount     = 30
	PlayEnergyCost = 10
	PlayHungerCost = 10
)

// Status messages
const (
	MessageHello    = "Hi There!"
	MessageFed      = "Yum!"
	MessagePlayed   = "Haha! Woo!"
	MessageRested   = "Zzz..."
	MessageHungry   = "I'm hungry!"
	MessageTired    = "So sleepy..."
	MessageBored    = "Urgh, I'm Bored!"
	MessageGreat    = "This is Great!"
	MessageGameOver = "Game over"
)

// Causes of death
const (
	CauseStarvation = "Starvation"
	CauseBoredom    = "Boredom"
	CauseExhaustion = "Exhaustion"
)
