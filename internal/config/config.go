package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"badgagotchi/internal/pet"
)

// Hosts that can drive the simulation
const (
	HostTerminal = "tui"
	HostBadge    = "badge"
)

// Keys the terminal host handles itself
var reservedKeys = map[string]bool{
	"q":      true,
	"ctrl+c": true,
	"m":      true,
	"r":      true,
}

type Config struct {
	Host          string        `yaml:"host"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	LogFile       string        `yaml:"log_file"`
	Score         ScoreConfig   `yaml:"score"`
	Pet           PetConfig     `yaml:"pet"`
	Keys          KeyConfig     `yaml:"keys"`
}

type ScoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	AppName string `yaml:"app_name"`
}

type PetConfig struct {
	Initial          int            `yaml:"initial"`
	Decay            DecayConfig    `yaml:"decay"`
	Gain             GainConfig     `yaml:"gain"`
	PlayCost         PlayCostConfig `yaml:"play_cost"`
	LowStatThreshold int            `yaml:"low_stat_threshold"`
	LowStatPenalty   float64        `yaml:"low_stat_penalty"`
	BackgroundScale  float64        `yaml:"background_scale"`
}

// DecayConfig is in points per second
type DecayConfig struct {
	Hunger    float64 `yaml:"hunger"`
	Happiness float64 `yaml:"happiness"`
	Energy    float64 `yaml:"energy"`
}

type GainConfig struct {
	Feed int `yaml:"feed"`
	Play int `yaml:"play"`
	Rest int `yaml:"rest"`
}

type PlayCostConfig struct {
	Energy int `yaml:"energy"`
	Hunger int `yaml:"hunger"`
}

// KeyConfig lists the terminal keys bound to each action, keyed by action
// name ("feed", "play", "rest" or its alias "sleep")
type KeyConfig map[string][]string

// DefaultPath returns ~/.config/badgagotchi/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "badgagotchi", "config.yaml"), nil
}

// Load reads the YAML config at path on top of the defaults. A missing file
// is not an error. Environment variables override the file.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if env := os.Getenv("BADGAGOTCHI_HOST"); env != "" {
		cfg.Host = strings.ToLower(strings.TrimSpace(env))
	}
	if env := os.Getenv("BADGAGOTCHI_SCORE_APP"); env != "" {
		cfg.Score.AppName = env
	}
	if env := os.Getenv("BADGAGOTCHI_LOG_FILE"); env != "" {
		cfg.LogFile = env
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	r := pet.DefaultRules()
	return &Config{
		Host:          HostTerminal,
		FrameInterval: 50 * time.Millisecond,
		LogFile:       "badgagotchi.log",
		Score: ScoreConfig{
			Enabled: true,
			AppName: "badgagotchi",
		},
		Pet: PetConfig{
			Initial: r.Initial,
			Decay: DecayConfig{
				Hunger:    r.HungerDecay,
				Happiness: r.HappinessDecay,
				Energy:    r.EnergyDecay,
			},
			Gain: GainConfig{
				Feed: r.FeedAmount,
				Play: r.PlayAmount,
				Rest: r.RestAmount,
			},
			PlayCost: PlayCostConfig{
				Energy: r.PlayEnergyCost,
				Hunger: r.PlayHungerCost,
			},
			LowStatThreshold: r.LowStatThreshold,
			LowStatPenalty:   r.LowStatPenalty,
			BackgroundScale:  r.BackgroundScale,
		},
		Keys: KeyConfig{
			"feed": {"up", "k", "f"},
			"play": {"right", "l", "p"},
			"rest": {"enter", " ", "s"},
		},
	}
}

// Rules converts the pet section into simulation rules
func (c *Config) Rules() pet.Rules {
	return pet.Rules{
		Initial:          c.Pet.Initial,
		HungerDecay:      c.Pet.Decay.Hunger,
		HappinessDecay:   c.Pet.Decay.Happiness,
		EnergyDecay:      c.Pet.Decay.Energy,
		FeedAmount:       c.Pet.Gain.Feed,
		PlayAmount:       c.Pet.Gain.Play,
		RestAmount:       c.Pet.Gain.Rest,
		PlayEnergyCost:   c.Pet.PlayCost.Energy,
		PlayHungerCost:   c.Pet.PlayCost.Hunger,
		LowStatThreshold: c.Pet.LowStatThreshold,
		LowStatPenalty:   c.Pet.LowStatPenalty,
		BackgroundScale:  c.Pet.BackgroundScale,
	}
}

// KeyMap returns the terminal key bindings as key -> action. Load has
// already rejected bindings that do not parse.
func (c *Config) KeyMap() map[string]pet.Action {
	keys, err := c.Keys.bindings()
	if err != nil {
		return nil
	}
	return keys
}

func validate(cfg *Config) error {
	switch cfg.Host {
	case HostTerminal, HostBadge:
	default:
		return fmt.Errorf("unknown host %q (want %q or %q)", cfg.Host, HostTerminal, HostBadge)
	}
	if cfg.FrameInterval <= 0 {
		return fmt.Errorf("frame_interval must be positive, got %s", cfg.FrameInterval)
	}
	if cfg.Score.Enabled && cfg.Score.AppName == "" {
		return fmt.Errorf("score.app_name is required when score is enabled")
	}
	if err := cfg.Rules().Validate(); err != nil {
		return fmt.Errorf("pet: %w", err)
	}
	_, err := cfg.Keys.bindings()
	return err
}

// bindings parses the action names and maps every key to its action
func (k KeyConfig) bindings() (map[string]pet.Action, error) {
	names := make([]string, 0, len(k))
	for name := range k {
		names = append(names, name)
	}
	sort.Strings(names)

	keys := make(map[string]pet.Action)
	for _, name := range names {
		action, err := pet.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("keys.%s: %w", name, err)
		}
		for _, key := range k[name] {
			if reservedKeys[key] {
				return nil, fmt.Errorf("keys.%s: %q is reserved", name, key)
			}
			if other, ok := keys[key]; ok && other != action {
				return nil, fmt.Errorf("key %q bound to both %s and %s", key, other, action)
			}
			keys[key] = action
		}
	}

	bound := make(map[pet.Action]bool)
	for _, action := range keys {
		bound[action] = true
	}
	for _, action := range []pet.Action{pet.ActionFeed, pet.ActionPlay, pet.ActionRest} {
		if !bound[action] {
			return nil, fmt.Errorf("keys.%s needs at least one key", action)
		}
	}
	return keys, nil
}
