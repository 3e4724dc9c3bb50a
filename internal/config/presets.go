package config

import (
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/chessrules-go/internal/advisor"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Preset ids.
const (
	DefaultPresetID = "beginner"
	CustomPresetID  = "custom"
)

// Preset is a named set of engine options.
type Preset struct {
	ID          string
	Label       string
	Description string
	Options     advisor.EngineOptions
}

// PresetOrder lists the built-in presets from weakest to strongest.
var PresetOrder = []string{"learner", "beginner", "club", "expert", "master"}

var builtinPresets = map[string]Preset{
	"learner": {
		ID: "learner", Label: "Just Learning",
		Description: "Minimal difficulty for learning the rules.",
		Options:     advisor.EngineOptions{SkillLevel: 0, Depth: 1, MoveTime: 500, Threads: 1, Hash: 64},
	},
	"beginner": {
		ID: "beginner", Label: "Beginner",
		Description: "Basic play, makes occasional mistakes.",
		Options:     advisor.EngineOptions{SkillLevel: 5, Depth: 5, MoveTime: 1000, Threads: 1, Hash: 64},
	},
	"club": {
		ID: "club", Label: "Club Player",
		Description: "Solid play, tactical.",
		Options:     advisor.EngineOptions{SkillLevel: 10, Depth: 10, MoveTime: 2000, UseElo: true, EloRating: 1500, Threads: 2, Hash: 128},
	},
	"expert": {
		ID: "expert", Label: "Expert",
		Description: "Strong play, hard to beat.",
		Options:     advisor.EngineOptions{SkillLevel: 15, Depth: 15, MoveTime: 3000, UseElo: true, EloRating: 2000, Threads: 2, Hash: 256},
	},
	"master": {
		ID: "master", Label: "Grandmaster",
		Description: "Maximum strength. Good luck.",
		Options:     advisor.EngineOptions{SkillLevel: 20, Depth: 20, MoveTime: 5000, UseElo: true, EloRating: 2800, Threads: 4, Hash: 512},
	},
}

// DefaultPresets returns a fresh copy of the built-in preset table.
func DefaultPresets() map[string]Preset {
	presets := make(map[string]Preset, len(builtinPresets))
	maps.Copy(presets, builtinPresets)
	return presets
}

// SelectPreset makes the preset with the given id current. Selecting
// CustomPresetID keeps the current options.
func (c *Config) SelectPreset(id string) error {
	if id == CustomPresetID {
		c.Advisor.Preset = id
		return nil
	}
	p, ok := c.Presets[id]
	if !ok {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown preset %q", id)
	}
	c.Advisor.Preset = id
	c.Advisor.Options = p.Options
	return nil
}

// UpdateOptions applies a change to the current options and switches the
// selection to CustomPresetID.
func (c *Config) UpdateOptions(update func(*advisor.EngineOptions)) {
	update(&c.Advisor.Options)
	c.Advisor.Preset = CustomPresetID
}

// SaveUserPreset stores the current options as a new preset and selects it.
func (c *Config) SaveUserPreset(label string) Preset {
	p := Preset{
		ID:          c.nextUserPresetID(),
		Label:       label,
		Description: "Custom configuration",
		Options:     c.Advisor.Options,
	}
	c.Presets[p.ID] = p
	c.Advisor.Preset = p.ID
	return p
}

// DeleteUserPreset removes a saved preset. Built-in presets cannot be
// deleted. Deleting the selected preset switches to CustomPresetID.
func (c *Config) DeleteUserPreset(id string) error {
	if _, builtin := builtinPresets[id]; builtin {
		return errors.Wrapf(errors.ErrInvalidConfig, "preset %q is built in", id)
	}
	if _, ok := c.Presets[id]; !ok {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown preset %q", id)
	}
	delete(c.Presets, id)
	if c.Advisor.Preset == id {
		c.Advisor.Preset = CustomPresetID
	}
	return nil
}

func (c *Config) nextUserPresetID() string {
	for n := 1; ; n++ {
		id := fmt.Sprintf("user-%d", n)
		if _, ok := c.Presets[id]; !ok {
			return id
		}
	}
}
