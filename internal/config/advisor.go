package config

import (
	"time"

	"github.com/lgbarn/chessrules-go/internal/advisor"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// AdvisorConfig holds settings for the move-suggestion service.
type AdvisorConfig struct {
	// URL of the engine service
	URL string

	// Timeout bounds each request
	Timeout time.Duration

	// Preset is the id of the selected difficulty preset, or CustomPresetID
	// once an option has been changed by hand
	Preset string

	// Options sent with each request
	Options advisor.EngineOptions

	// Offline falls back to the local suggester when the service fails
	Offline bool
}

// NewAdvisorConfig creates an AdvisorConfig with default values.
func NewAdvisorConfig() *AdvisorConfig {
	return &AdvisorConfig{
		URL:     advisor.DefaultBaseURL,
		Timeout: 10 * time.Second,
		Preset:  DefaultPresetID,
		Offline: true,
	}
}

// Option ranges accepted by the engine service.
const (
	MaxSkillLevel = 20
	MaxDepth      = 30
	MinElo        = 1320
	MaxElo        = 3190
)

func validateOptions(o advisor.EngineOptions) error {
	switch {
	case o.SkillLevel < 0 || o.SkillLevel > MaxSkillLevel:
		return errors.Wrapf(errors.ErrInvalidConfig, "skill level %d outside 0..%d", o.SkillLevel, MaxSkillLevel)
	case o.Depth < 1 || o.Depth > MaxDepth:
		return errors.Wrapf(errors.ErrInvalidConfig, "depth %d outside 1..%d", o.Depth, MaxDepth)
	case o.MoveTime <= 0:
		return errors.Wrapf(errors.ErrInvalidConfig, "move time %dms", o.MoveTime)
	case o.UseElo && (o.EloRating < MinElo || o.EloRating > MaxElo):
		return errors.Wrapf(errors.ErrInvalidConfig, "elo %d outside %d..%d", o.EloRating, MinElo, MaxElo)
	case o.Threads < 1:
		return errors.Wrapf(errors.ErrInvalidConfig, "threads %d", o.Threads)
	case o.Hash < 1:
		return errors.Wrapf(errors.ErrInvalidConfig, "hash %dMB", o.Hash)
	}
	return nil
}
