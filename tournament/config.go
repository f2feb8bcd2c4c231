package tournament

import (
	"fmt"
	"os"

	"draughts/engine"
	"draughts/policy"

	"gopkg.in/yaml.v3"
)

// PlayerConfig names one entrant and the policy it plays.
type PlayerConfig struct {
	Name   string `yaml:"name"`
	Policy string `yaml:"policy"`
}

// Config drives a tournament run. Zero-valued fields fall back to defaults.
type Config struct {
	Players        []PlayerConfig `yaml:"players"`
	GamesPerPair   int            `yaml:"games_per_pair"`
	MaxMoves       int            `yaml:"max_moves"`
	Seed           uint64         `yaml:"seed"`
	MinimaxDepth   int            `yaml:"minimax_depth"`
	MCTSIterations int            `yaml:"mcts_iterations"`
	RolloutCap     int            `yaml:"rollout_cap"`
	OutputDir      string         `yaml:"output_dir"`
}

// DefaultConfig enters every policy once under its own name.
func DefaultConfig() Config {
	cfg := Config{
		GamesPerPair: 4,
		MaxMoves:     engine.MaxMoves,
		OutputDir:    "results",
	}
	for _, id := range policy.All() {
		cfg.Players = append(cfg.Players, PlayerConfig{Name: id.String(), Policy: id.String()})
	}
	return cfg
}

// LoadConfig reads a YAML tournament config, filling defaults for omitted
// fields.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := DefaultConfig()
	cfg.Players = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Players) == 0 {
		cfg.Players = DefaultConfig().Players
	}
	if cfg.GamesPerPair <= 0 {
		cfg.GamesPerPair = 4
	}
	if cfg.MaxMoves <= 0 {
		cfg.MaxMoves = engine.MaxMoves
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "results"
	}
	return cfg, nil
}

// Entrants resolves the configured players to engine players.
func (c Config) Entrants() ([]engine.Player, error) {
	players := make([]engine.Player, 0, len(c.Players))
	for _, pc := range c.Players {
		id, err := policy.ParseID(pc.Policy)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", pc.Name, err)
		}
		name := pc.Name
		if name == "" {
			name = id.String()
		}
		players = append(players, engine.Player{Name: name, Policy: id})
	}
	return players, nil
}

// Params collects the search-policy tuning for the dispatcher.
func (c Config) Params() policy.Params {
	return policy.Params{
		MinimaxDepth:   c.MinimaxDepth,
		MCTSIterations: c.MCTSIterations,
		RolloutCap:     c.RolloutCap,
	}
}
