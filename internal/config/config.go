package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"encircle/internal/game"
)

type Board struct {
	Rows      int     `toml:"rows" json:"rows"`
	Cols      int     `toml:"cols" json:"cols"`
	HitRadius float64 `toml:"hit_radius" json:"hitRadius"`
}

type Players struct {
	Blue string `toml:"blue" json:"blue"`
	Red  string `toml:"red" json:"red"`
}

// Duration reads "30m"-style strings from TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Rooms struct {
	Max           int      `toml:"max" json:"max"`
	TTL           Duration `toml:"ttl" json:"ttl"`
	SweepInterval Duration `toml:"sweep_interval" json:"sweepInterval"`
}

type Log struct {
	Level       string `toml:"level" json:"level"`
	Development bool   `toml:"development" json:"development"`
}

type Config struct {
	HTTPAddr string  `toml:"http_addr" json:"httpAddr"`
	Board    Board   `toml:"board" json:"board"`
	Players  Players `toml:"players" json:"players"`
	Rooms    Rooms   `toml:"rooms" json:"rooms"`
	Log      Log     `toml:"log" json:"log"`
}

// Default returns the classic settings: a 22x38 board with
// Mino playing blue against Chen.
func Default() Config {
	return Config{
		HTTPAddr: ":8080",
		Board: Board{
			Rows:      game.DefaultRows,
			Cols:      game.DefaultCols,
			HitRadius: 0.4,
		},
		Players: Players{Blue: "Mino", Red: "Chen"},
		Rooms: Rooms{
			Max:           100,
			TTL:           Duration{30 * time.Minute},
			SweepInterval: Duration{time.Minute},
		},
		Log: Log{Level: "info"},
	}
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load builds the configuration from defaults, then the TOML file named by
// ENCIRCLE_CONFIG (if set), then individual environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("ENCIRCLE_CONFIG"); path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.Board.Rows = getenvInt("BOARD_ROWS", cfg.Board.Rows)
	cfg.Board.Cols = getenvInt("BOARD_COLS", cfg.Board.Cols)
	cfg.Board.HitRadius = getenvFloat("HIT_RADIUS", cfg.Board.HitRadius)
	cfg.Players.Blue = getenv("BLUE_NAME", cfg.Players.Blue)
	cfg.Players.Red = getenv("RED_NAME", cfg.Players.Red)
	cfg.Rooms.Max = getenvInt("MAX_ROOMS", cfg.Rooms.Max)
	cfg.Rooms.TTL.Duration = getenvDuration("ROOM_TTL", cfg.Rooms.TTL.Duration)
	cfg.Rooms.SweepInterval.Duration = getenvDuration("ROOM_SWEEP_INTERVAL", cfg.Rooms.SweepInterval.Duration)
	cfg.Log.Level = getenv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Development = getenvBool("LOG_DEV", cfg.Log.Development)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

var ErrInvalid = errors.New("invalid config")

// MinBoardSize is the smallest board on which a point can be encircled.
// MaxBoardSize bounds either side of a hosted board.
const (
	MinBoardSize = 3
	MaxBoardSize = 256
)

func (c *Config) Validate() error {
	switch {
	case c.Board.Rows < MinBoardSize || c.Board.Cols < MinBoardSize:
		return fmt.Errorf("%w: board %dx%d is smaller than %[4]dx%[4]d", ErrInvalid, c.Board.Cols, c.Board.Rows, MinBoardSize)
	case c.Board.Rows > MaxBoardSize || c.Board.Cols > MaxBoardSize:
		return fmt.Errorf("%w: board %dx%d is larger than %[4]dx%[4]d", ErrInvalid, c.Board.Cols, c.Board.Rows, MaxBoardSize)
	case c.Board.HitRadius <= 0 || c.Board.HitRadius > 0.5:
		return fmt.Errorf("%w: hit radius %v must be in (0, 0.5]", ErrInvalid, c.Board.HitRadius)
	case c.Rooms.Max <= 0:
		return fmt.Errorf("%w: max rooms must be positive", ErrInvalid)
	case c.Rooms.TTL.Duration <= 0 || c.Rooms.SweepInterval.Duration <= 0:
		return fmt.Errorf("%w: room ttl and sweep interval must be positive", ErrInvalid)
	}
	return nil
}
