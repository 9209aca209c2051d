package room

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"encircle/internal/config"
	"encircle/internal/game"
	"encircle/internal/shared"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrTooManyRooms = errors.New("too many rooms")
	ErrBadOptions   = errors.New("bad room options")
)

type Store interface {
	GetRoom(code string) (*shared.Room, bool)
	SaveRoom(r *shared.Room)
	DeleteRoom(code string) bool
	ListRooms() []*shared.Room
	Len() int
}

// CreateOptions overrides the configured board size and player names for a
// new room. Zero values keep the configured defaults.
type CreateOptions struct {
	Rows int
	Cols int
	Blue string
	Red  string
}

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
	log   *zap.Logger
	now   func() time.Time

	// create serializes room creation so the room cap holds.
	create sync.Mutex
}

func NewManager(s Store, cfg config.Config, hub Broadcaster, log *zap.Logger) *Manager {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		store: s,
		cfg:   cfg,
		hub:   hub,
		log:   log.Named("room"),
		now:   time.Now,
	}
}

// SetHub attaches the broadcaster once it exists; the hub itself needs the
// manager to route inbound messages.
func (m *Manager) SetHub(hub Broadcaster) {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	m.hub = hub
}

func (m *Manager) newGame(opts CreateOptions) (*game.Game, error) {
	rows, cols := m.cfg.Board.Rows, m.cfg.Board.Cols
	if opts.Rows > 0 {
		rows = opts.Rows
	}
	if opts.Cols > 0 {
		cols = opts.Cols
	}
	blue, red := m.cfg.Players.Blue, m.cfg.Players.Red
	if opts.Blue != "" {
		blue = opts.Blue
	}
	if opts.Red != "" {
		red = opts.Red
	}
	if rows < config.MinBoardSize || cols < config.MinBoardSize || rows > config.MaxBoardSize || cols > config.MaxBoardSize {
		return nil, fmt.Errorf("%w: board %dx%d outside %d..%d", ErrBadOptions, cols, rows, config.MinBoardSize, config.MaxBoardSize)
	}
	return game.New(rows, cols, game.WithNames(blue, red))
}

func (m *Manager) CreateRoom(opts CreateOptions) (*shared.Room, error) {
	g, err := m.newGame(opts)
	if err != nil {
		return nil, err
	}

	m.create.Lock()
	defer m.create.Unlock()

	if n := m.store.Len(); n >= m.cfg.Rooms.Max {
		return nil, fmt.Errorf("%w: %d of %d in use", ErrTooManyRooms, n, m.cfg.Rooms.Max)
	}

	code := randCode(6)
	for {
		if _, taken := m.store.GetRoom(code); !taken {
			break
		}
		code = randCode(6)
	}

	r := shared.NewRoom(code, g, m.now())
	m.store.SaveRoom(r)
	m.log.Info("room created",
		zap.String("room", r.Code),
		zap.Stringer("id", r.ID),
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()),
	)
	return r, nil
}

func (m *Manager) Get(code string) (*shared.Room, bool) {
	return m.store.GetRoom(code)
}

// Find is Get with an error for unknown codes.
func (m *Manager) Find(code string) (*shared.Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, code)
	}
	return r, nil
}

// Place puts a point for the player whose turn it is and tells every
// renderer in the room about it. The returned state is the one taken right
// after this placement. Broadcasts go out while the room is still locked, so
// renderers see point-placed frames in move order.
func (m *Manager) Place(r *shared.Room, i, j int) (PointPlaced, error) {
	var placed PointPlaced
	err := r.Do(m.now(), func(g *game.Game) error {
		res, err := g.Play(i, j)
		if err != nil {
			return err
		}
		placed = PointPlaced{Result: res, State: g.Snapshot()}

		m.hub.Broadcast(r.Code, ActionPointPlaced, placed)
		if res.ScoreDelta > 0 {
			m.log.Info("encircled",
				zap.String("room", r.Code),
				zap.Stringer("player", res.Player),
				zap.Int("captured", res.ScoreDelta),
				zap.Int("borders", len(res.NewBorders)),
			)
			m.hub.Broadcast(r.Code, ActionEncircled, Encircled{
				Player:   res.Player,
				Borders:  res.NewBorders,
				Captured: res.Captured,
				Scores:   g.Scores(),
			})
		}
		return nil
	})
	if err != nil {
		m.log.Debug("placement rejected", zap.String("room", r.Code), zap.Error(err))
		return PointPlaced{}, err
	}
	return placed, nil
}

// Reset starts the room over on an empty board of the same size with the
// same players.
func (m *Manager) Reset(r *shared.Room) (game.Snapshot, error) {
	cur := r.Snapshot()
	g, err := game.New(cur.Rows, cur.Cols, game.WithNames(cur.Names[game.Blue], cur.Names[game.Red]))
	if err != nil {
		return game.Snapshot{}, err
	}
	state := g.Snapshot()
	r.Replace(g, m.now())

	m.log.Info("room reset", zap.String("room", r.Code))
	m.hub.Broadcast(r.Code, ActionReset, state)
	return state, nil
}

// Sweep closes every room idle for longer than the configured TTL and
// returns how many were closed.
func (m *Manager) Sweep(now time.Time) int {
	closed := 0
	for _, r := range m.store.ListRooms() {
		idle := now.Sub(r.IdleSince())
		if idle <= m.cfg.Rooms.TTL.Duration {
			continue
		}
		if !m.store.DeleteRoom(r.Code) {
			continue
		}
		closed++
		m.log.Info("room expired", zap.String("room", r.Code), zap.Duration("idle", idle))
		m.hub.Broadcast(r.Code, ActionRoomClosed, map[string]string{"code": r.Code})
	}
	return closed
}

// Run sweeps idle rooms every SweepInterval until ctx is done.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.Rooms.SweepInterval.Duration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := m.Sweep(now); n > 0 {
				m.log.Debug("sweep finished", zap.Int("closed", n))
			}
		}
	}
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
