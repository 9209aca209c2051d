package shared

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"encircle/internal/game"
)

// Room is one hosted game session. All access to Game goes through the
// room's lock.
type Room struct {
	mu sync.Mutex

	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	game *game.Game
}

func NewRoom(code string, g *game.Game, now time.Time) *Room {
	return &Room{
		ID:        uuid.New(),
		Code:      code,
		CreatedAt: now,
		UpdatedAt: now,
		game:      g,
	}
}

// Do runs fn with exclusive access to the room's game and marks the room as
// updated at now.
func (r *Room) Do(now time.Time, fn func(g *game.Game) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := fn(r.game); err != nil {
		return err
	}
	r.UpdatedAt = now
	return nil
}

// Replace swaps in a fresh game.
func (r *Room) Replace(g *game.Game, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.game = g
	r.UpdatedAt = now
}

func (r *Room) Snapshot() game.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.Snapshot()
}

func (r *Room) Borders() []game.Border {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.Borders()
}

// IdleSince reports the last time the room changed.
func (r *Room) IdleSince() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.UpdatedAt
}

// View is the JSON shape of a room sent to renderers.
type View struct {
	ID        uuid.UUID     `json:"id"`
	Code      string        `json:"code"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	State     game.Snapshot `json:"state"`
}

func (r *Room) View() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return View{
		ID:        r.ID,
		Code:      r.Code,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		State:     r.game.Snapshot(),
	}
}
