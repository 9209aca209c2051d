package room

import "encircle/internal/game"

// Broadcaster pushes an action to every renderer watching a room. The room
// manager calls it with the room locked, so it must not block.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
}

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(string, string, interface{}) {}

// Actions sent to renderers.
const (
	ActionPointPlaced = "point-placed"
	ActionEncircled   = "encircled"
	ActionReset       = "reset"
	ActionRoomClosed  = "room-closed"
)

// PointPlaced is the payload of ActionPointPlaced. Frames from one room are
// sent in move order; a renderer that receives them over separate channels
// should order them by State.Moves.
type PointPlaced struct {
	Result game.PlaceResult `json:"result"`
	State  game.Snapshot    `json:"state"`
}

// Encircled is the payload of ActionEncircled, sent after a placement that
// captured at least one point.
type Encircled struct {
	Player   game.Player         `json:"player"`
	Borders  []game.Border       `json:"borders"`
	Captured []game.Coord        `json:"captured"`
	Scores   map[game.Player]int `json:"scores"`
}
