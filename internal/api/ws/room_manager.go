package ws

import (
	"encircle/internal/room"
	"encircle/internal/shared"
)

type RoomManager interface {
	Get(roomCode string) (*shared.Room, bool)
	Place(room *shared.Room, i, j int) (room.PointPlaced, error)
}
