package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"encircle/internal/game"
	"encircle/internal/room"
)

// writeError maps engine and session errors to status codes.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrCellOccupied):
		status = http.StatusConflict
	case errors.Is(err, game.ErrOutOfBounds),
		errors.Is(err, game.ErrUnknownPlayer),
		errors.Is(err, room.ErrBadOptions):
		status = http.StatusBadRequest
	case errors.Is(err, room.ErrTooManyRooms):
		status = http.StatusServiceUnavailable
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}

func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
			return
		}
		r, err := rm.CreateRoom(room.CreateOptions{
			Rows: req.Rows,
			Cols: req.Cols,
			Blue: req.Blue,
			Red:  req.Red,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"roomCode": r.Code, "room": r.View()})
	}
}

func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := rm.Find(c.Param("code"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": r.View()})
	}
}

func BordersHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := rm.Find(c.Param("code"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"borders": r.Borders()})
	}
}

func PlaceHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
			return
		}
		r, err := rm.Find(c.Param("code"))
		if err != nil {
			writeError(c, err)
			return
		}
		placed, err := rm.Place(r, *req.I, *req.J)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, placed)
	}
}

func ResetHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := rm.Find(c.Param("code"))
		if err != nil {
			writeError(c, err)
			return
		}
		state, err := rm.Reset(r)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": state})
	}
}
