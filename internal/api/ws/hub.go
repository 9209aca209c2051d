package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Inbound and outbound actions.
const (
	ActionPlace = "place"
	ActionState = "state"
	ActionError = "error"
)

type message struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

type placeData struct {
	I *int `json:"i"`
	J *int `json:"j"`
}

const (
	// writeWait is how long one frame may take to reach the peer.
	writeWait = 10 * time.Second

	// sendBuffer is how many frames may queue for a client before it is
	// dropped as too slow.
	sendBuffer = 64
)

// client owns one connection. Frames are queued on send and written by
// writePump, the only goroutine that writes to conn.
type client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
}

func encode(action string, data interface{}) ([]byte, error) {
	return json.Marshal(gin.H{"action": action, "data": data})
}

// enqueue never blocks. It reports false when the client is closed or its
// queue is full.
func (c *client) enqueue(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

func (c *client) reply(action string, data interface{}) {
	frame, err := encode(action, data)
	if err != nil {
		return
	}
	if !c.enqueue(frame) {
		c.close()
	}
}

// close stops writePump and unblocks any write or read in progress.
func (c *client) close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

func (c *client) writePump() {
	defer c.close()
	for {
		select {
		case <-c.done:
			return
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		}
	}
}

type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*client]struct{}
	roomManager RoomManager
	log         *zap.Logger
}

func NewHub(roomManager RoomManager, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		rooms:       make(map[string]map[*client]struct{}),
		roomManager: roomManager,
		log:         log.Named("ws"),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Hub) join(roomCode string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*client]struct{})
	}
	h.rooms[roomCode][c] = struct{}{}
}

func (h *Hub) leave(roomCode string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}
	delete(clients, c)
	if len(clients) == 0 {
		delete(h.rooms, roomCode)
	}
}

// Watchers reports how many connections follow a room.
func (h *Hub) Watchers(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomCode])
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	rm, ok := h.roomManager.Get(roomCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("upgrade failed", zap.String("room", roomCode), zap.Error(err))
		return
	}
	log := h.log.With(zap.String("room", roomCode), zap.String("remote", c.Request.RemoteAddr))

	cl := newClient(conn)
	go cl.writePump()
	h.join(roomCode, cl)
	log.Debug("connected", zap.Int("watchers", h.Watchers(roomCode)))
	defer func() {
		h.leave(roomCode, cl)
		cl.close()
		log.Debug("disconnected")
	}()

	cl.reply(ActionState, rm.View())

	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("read failed", zap.Error(err))
			}
			return
		}

		switch msg.Action {
		case ActionPlace:
			h.handlePlace(roomCode, cl, msg.Data, log)
		case ActionState:
			rm, ok := h.roomManager.Get(roomCode)
			if !ok {
				cl.reply(ActionError, gin.H{"error": "room not found"})
				continue
			}
			cl.reply(ActionState, rm.View())
		default:
			log.Debug("unknown action", zap.String("action", msg.Action))
			cl.reply(ActionError, gin.H{"error": "unknown action " + msg.Action})
		}
	}
}

// handlePlace applies a placement for the current player. Success reaches
// the sender through the room broadcast; failures go to the sender only.
func (h *Hub) handlePlace(roomCode string, cl *client, raw json.RawMessage, log *zap.Logger) {
	var data placeData
	if err := json.Unmarshal(raw, &data); err != nil || data.I == nil || data.J == nil {
		cl.reply(ActionError, gin.H{"error": "place needs integer i and j"})
		return
	}

	rm, ok := h.roomManager.Get(roomCode)
	if !ok {
		cl.reply(ActionError, gin.H{"error": "room not found"})
		return
	}

	if _, err := h.roomManager.Place(rm, *data.I, *data.J); err != nil {
		log.Debug("place rejected", zap.Error(err))
		cl.reply(ActionError, gin.H{"error": err.Error()})
	}
}

// Broadcast queues a frame for every client in the room without waiting on
// any of them. A client whose queue is full is closed and removed.
func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	if h == nil {
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.rooms[roomCode]))
	for cl := range h.rooms[roomCode] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()
	if len(clients) == 0 {
		return
	}

	frame, err := encode(action, data)
	if err != nil {
		h.log.Error("encode failed", zap.String("room", roomCode), zap.String("action", action), zap.Error(err))
		return
	}
	for _, cl := range clients {
		if !cl.enqueue(frame) {
			h.log.Warn("dropping slow client", zap.String("room", roomCode), zap.String("action", action))
			cl.close()
			h.leave(roomCode, cl)
		}
	}
}
