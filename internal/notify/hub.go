package notify

import (
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event is the wire format pushed to connected clients.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// conn is the subset of *websocket.Conn the hub uses, extracted so tests
// can record deliveries without a network.
type conn interface {
	WriteJSON(v any) error
	Close() error
}

// Hub fans notification events out to connected websocket clients.
// Users are keyed by email; admin connections receive every admin event.
// Sends are best-effort: a failed write drops the connection.
type Hub struct {
	mu     sync.Mutex
	users  map[string][]conn
	admins []conn
	log    *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{users: make(map[string][]conn), log: log}
}

// AddUser registers a user connection under their email.
func (h *Hub) AddUser(email string, c *websocket.Conn) {
	h.addUser(email, c)
}

// AddAdmin registers an admin connection.
func (h *Hub) AddAdmin(c *websocket.Conn) {
	h.addAdmin(c)
}

// Remove detaches a connection from whichever lists hold it.
func (h *Hub) Remove(c *websocket.Conn) {
	h.remove(c)
}

func (h *Hub) addUser(email string, c conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.users[email] = append(h.users[email], c)
}

func (h *Hub) addAdmin(c conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.admins = append(h.admins, c)
}

func (h *Hub) remove(c conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.admins = without(h.admins, c)
	for email, conns := range h.users {
		conns = without(conns, c)
		if len(conns) == 0 {
			delete(h.users, email)
		} else {
			h.users[email] = conns
		}
	}
}

// NotifyUser pushes an event to every connection the user has open.
func (h *Hub) NotifyUser(email, eventType string, data any) {
	h.mu.Lock()
	conns := append([]conn(nil), h.users[email]...)
	h.mu.Unlock()
	h.send(conns, Event{Type: eventType, Data: data})
}

// NotifyAdmins pushes an event to all connected admins.
func (h *Hub) NotifyAdmins(eventType string, data any) {
	h.mu.Lock()
	conns := append([]conn(nil), h.admins...)
	h.mu.Unlock()
	h.send(conns, Event{Type: eventType, Data: data})
}

func (h *Hub) send(conns []conn, ev Event) {
	for _, c := range conns {
		if err := c.WriteJSON(ev); err != nil {
			h.log.Debug("dropping dead websocket connection", zap.Error(err))
			h.remove(c)
			_ = c.Close()
		}
	}
}

// Counts reports connected user and admin connection totals.
func (h *Hub) Counts() (users, admins int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, conns := range h.users {
		users += len(conns)
	}
	return users, len(h.admins)
}

func without(conns []conn, target conn) []conn {
	out := conns[:0]
	for _, c := range conns {
		if c != target {
			out = append(out, c)
		}
	}
	return out
}
