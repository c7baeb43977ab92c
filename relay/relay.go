// Package relay is the realtime SOS hub: clients connect over a websocket,
// emit "sos" events, and every other connected client receives a "sos-alert"
// with the original payload. Nothing is persisted and delivery is best-effort.
package relay

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"oyow/logger"
)

const (
	EventSOS      = "sos"
	EventSOSAlert = "sos-alert"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

type broadcastMsg struct {
	// Sender is excluded from delivery; nil means deliver to everyone.
	Sender *Client
	Data   []byte
}

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	stop       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		stop:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if h.clients[c] {
				delete(h.clients, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				if c == m.Sender {
					continue
				}
				select {
				case c.Send <- m.Data:
				default:
					// Slow or dead peer must not hold up the rest.
					close(c.Send)
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()

		case <-h.stop:
			h.mu.Lock()
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.stop)
}

// Broadcast delivers an sos-alert to every connected client. Used by the HTTP
// SOS endpoint, which has no socket of its own.
func (h *Hub) Broadcast(payload json.RawMessage) {
	data, err := json.Marshal(envelope{Event: EventSOSAlert, Data: payload})
	if err != nil {
		return
	}
	h.broadcast <- broadcastMsg{Data: data}
}

// envelope is the wire format in both directions.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Log.Debug().Err(err).Msg("websocket upgrade failed")
			return
		}
		client := &Client{
			Conn: conn,
			Send: make(chan []byte, 256),
		}
		hub.register <- client
		logger.Log.Info().Str("remote", conn.RemoteAddr().String()).Msg("sos client connected")

		go writePump(client)
		go readPump(client, hub)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

func readPump(c *Client, hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.Conn.Close()
		logger.Log.Info().Msg("sos client disconnected")
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			break
		}

		var in envelope
		if err := json.Unmarshal(raw, &in); err != nil {
			logger.Log.Debug().Err(err).Msg("invalid relay payload")
			continue
		}
		if in.Event != EventSOS {
			logger.Log.Debug().Str("event", in.Event).Msg("unknown relay event")
			continue
		}

		out, err := json.Marshal(envelope{Event: EventSOSAlert, Data: in.Data})
		if err != nil {
			continue
		}
		logger.Log.Warn().RawJSON("payload", in.Data).Msg("SOS received over relay")
		hub.broadcast <- broadcastMsg{Sender: c, Data: out}
	}
}
