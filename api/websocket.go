package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sanjaynv/stocklens/pkg/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins; restrict in production
	},
}

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Interval between simulated price ticks.
	tickPeriod = 2 * time.Second
)

// StreamMessage is a message sent over the price stream.
type StreamMessage struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Tick is a single streamed price update.
type Tick struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Timestamp string  `json:"timestamp"`
}

// Hub tracks open stream connections.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]bool
}

// NewHub creates an empty connection hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// ClientCount returns the number of connected stream clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// handleStream upgrades the connection and streams simulated price ticks for
// the requested symbol until the client disconnects.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	symbol := utils.NormalizeSymbol(r.URL.Query().Get("symbol"))
	if symbol == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Stock symbol is required"})
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	s.hub.add(conn)

	done := make(chan struct{})
	go s.streamReadPump(conn, done)
	go s.streamWritePump(conn, symbol, done)
}

// streamReadPump drains client messages and keeps the pong deadline fresh.
func (s *Server) streamReadPump(conn *websocket.Conn, done chan struct{}) {
	defer func() {
		close(done)
		s.hub.remove(conn)
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
	}
}

// streamWritePump emits a tick every tickPeriod, walking the price from the
// symbol's current analysis price.
func (s *Server) streamWritePump(conn *websocket.Conn, symbol string, done chan struct{}) {
	pinger := time.NewTicker(pingPeriod)
	ticker := time.NewTicker(tickPeriod)
	defer func() {
		pinger.Stop()
		ticker.Stop()
		conn.Close()
	}()

	price := s.startingPrice(symbol)
	if !s.writeMessage(conn, StreamMessage{Type: "tick", Data: Tick{
		Symbol: symbol, Price: price, Timestamp: time.Now().Format(time.RFC3339),
	}}) {
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			price = s.analyzer.Tick(price)
			if !s.writeMessage(conn, StreamMessage{Type: "tick", Data: Tick{
				Symbol: symbol, Price: price, Timestamp: time.Now().Format(time.RFC3339),
			}}) {
				return
			}
		case <-pinger.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *Server) writeMessage(conn *websocket.Conn, msg StreamMessage) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("WebSocket marshal error: %v", err)
		return false
	}
	return conn.WriteMessage(websocket.TextMessage, data) == nil
}

// startingPrice seeds the walk from the last chart point so the stream lines
// up with what the dashboard already shows.
func (s *Server) startingPrice(symbol string) float64 {
	series, err := s.analyzer.Chart(context.Background(), symbol)
	if err == nil && len(series) > 0 {
		return series[len(series)-1].Price
	}
	return 100
}
