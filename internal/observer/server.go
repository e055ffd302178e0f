// Package observer streams search frames to browser renderers over
// websocket. Each client receives the latest frame on connect and every
// frame published afterwards; slow clients drop frames instead of stalling
// the tick loop.
package observer

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/gridpath/internal/driver"
)

// FrameMsg is the JSON message sent for every published frame. Cells holds
// one glyph per cell in row-major order (see gridgraph.Kind.Glyph).
type FrameMsg struct {
	Type     string  `json:"type"`
	Tick     uint64  `json:"tick"`
	State    string  `json:"state"`
	TPS      float64 `json:"tps"`
	Columns  int     `json:"columns"`
	Rows     int     `json:"rows"`
	Cells    string  `json:"cells"`
	Frontier []int   `json:"frontier,omitempty"`
	Path     []int   `json:"path,omitempty"`
}

// Server fans frames out to websocket clients. Publish may be called from
// the tick goroutine while handlers run on HTTP goroutines.
type Server struct {
	log *log.Logger

	upgrader websocket.Upgrader
	nextID   atomic.Uint64

	mu      sync.Mutex
	clients map[uint64]chan []byte
	last    []byte
	closed  bool
}

// NewServer returns a server with no clients. A nil logger writes to the
// standard logger's output.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(log.Writer(), "[observer] ", log.LstdFlags)
	}
	return &Server{
		log:     logger,
		clients: make(map[uint64]chan []byte),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

// Encode builds the message for f. Runs on the tick goroutine, so the grid
// is read while no tick is in progress.
func Encode(f driver.Frame) FrameMsg {
	g := f.Grid
	cells := make([]rune, 0, g.Len())
	for _, c := range g.Cells() {
		cells = append(cells, c.Kind.Glyph())
	}
	msg := FrameMsg{
		Type:    "FRAME",
		Tick:    f.Tick,
		State:   f.State.String(),
		TPS:     f.TPS,
		Columns: g.Columns(),
		Rows:    g.Rows(),
		Cells:   string(cells),
	}
	if f.Search != nil {
		if !f.State.Done() {
			msg.Frontier = f.Search.Traversal().Frontier()
		}
		msg.Path = f.Search.Path()
	}
	return msg
}

// Publish encodes f and fans it out. It is a driver.Sink.
func (s *Server) Publish(f driver.Frame) {
	b, err := json.Marshal(Encode(f))
	if err != nil {
		s.log.Printf("encode frame %d: %v", f.Tick, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = b
	for id, ch := range s.clients {
		select {
		case ch <- b:
		default:
			s.log.Printf("client O%d: dropped frame %d", id, f.Tick)
		}
	}
}

// Clients returns the number of connected clients.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Close disconnects every client and rejects new ones.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, ch := range s.clients {
		close(ch)
		delete(s.clients, id)
	}
}

func (s *Server) join() (uint64, chan []byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, nil, false
	}
	id := s.nextID.Add(1)
	ch := make(chan []byte, 16)
	if s.last != nil {
		ch <- s.last
	}
	s.clients[id] = ch
	return id, ch, true
}

func (s *Server) leave(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.clients[id]; ok {
		close(ch)
		delete(s.clients, id)
	}
}

// WSHandler upgrades loopback requests to websocket and streams frames
// until the peer disconnects or the server is closed. Other remotes get 403.
func (s *Server) WSHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}

		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		id, out, ok := s.join()
		if !ok {
			_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), time.Now().Add(time.Second))
			return
		}
		defer s.leave(id)
		s.log.Printf("client O%d connected from %s", id, r.RemoteAddr)

		// Reader goroutine: the client sends nothing we use, but reading is
		// how a close from the peer is noticed.
		gone := make(chan struct{})
		go func() {
			defer close(gone)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-gone:
				return
			case b, ok := <-out:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"), time.Now().Add(time.Second))
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
					return
				}
			}
		}
	}
}

func isLoopbackRemote(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
