// Package monitor serves a live JSON view of the viewer state over
// WebSocket, with a small embedded HTML page for watching it in a browser.
package monitor

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Snapshot is the viewer state published to connected clients.
type Snapshot struct {
	Model     string  `json:"model"`
	Vertices  int     `json:"vertices"`
	Triangles int     `json:"triangles"`
	Hovered   string  `json:"hovered,omitempty"`
	Selected  string  `json:"selected,omitempty"`
	BaseColor string  `json:"baseColor,omitempty"`
	Opacity   float32 `json:"opacity"`
	Wireframe bool    `json:"wireframe"`
	FPS       float64 `json:"fps"`
}

// Server broadcasts snapshots to all connected WebSocket clients.
type Server struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	last    []byte
}

func NewServer() *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// Handler returns the HTTP handler serving the status page and the
// WebSocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.servePage)
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

// ListenAndServe runs the HTTP server on addr. It blocks, so run it on its
// own goroutine.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("monitor listening on http://%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("monitor: upgrade: %v", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	// New clients immediately get the latest state.
	if s.last != nil {
		_ = conn.WriteMessage(websocket.TextMessage, s.last)
	}
	s.mu.Unlock()

	// Clients never send data; the read loop processes control frames and
	// notices when the peer goes away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.drop(conn)
				return
			}
		}
	}()
}

func (s *Server) drop(conn *websocket.Conn) {
	conn.Close()
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
}

// Publish serialises the snapshot and broadcasts it. Clients whose writes
// fail are dropped.
func (s *Server) Publish(snap Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("monitor: marshal: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = data
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

const page = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>glbview monitor</title>
<style>
  body { font-family: monospace; background: #16171a; color: #d8d8d8; padding: 2em; }
  td { padding: 0.2em 1em 0.2em 0; }
  #swatch { display: inline-block; width: 1em; height: 1em; vertical-align: middle; border: 1px solid #555; }
</style>
</head>
<body>
<h2>glbview</h2>
<table>
  <tr><td>model</td><td id="model">—</td></tr>
  <tr><td>vertices</td><td id="vertices">0</td></tr>
  <tr><td>triangles</td><td id="triangles">0</td></tr>
  <tr><td>hovered</td><td id="hovered">—</td></tr>
  <tr><td>selected</td><td id="selected">—</td></tr>
  <tr><td>base color</td><td><span id="swatch"></span> <span id="baseColor">—</span></td></tr>
  <tr><td>opacity</td><td id="opacity">1</td></tr>
  <tr><td>wireframe</td><td id="wireframe">false</td></tr>
  <tr><td>fps</td><td id="fps">0</td></tr>
</table>
<script>
var ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = function (ev) {
  var s = JSON.parse(ev.data);
  document.getElementById("model").textContent = s.model || "—";
  document.getElementById("vertices").textContent = s.vertices;
  document.getElementById("triangles").textContent = s.triangles;
  document.getElementById("hovered").textContent = s.hovered || "—";
  document.getElementById("selected").textContent = s.selected || "—";
  document.getElementById("baseColor").textContent = s.baseColor || "—";
  document.getElementById("swatch").style.background = s.baseColor || "transparent";
  document.getElementById("opacity").textContent = s.opacity.toFixed(2);
  document.getElementById("wireframe").textContent = s.wireframe;
  document.getElementById("fps").textContent = s.fps.toFixed(0);
};
</script>
</body>
</html>
`
