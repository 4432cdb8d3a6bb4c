// Package server exposes the renderer over HTTP: a one-shot render endpoint
// returning the finished image, and a websocket endpoint streaming per-region
// progress while the render runs.
package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kmorris/pathtracer/pkg/renderer"
	"github.com/kmorris/pathtracer/pkg/scene"
)

// Server handles web requests for the path tracer
type Server struct {
	port     int
	log      *zap.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a new web server
func NewServer(port int, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		port: port,
		log:  log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RenderRequest is a render request from the client
type RenderRequest struct {
	Scene    string `json:"scene"`    // Built-in scene name
	Width    int    `json:"width"`    // Image width (0 = scene setting)
	Height   int    `json:"height"`   // Image height (0 = scene setting)
	Samples  int    `json:"samples"`  // Samples per pixel (0 = scene setting)
	MaxDepth int    `json:"maxDepth"` // Maximum bounce depth (0 = scene setting)
	Workers  int    `json:"workers"`  // Worker count (0 = CPU count)
}

// RenderResponse is the finished render
type RenderResponse struct {
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
}

// Stats mirrors renderer.RenderStats for JSON clients
type Stats struct {
	RaysTraced     int64   `json:"raysTraced"`
	PixelsRendered int     `json:"pixelsRendered"`
	ElapsedMs      float64 `json:"elapsedMs"`
}

// RegionEvent is one progress message on the websocket stream
type RegionEvent struct {
	Type      string `json:"type"` // "region", "complete" or "error"
	RegionID  int    `json:"regionId,omitempty"`
	X0        int    `json:"x0,omitempty"`
	Y0        int    `json:"y0,omitempty"`
	X1        int    `json:"x1,omitempty"`
	Y1        int    `json:"y1,omitempty"`
	Stats     *Stats `json:"stats,omitempty"`
	ImageData string `json:"imageData,omitempty"` // Final image on "complete"
	Error     string `json:"error,omitempty"`
}

// Start starts the web server
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("static/")))
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/ws/render", s.handleRenderStream)

	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("starting web server", zap.String("addr", addr))
	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender runs a full render and returns the finished image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := decodeRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	built, err := buildScene(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := renderer.NewRenderer(built.World, built.Camera, s.log).Render(req.Workers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	encoded, err := encodePNG(result)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RenderResponse{
		ImageData: encoded,
		Stats:     toStats(result.Stats),
	})
}

// handleRenderStream upgrades to a websocket, reads one render request and
// streams region completions followed by the final image
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.writeEvent(conn, RegionEvent{Type: "error", Error: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	built, err := buildScene(&req)
	if err != nil {
		s.writeEvent(conn, RegionEvent{Type: "error", Error: err.Error()})
		return
	}

	// Progress callbacks arrive from the coordinator goroutine one at a
	// time, so writes to the connection never interleave.
	onRegion := func(region renderer.Region, stats renderer.RenderStats) {
		regionStats := toStats(stats)
		s.writeEvent(conn, RegionEvent{
			Type:     "region",
			RegionID: region.ID,
			X0:       region.Bounds.Min.X,
			Y0:       region.Bounds.Min.Y,
			X1:       region.Bounds.Max.X,
			Y1:       region.Bounds.Max.Y,
			Stats:    &regionStats,
		})
	}

	result, err := renderer.NewRenderer(built.World, built.Camera, s.log).RenderWithProgress(req.Workers, onRegion)
	if err != nil {
		s.writeEvent(conn, RegionEvent{Type: "error", Error: err.Error()})
		return
	}

	encoded, err := encodePNG(result)
	if err != nil {
		s.writeEvent(conn, RegionEvent{Type: "error", Error: err.Error()})
		return
	}

	finalStats := toStats(result.Stats)
	s.writeEvent(conn, RegionEvent{Type: "complete", Stats: &finalStats, ImageData: encoded})
}

func (s *Server) writeEvent(conn *websocket.Conn, event RegionEvent) {
	if err := conn.WriteJSON(event); err != nil {
		s.log.Warn("websocket write failed", zap.Error(err))
	}
}

func decodeRequest(r *http.Request) (*RenderRequest, error) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	return &req, nil
}

func buildScene(req *RenderRequest) (*scene.Scene, error) {
	desc := scene.Builtin(req.Scene)
	if desc == nil {
		return nil, fmt.Errorf("unknown scene %q", req.Scene)
	}

	if req.Width > 0 {
		desc.Camera.Width = req.Width
	}
	if req.Height > 0 {
		desc.Camera.Height = req.Height
	}
	if req.Samples > 0 {
		desc.Camera.Samples = req.Samples
	}
	if req.MaxDepth > 0 {
		desc.Camera.MaxDepth = req.MaxDepth
	}

	return scene.Build(desc)
}

func encodePNG(result *renderer.RenderResult) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, result.Frame.ToRGBA()); err != nil {
		return "", fmt.Errorf("encoding image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func toStats(stats renderer.RenderStats) Stats {
	return Stats{
		RaysTraced:     stats.RaysTraced,
		PixelsRendered: stats.PixelsRendered,
		ElapsedMs:      stats.ElapsedMs(),
	}
}
