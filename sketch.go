// Sketchbox drawing game
//
// A prompt word is shown, the player draws it on the canvas and a stand-in
// judge scores the drawing. Each game ID gets its own hub; the hub owns one
// drawing surface and one round manager, and every pointer event, button
// press and snapshot request for that game is handled on the hub goroutine
// in the order it arrives.
//
// Features:
// - WebSockets per game ID: /path/:gameid and /path/:gameid/ws
// - Mouse and touch input normalised into the same stroke operations
// - Strokes mirrored to other tabs viewing the same game
// - PNG snapshot of the canvas at /path/:gameid/canvas.png
// - In-browser QR button to share the current session, backed by go-qrcode
// - Pointer-move flood control per connection
// - Games auto-reaped after configurable idle timeout

package main

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"
	"golang.org/x/time/rate"

	"github.com/Seednode/sketchbox/games/canvas"
	"github.com/Seednode/sketchbox/games/rounds"
)

const (
	gameIDLength     = 8
	maxMessageSize   = 4096
	playerCookieName = "sketchbox_id"
	wordPlaceholder  = "Press start to get a word"
)

var errHubClosed = errors.New("game has ended")

// Messages coming from clients
type SketchMessage struct {
	Type    string         `json:"type"`              // "start", "next", "submit", "skip", "clear", "color", "brush", "stroke"
	Phase   string         `json:"phase,omitempty"`   // stroke: "begin", "move", "end"
	Source  string         `json:"source,omitempty"`  // stroke: "mouse" or "touch"
	X       float64        `json:"x,omitempty"`       // stroke (mouse): viewport x
	Y       float64        `json:"y,omitempty"`       // stroke (mouse): viewport y
	Touches []canvas.Point `json:"touches,omitempty"` // stroke (touch): active touch points
	Rect    canvas.Rect    `json:"rect"`              // stroke: canvas bounding rectangle
	Color   string         `json:"color,omitempty"`   // color
	Size    float64        `json:"size,omitempty"`    // brush
}

// SessionInfoMessage is sent immediately on connect.
type SessionInfoMessage struct {
	Type      string  `json:"type"` // "session_info"
	GameID    string  `json:"game_id"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Color     string  `json:"color"`
	BrushSize float64 `json:"brush_size"`
	MaxBrush  float64 `json:"max_brush"`
	Started   bool    `json:"started"`
}

// WordMessage refreshes the prompt.
type WordMessage struct {
	Type    string `json:"type"`           // "word"
	Word    string `json:"word,omitempty"` // empty before the first round
	Display string `json:"display"`        // what to render in the prompt area
}

type ScoreMessage struct {
	Type  string `json:"type"` // "score"
	Score int    `json:"score"`
}

// ResultMessage shows or hides the result panel.
type ResultMessage struct {
	Type    string `json:"type"` // "result"
	Visible bool   `json:"visible"`
	Success bool   `json:"success,omitempty"`
	Points  int    `json:"points"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
	Word    string `json:"word,omitempty"`
}

// AlertMessage is a blocking notice for the client that caused it.
type AlertMessage struct {
	Type      string `json:"type"`      // "alert"
	Condition string `json:"condition"` // "no_active_round", "empty_canvas"
	Message   string `json:"message"`
}

// ToolMessage carries the color and brush the game is drawing with.
type ToolMessage struct {
	Type      string  `json:"type"` // "tool"
	Color     string  `json:"color"`
	BrushSize float64 `json:"brush_size"`
}

// SegmentMessage mirrors one rendered stroke segment to other tabs.
type SegmentMessage struct {
	Type string `json:"type"` // "segment"
	canvas.Segment
}

// SimpleMessage is for generic notifications ("clear", "error")
type SimpleMessage struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

type sketchClient struct {
	conn     *websocket.Conn
	send     chan any
	playerID string
	moves    *rate.Limiter
}

// allow reports whether msg should reach the hub. Only pointer moves are
// throttled; begin and end always pass so no gesture is left open.
func (c *sketchClient) allow(msg SketchMessage) bool {
	if c.moves == nil || msg.Type != "stroke" || msg.Phase != "move" {
		return true
	}

	return c.moves.Allow()
}

type sketchEvent struct {
	client *sketchClient
	msg    SketchMessage
}

type snapshotReply struct {
	png []byte
	err error
}

type SketchHub struct {
	id      string
	clients map[*sketchClient]bool

	register  chan *sketchClient
	unreg     chan *sketchClient
	events    chan sketchEvent
	snapshots chan chan snapshotReply
	done      chan struct{}
	closeOnce sync.Once

	mu sync.RWMutex

	// lastActive is unix nanoseconds; the reaper reads it without taking mu.
	lastActive atomic.Int64

	surface *canvas.Surface
	canvas  hubCanvas
	rounds  *rounds.Manager
	started bool

	// stroker owns the gesture in progress; actor sent the event being handled.
	stroker *sketchClient
	actor   *sketchClient
}

// hubCanvas wipes every connected copy of the canvas whenever the surface is
// cleared.
type hubCanvas struct {
	*canvas.Surface
	hub *SketchHub
}

// Clear is called with hub.mu held.
func (c hubCanvas) Clear() {
	c.Surface.Clear()
	c.hub.broadcastLocked(SimpleMessage{Type: "clear"})
}

func newSketchHub(cfg *Config, gameID string, pool *rounds.Pool) (*SketchHub, error) {
	now := time.Now()

	h := &SketchHub{
		id:        gameID,
		clients:   make(map[*sketchClient]bool),
		register:  make(chan *sketchClient),
		unreg:     make(chan *sketchClient),
		events:    make(chan sketchEvent),
		snapshots: make(chan chan snapshotReply),
		done:      make(chan struct{}),
		surface:   canvas.New(cfg.canvasWidth, cfg.canvasHeight),
	}
	h.lastActive.Store(now.UnixNano())
	h.canvas = hubCanvas{Surface: h.surface, hub: h}

	random := rounds.NewRandom(&rounds.RandomConfig{Seed: cfg.seed})

	manager, err := rounds.New(&rounds.Config{
		Pool:    pool,
		Canvas:  h.canvas,
		Display: h,
		Random:  random,
		Scorer:  rounds.NewRandomScorer(random),
	})
	if err != nil {
		return nil, err
	}
	h.rounds = manager

	return h, nil
}

func (h *SketchHub) run(cfg *Config) {
	for {
		select {
		case <-h.done:
			return

		case c := <-h.register:
			h.handleRegister(cfg, c)

		case c := <-h.unreg:
			h.handleUnregister(cfg, c)

		case ev := <-h.events:
			h.handleEvent(cfg, ev)

		case reply := <-h.snapshots:
			var buf bytes.Buffer

			h.mu.RLock()
			err := h.surface.EncodePNG(&buf)
			h.mu.RUnlock()

			reply <- snapshotReply{png: buf.Bytes(), err: err}
		}
	}
}

func (h *SketchHub) touch() {
	h.lastActive.Store(time.Now().UnixNano())
}

func (h *SketchHub) idleSince() time.Time {
	return time.Unix(0, h.lastActive.Load())
}

func (h *SketchHub) handleRegister(cfg *Config, c *sketchClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.touch()
	h.clients[c] = true

	logf(cfg, "GAMES: Player %s connected to %s", c.playerID, h.id)

	word, _ := h.rounds.CurrentWord()

	h.sendLocked(c, SessionInfoMessage{
		Type:      "session_info",
		GameID:    h.id,
		Width:     h.surface.Width(),
		Height:    h.surface.Height(),
		Color:     h.surface.Color(),
		BrushSize: h.surface.BrushSize(),
		MaxBrush:  h.surface.MaxBrushSize(),
		Started:   h.started,
	})
	h.sendLocked(c, newWordMessage(word))
	h.sendLocked(c, ScoreMessage{Type: "score", Score: h.rounds.Score()})
}

func (h *SketchHub) handleUnregister(cfg *Config, c *sketchClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.touch()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}

	// A tab closing mid-gesture must not leave the surface drawing.
	if h.stroker == c {
		h.surface.EndStroke()
		h.stroker = nil
	}

	logf(cfg, "GAMES: Player %s left %s", c.playerID, h.id)
}

func (h *SketchHub) handleEvent(cfg *Config, ev sketchEvent) {
	msg := ev.msg

	h.mu.Lock()
	defer h.mu.Unlock()

	h.touch()
	h.actor = ev.client
	defer func() { h.actor = nil }()

	switch msg.Type {
	case "start":
		if h.started {
			word, _ := h.rounds.CurrentWord()
			h.sendLocked(ev.client, newWordMessage(word))
			return
		}
		h.started = true
		word := h.rounds.NextWord()
		logf(cfg, "GAMES: Started %s with %q", h.id, word)

	case "next":
		h.started = true
		word := h.rounds.NextWord()
		logf(cfg, "GAMES: Next word in %s is %q", h.id, word)

	case "submit":
		eval, err := h.rounds.SubmitAnswer()
		if err != nil {
			log.Debug().Err(err).Str("game", h.id).Msg("GAMES: submission refused")
			return
		}
		logf(cfg, "GAMES: Drawing in %s scored %d (total %d)", h.id, eval.Points, h.rounds.Score())

	case "skip":
		result, err := h.rounds.SkipWord()
		if err != nil {
			log.Debug().Err(err).Str("game", h.id).Msg("GAMES: skip refused")
			return
		}
		logf(cfg, "GAMES: Skipped %q in %s", result.Word, h.id)

	case "clear":
		h.canvas.Clear()

	case "color":
		if err := h.surface.SetColor(msg.Color); err != nil {
			h.sendLocked(ev.client, SimpleMessage{Type: "error", Message: err.Error()})
			return
		}
		h.broadcastLocked(h.toolMessageLocked())

	case "brush":
		if err := h.surface.SetBrushSize(msg.Size); err != nil {
			h.sendLocked(ev.client, SimpleMessage{Type: "error", Message: err.Error()})
			return
		}
		h.broadcastLocked(h.toolMessageLocked())

	case "stroke":
		h.handleStrokeLocked(ev.client, msg)

	default:
		// ignore unknown types
	}
}

// The surface has one color and brush per game, so every tab is told when
// either changes.
func (h *SketchHub) toolMessageLocked() ToolMessage {
	return ToolMessage{
		Type:      "tool",
		Color:     h.surface.Color(),
		BrushSize: h.surface.BrushSize(),
	}
}

func strokeInput(msg SketchMessage) (canvas.StrokeInput, bool) {
	if msg.Source == "touch" {
		return canvas.TouchInput(msg.Touches, msg.Rect)
	}

	return canvas.MouseInput(msg.X, msg.Y, msg.Rect), true
}

func (h *SketchHub) handleStrokeLocked(c *sketchClient, msg SketchMessage) {
	switch msg.Phase {
	case "begin":
		in, ok := strokeInput(msg)
		if !ok {
			return
		}
		h.surface.BeginStroke(in)
		h.stroker = c

	case "move":
		in, ok := strokeInput(msg)
		if !ok || h.stroker != c {
			return
		}
		if seg, drawn := h.surface.ExtendStroke(in); drawn {
			h.broadcastExceptLocked(c, SegmentMessage{Type: "segment", Segment: seg})
		}

	case "end":
		if h.stroker != c {
			return
		}
		h.surface.EndStroke()
		h.stroker = nil
	}
}

func newWordMessage(word string) WordMessage {
	display := word
	if display == "" {
		display = wordPlaceholder
	}

	return WordMessage{
		Type:    "word",
		Word:    word,
		Display: display,
	}
}

// The rounds.Display methods below are called by the round manager from
// handleEvent, with h.mu held.

func (h *SketchHub) ShowWord(word string) {
	h.broadcastLocked(newWordMessage(word))
}

func (h *SketchHub) ShowScore(score int) {
	h.broadcastLocked(ScoreMessage{Type: "score", Score: score})
}

func (h *SketchHub) ShowResult(result rounds.Result) {
	h.broadcastLocked(ResultMessage{
		Type:    "result",
		Visible: true,
		Success: result.Success,
		Points:  result.Points,
		Title:   result.Title,
		Message: result.Message,
		Word:    result.Word,
	})
}

func (h *SketchHub) HideResult() {
	h.broadcastLocked(ResultMessage{Type: "result", Visible: false})
}

func (h *SketchHub) Notify(err error) {
	condition := "error"
	switch {
	case errors.Is(err, rounds.ErrNoActiveRound):
		condition = "no_active_round"
	case errors.Is(err, rounds.ErrEmptyCanvas):
		condition = "empty_canvas"
	}

	msg := AlertMessage{
		Type:      "alert",
		Condition: condition,
		Message:   err.Error(),
	}

	if h.actor != nil {
		h.sendLocked(h.actor, msg)
		return
	}

	h.broadcastLocked(msg)
}

// sendLocked drops clients whose buffers are full.
func (h *SketchHub) sendLocked(c *sketchClient, msg any) {
	if !h.clients[c] {
		return
	}

	select {
	case c.send <- msg:
	default:
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *SketchHub) broadcastLocked(msg any) {
	for client := range h.clients {
		h.sendLocked(client, msg)
	}
}

func (h *SketchHub) broadcastExceptLocked(sender *sketchClient, msg any) {
	for client := range h.clients {
		if client == sender {
			continue
		}
		h.sendLocked(client, msg)
	}
}

// snapshot asks the hub goroutine for a PNG of the canvas.
func (h *SketchHub) snapshot(ctx context.Context) ([]byte, error) {
	reply := make(chan snapshotReply, 1)

	select {
	case h.snapshots <- reply:
	case <-h.done:
		return nil, errHubClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case r := <-reply:
		return r.png, r.err
	case <-h.done:
		return nil, errHubClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// closeAll stops the hub and disconnects all of its clients (used by reaper).
func (h *SketchHub) closeAll() {
	h.closeOnce.Do(func() {
		close(h.done)
	})

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, c)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func getOrSetPlayerID(cfg *Config, w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     cfg.prefix + "/",
		HttpOnly: true,
		Secure:   cfg.scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// GameManager holds a set of hubs keyed by game ID, so each $path/$gameid
// is its own isolated session.
type GameManager struct {
	mu          sync.Mutex
	hubs        map[string]*SketchHub
	pool        *rounds.Pool
	idleTimeout time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

func newGameManager(idleTimeout time.Duration, pool *rounds.Pool) *GameManager {
	gm := &GameManager{
		hubs:        make(map[string]*SketchHub),
		pool:        pool,
		idleTimeout: idleTimeout,
		stop:        make(chan struct{}),
	}

	if idleTimeout > 0 {
		go gm.reaperLoop()
	}

	return gm
}

// getHub returns the hub for gameID, starting one if needed.
func (gm *GameManager) getHub(cfg *Config, gameID string) (*SketchHub, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if hub, ok := gm.hubs[gameID]; ok {
		return hub, nil
	}

	hub, err := newSketchHub(cfg, gameID, gm.pool)
	if err != nil {
		return nil, err
	}

	gm.hubs[gameID] = hub
	go hub.run(cfg)

	return hub, nil
}

func (gm *GameManager) lookupHub(gameID string) (*SketchHub, bool) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	hub, ok := gm.hubs[gameID]

	return hub, ok
}

// newGameID generates a crypto-random game ID and ensures it doesn't
// collide with existing games.
func (gm *GameManager) newGameID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	const limit = byte(255 - (256 % len(letters)))

	for {
		out := make([]byte, 0, gameIDLength)
		buf := make([]byte, gameIDLength*2)

		for len(out) < gameIDLength {
			if _, err := rand.Read(buf); err != nil {
				panic("crypto/rand failure: " + err.Error())
			}

			for _, b := range buf {
				if b <= limit && len(out) < gameIDLength {
					out = append(out, letters[int(b)%len(letters)])
				}
			}
		}

		id := string(out)

		gm.mu.Lock()
		_, exists := gm.hubs[id]
		gm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

func validGameID(id string) bool {
	if id == "" || len(id) > 64 {
		return false
	}

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}

	return true
}

// reaperLoop periodically removes hubs that have been idle longer than idleTimeout.
func (gm *GameManager) reaperLoop() {
	ticker := time.NewTicker(gm.idleTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-gm.stop:
			return
		case <-ticker.C:
			gm.reap(time.Now().Add(-gm.idleTimeout))
		}
	}
}

// reap drops hubs idle since before cutoff. A hub busy on its own goroutine
// does not hold up the manager.
func (gm *GameManager) reap(cutoff time.Time) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	for id, hub := range gm.hubs {
		if hub.idleSince().Before(cutoff) {
			delete(gm.hubs, id)
			go hub.closeAll()
		}
	}
}

// Close stops the reaper and ends every game.
func (gm *GameManager) Close() {
	gm.stopOnce.Do(func() {
		close(gm.stop)
	})

	gm.mu.Lock()
	hubs := make([]*SketchHub, 0, len(gm.hubs))
	for id, hub := range gm.hubs {
		delete(gm.hubs, id)
		hubs = append(hubs, hub)
	}
	gm.mu.Unlock()

	for _, hub := range hubs {
		hub.closeAll()
	}
}

// WebSocket handler that picks the hub based on :gameid
func serveWSForManager(cfg *Config, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if !validGameID(gameID) {
			http.Error(w, "invalid game id", http.StatusBadRequest)
			return
		}

		playerID := getOrSetPlayerID(cfg, w, r)

		hub, err := gm.getHub(cfg, gameID)
		if err != nil {
			http.Error(w, "unable to start game", http.StatusInternalServerError)
			return
		}

		conn, err := upgrader.Upgrade(w, r, w.Header())
		if err != nil {
			logf(cfg, "GAMES: Upgrade failed for %s: %v", realIP(r), err)
			return
		}

		client := &sketchClient{
			conn:     conn,
			send:     make(chan any, 64),
			playerID: playerID,
		}
		if cfg.strokeRate > 0 {
			client.moves = rate.NewLimiter(rate.Limit(cfg.strokeRate), int(cfg.strokeRate)*2+1)
		}

		select {
		case hub.register <- client:
		case <-hub.done:
			_ = conn.Close()
			return
		}

		go client.writePump()
		client.readPump(hub)
	}
}

func (c *sketchClient) readPump(h *SketchHub) {
	defer func() {
		select {
		case h.unreg <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)

	for {
		var msg SketchMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		if !c.allow(msg) {
			continue
		}

		select {
		case h.events <- sketchEvent{client: c, msg: msg}:
		case <-h.done:
			return
		}
	}
}

func (c *sketchClient) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current game URL using go-qrcode.
func qrHandler(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if !validGameID(gameID) {
			http.Error(w, "invalid game id", http.StatusBadRequest)
			return
		}

		// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		path := strings.TrimSuffix(r.URL.Path, "/qr")

		url := scheme + "://" + r.Host + path

		const qrSize = 320 // mobile-friendly size
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		securityHeaders(cfg, w)

		if _, err := w.Write(png); err != nil {
			errs <- err
		}
	}
}

// snapshotHandler serves the current canvas of a running game as PNG.
func snapshotHandler(cfg *Config, gm *GameManager, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		startTime := time.Now()

		hub, ok := gm.lookupHub(ps.ByName("gameid"))
		if !ok {
			http.NotFound(w, r)
			return
		}

		png, err := hub.snapshot(r.Context())
		if err != nil {
			if errors.Is(err, errHubClosed) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "snapshot failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		securityHeaders(cfg, w)

		written, err := w.Write(png)
		if err != nil {
			errs <- err
			return
		}

		logf(cfg, "SERVE: Canvas of %s (%s) to %s in %s",
			hub.id,
			humanReadableSize(int64(written)),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

// ---- Static file paths ----

func getIndexHandler(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !validGameID(ps.ByName("gameid")) {
			http.NotFound(w, r)
			return
		}

		data, err := assets.ReadFile("assets/sketch/index.html")
		if err != nil {
			http.Error(w, "missing page", http.StatusInternalServerError)
			return
		}

		page := strings.ReplaceAll(string(data), "{{prefix}}", cfg.prefix)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		securityHeaders(cfg, w)

		_ = getOrSetPlayerID(cfg, w, r)

		_, _ = w.Write([]byte(page))
	}
}

// redirectNewGame handles GET /path by generating a new random game ID
// (with server-side collision detection) and redirecting to /path/:gameid.
func redirectNewGame(cfg *Config, path string, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gameID := gm.newGameID()
		logf(cfg, "GAMES: Created game %s/%s", path, gameID)
		http.Redirect(w, r, cfg.prefix+path+"/"+gameID, http.StatusTemporaryRedirect)
	}
}

// registerSketchGame sets up routes so that:
//   - $path                     → redirects to new random game (8-char ID)
//   - $path/:gameid             → HTML client
//   - $path/:gameid/ws          → WebSocket for that game
//   - $path/:gameid/qr          → PNG QR code for that game URL
//   - $path/:gameid/canvas.png  → PNG snapshot of that game's canvas
func registerSketchGame(cfg *Config, path string, pool *rounds.Pool, errs chan<- error, mux *httprouter.Router) *GameManager {
	gm := newGameManager(cfg.sessionTimeout, pool)

	mux.GET(cfg.prefix+path, redirectNewGame(cfg, path, gm))

	mux.GET(cfg.prefix+path+"/:gameid", getIndexHandler(cfg))

	mux.GET(cfg.prefix+path+"/:gameid/ws", serveWSForManager(cfg, gm))

	mux.GET(cfg.prefix+path+"/:gameid/qr", qrHandler(cfg, errs))

	mux.GET(cfg.prefix+path+"/:gameid/canvas.png", snapshotHandler(cfg, gm, errs))

	return gm
}
