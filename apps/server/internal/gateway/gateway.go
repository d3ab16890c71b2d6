// Package gateway bridges WebSocket clients to the blackjack engine.
// Every connection gets its own table: one game, one bankroll, torn down
// with the socket.
package gateway

import (
	"encoding/json"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"blackjack-lite/apps/server/internal/view"
	"blackjack-lite/blackjack"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: Restrict in production
	},
}

// ClientMessage is one command from the client. Amount only matters for
// increase_bet.
type ClientMessage struct {
	Type   string `json:"type"`
	Amount int64  `json:"amount,omitempty"`
}

type ErrorView struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ServerMessage is the single reply shape: the table after the command,
// the events the command produced, and the error if it was refused.
type ServerMessage struct {
	Type   string           `json:"type"`
	State  *view.TableView  `json:"state,omitempty"`
	Events []view.EventView `json:"events,omitempty"`
	Error  *ErrorView       `json:"error,omitempty"`
}

// Gateway hands out single-seat tables over WebSocket.
type Gateway struct {
	cfg        blackjack.Config
	nextConnID uint64
}

func New(cfg blackjack.Config) *Gateway {
	return &Gateway{cfg: cfg}
}

// HandleWebSocket upgrades the connection and runs a fresh session on it.
func (g *Gateway) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Gateway] Upgrade error: %v", err)
		return
	}

	game, err := blackjack.NewGame(g.cfg)
	if err != nil {
		log.Printf("[Gateway] Failed to open a table: %v", err)
		conn.Close()
		return
	}

	connID := atomic.AddUint64(&g.nextConnID, 1)
	s := &session{id: connID, game: game, conn: conn}
	game.SetListener(s.bufferEvent)

	log.Printf("[Gateway] Client connected: conn_%d", connID)
	s.run()
}

// HandleConfig reports the table rules a client should render before it
// connects: shoe size, opening bankroll and the chip denominations.
func (g *Gateway) HandleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"decks":          g.cfg.Decks,
		"initialBalance": g.cfg.InitialBalance,
		"chipValues":     blackjack.ChipValues,
		"minChip":        blackjack.MinChip,
	})
}

// session is one client at one table. The read loop is the only
// goroutine touching it, so the event buffer needs no lock of its own.
type session struct {
	id     uint64
	game   *blackjack.Game
	conn   *websocket.Conn
	events []blackjack.Event
}

// bufferEvent runs as the engine listener, inside the game lock; it only
// appends.
func (s *session) bufferEvent(e blackjack.Event) {
	s.events = append(s.events, e)
}

func (s *session) drainEvents() []view.EventView {
	out := view.BuildEvents(s.events)
	s.events = s.events[:0]
	return out
}

func (s *session) run() {
	defer func() {
		s.conn.Close()
		log.Printf("[Gateway] Client disconnected: conn_%d", s.id)
	}()

	s.conn.SetReadLimit(65536)
	s.sendState()

	for {
		s.conn.SetReadDeadline(time.Now().Add(10 * time.Minute))
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[Gateway] Read error: %v", err)
			}
			return
		}
		s.handleMessage(data)
	}
}

func (s *session) handleMessage(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Printf("[Gateway] Failed to unmarshal: %v", err)
		s.sendError(1, "invalid message format")
		return
	}

	var err error
	switch msg.Type {
	case "request_state":
		// state goes out below regardless
	case "increase_bet":
		err = s.game.IncreaseBet(msg.Amount)
	case "restart_bet":
		err = s.game.RestartBet()
	case "deal":
		_, err = s.game.Deal()
	case "hit":
		_, err = s.game.Hit()
	case "stand":
		_, err = s.game.Stand()
	case "double_down":
		_, err = s.game.DoubleDown()
	case "split":
		_, err = s.game.Split()
	case "surrender":
		_, err = s.game.Surrender()
	case "next_round":
		err = s.game.NextRound()
	default:
		log.Printf("[Gateway] Unknown message type: %s", msg.Type)
		s.sendError(1, "unknown message type")
		return
	}

	if err != nil {
		s.sendError(2, err.Error())
		return
	}
	s.sendState()
}

func (s *session) sendState() {
	state := view.BuildTableView(s.game.Snapshot(), s.game.LegalActions())
	s.write(ServerMessage{
		Type:   "state",
		State:  &state,
		Events: s.drainEvents(),
	})
}

// sendError reports the refusal and the untouched table, so the client
// can re-render instead of guessing.
func (s *session) sendError(code int, msg string) {
	state := view.BuildTableView(s.game.Snapshot(), s.game.LegalActions())
	s.write(ServerMessage{
		Type:   "error",
		State:  &state,
		Events: s.drainEvents(),
		Error:  &ErrorView{Code: code, Message: msg},
	})
}

func (s *session) write(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[Gateway] Failed to marshal: %v", err)
		return
	}
	s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("[Gateway] Write error: %v", err)
	}
}
