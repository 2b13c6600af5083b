package server

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GiacomoGaraccione/gp-belotta/internal/bots"
	"github.com/GiacomoGaraccione/gp-belotta/internal/config"
	"github.com/GiacomoGaraccione/gp-belotta/internal/engine"
)

// ClientMessage is what the browser sends over the socket.
type ClientMessage struct {
	Type     string     `json:"type"`
	ActionID string     `json:"actionId,omitempty"`
	Action   *ActionDTO `json:"action,omitempty"`
}

// ServerMessage is pushed to the client after every transition.
type ServerMessage struct {
	Type   string    `json:"type"`
	View   *GameView `json:"view,omitempty"`
	Events []Event   `json:"events,omitempty"`
	Log    []string  `json:"log,omitempty"`
	Error  string    `json:"error,omitempty"`
	Code   string    `json:"code,omitempty"`
}

// Session hosts a single human seated against three bot seats. All
// state lives behind the mutex; bot decisions fire from timers and
// re-enter through the same lock.
type Session struct {
	mu sync.Mutex

	id         string
	log        *zap.Logger
	thinkDelay time.Duration
	seed       int64

	state     engine.GameState
	started   bool
	actionIDs map[string]bool
	seatBots  map[engine.Seat]bots.Bot

	conn    *websocket.Conn
	prevLog []string

	// epoch invalidates scheduled bot decisions: any timer that fires
	// with a stale epoch is a no-op.
	epoch   uint64
	pending *time.Timer
}

func NewSession(log *zap.Logger, cfg *config.Config) *Session {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		id:         uuid.NewString(),
		log:        log,
		thinkDelay: cfg.Game.BotDelay,
		seed:       seed,
		actionIDs:  map[string]bool{},
		seatBots: map[engine.Seat]bots.Bot{
			engine.SeatOpponent1: bots.NewRandom(seed + 1),
			engine.SeatPartner:   bots.NewRandom(seed + 2),
			engine.SeatOpponent2: bots.NewRandom(seed + 3),
		},
	}
}

func (s *Session) ID() string { return s.id }

// HandleConnection owns the read side of the socket until it closes.
func (s *Session) HandleConnection(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn != nil {
		s.conn.Close()
	}
	s.conn = conn
	s.mu.Unlock()

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		s.handleMessage(msg)
	}

	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	s.log.Info("connection closed", zap.String("session", s.id))
}

func (s *Session) handleMessage(msg ClientMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch msg.Type {
	case "join_session":
		if !s.started {
			s.startHandLocked()
			return
		}
		s.pushStateLocked(nil)
		s.scheduleBotLocked()
	case "new_hand":
		if s.started && s.state.Phase != engine.PhaseHandOver {
			s.sendErrorLocked("phase_mismatch", "the current hand is still in progress")
			return
		}
		s.startHandLocked()
	case "request_state":
		s.pushStateLocked(nil)
	case "player_action":
		s.applyHumanLocked(msg.ActionID, msg.Action)
	default:
		s.sendErrorLocked("bad_request", "unknown message type")
	}
}

// startHandLocked deals a fresh hand. The first hand seeds the game;
// later hands advance the seed so every shuffle differs but the whole
// session stays reproducible from the initial seed.
func (s *Session) startHandLocked() {
	s.cancelPendingLocked()
	if !s.started {
		s.state = engine.NewGame(s.seed)
		s.started = true
	} else {
		s.state.Seed++
	}
	engine.DealHand(&s.state)
	s.actionIDs = map[string]bool{}
	s.prevLog = nil

	s.log.Info("hand started",
		zap.String("session", s.id),
		zap.Int64("seed", s.state.Seed),
		zap.String("starter", s.state.Starter.String()))

	s.pushStateLocked([]Event{{Type: "hand_started", Data: EventPayload{
		Starter: s.state.Starter.String(),
	}}})
	s.scheduleBotLocked()
}

func (s *Session) applyHumanLocked(actionID string, dto *ActionDTO) {
	if actionID != "" && s.actionIDs[actionID] {
		// Retransmit of an action already applied; resend the state.
		s.pushStateLocked(nil)
		return
	}

	act, err := dto.ToEngine()
	if err != nil {
		s.sendErrorLocked("bad_request", err.Error())
		return
	}

	prev := s.state
	if err := engine.ApplyAction(&s.state, engine.SeatPlayer, act); err != nil {
		s.sendErrorLocked(errorCode(err), err.Error())
		return
	}
	if actionID != "" {
		s.actionIDs[actionID] = true
	}
	s.cancelPendingLocked()
	s.pushStateLocked(buildEvents(prev, s.state, engine.SeatPlayer, act))
	s.scheduleBotLocked()
}

// scheduleBotLocked arms a delayed decision when a bot seat is to act.
func (s *Session) scheduleBotLocked() {
	if s.state.Phase == engine.PhaseHandOver {
		return
	}
	bot, ok := s.seatBots[s.state.Turn]
	if !ok || bot == nil {
		return
	}
	epoch := s.epoch
	s.pending = time.AfterFunc(s.thinkDelay, func() {
		s.botFire(epoch)
	})
}

func (s *Session) botFire(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return
	}
	s.epoch++
	s.pending = nil

	turn := s.state.Turn
	bot, ok := s.seatBots[turn]
	if !ok || bot == nil {
		return
	}
	act := bot.ChooseAction(s.state, turn)
	prev := s.state
	if err := engine.ApplyAction(&s.state, turn, act); err != nil {
		s.log.Error("bot produced an illegal action",
			zap.String("session", s.id),
			zap.String("seat", turn.String()),
			zap.String("action", act.String()),
			zap.Error(err))
		return
	}
	s.pushStateLocked(buildEvents(prev, s.state, turn, act))
	s.scheduleBotLocked()
}

func (s *Session) cancelPendingLocked() {
	s.epoch++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// pushStateLocked sends the viewer projection plus whatever narration
// the latest transition appended. Safe with no connection attached.
func (s *Session) pushStateLocked(events []Event) {
	lines := newLogLines(s.prevLog, s.state.Log)
	s.prevLog = append([]string(nil), s.state.Log...)

	if s.conn == nil {
		return
	}
	msg := ServerMessage{
		Type:   "state",
		View:   BuildGameView(s.state, engine.SeatPlayer, s.id),
		Events: events,
		Log:    lines,
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.Warn("write failed", zap.String("session", s.id), zap.Error(err))
	}
}

func (s *Session) sendErrorLocked(code, detail string) {
	if s.conn == nil {
		return
	}
	msg := ServerMessage{Type: "error", Code: code, Error: detail}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.Warn("write failed", zap.String("session", s.id), zap.Error(err))
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, engine.ErrOutOfTurn):
		return "out_of_turn"
	case errors.Is(err, engine.ErrPhaseMismatch):
		return "phase_mismatch"
	case errors.Is(err, engine.ErrIllegalMove):
		return "illegal_move"
	default:
		return "bad_request"
	}
}
