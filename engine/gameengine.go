package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/minaorangina/eights/game"
	"github.com/minaorangina/eights/players"
	"github.com/minaorangina/eights/protocol"
	"github.com/sirupsen/logrus"
)

// PlayState represents the state of the current game
// Idle -> waiting for players
// InProgress -> cards are dealt
// Over -> someone has won
type PlayState int

const (
	Idle PlayState = iota
	InProgress
	Over
)

func (ps PlayState) String() string {
	switch ps {
	case Idle:
		return "idle"
	case InProgress:
		return "inProgress"
	case Over:
		return "over"
	}
	return ""
}

var (
	ErrNotYourTurn        = errors.New("it is not your turn")
	ErrUnknownPlayer      = errors.New("unknown player")
	ErrGameFull           = errors.New("game is full")
	ErrGameAlreadyStarted = errors.New("game has already started")
	ErrNotCreator         = errors.New("only the creator can start the game")
	ErrEngineStopped      = errors.New("game engine has stopped")
)

// GameEngine runs one game session
type GameEngine interface {
	ID() string
	CreatorID() string
	PlayState() PlayState
	Players() players.Players
	State() (game.State, bool)
	AddPlayer(players.Player) error
	RemovePlayer(players.Player)
	Receive(protocol.InboundMessage)
}

type GameEngineOpts struct {
	GameID    string
	CreatorID string
	Players   players.Players
	// BotDelay is how long a bot waits before taking its turn
	BotDelay time.Duration
	// Rand shuffles the deck. Nil means a time-seeded source.
	Rand *rand.Rand
	Log  logrus.FieldLogger
	// State resumes a game already dealt instead of waiting for Start
	State *game.State
}

type registration struct {
	player players.Player
	errCh  chan error
}

// gameEngine serialises every change to a session through Listen
type gameEngine struct {
	id        string
	creatorID string
	botDelay  time.Duration
	rand      *rand.Rand
	log       logrus.FieldLogger

	mu        sync.RWMutex
	playState PlayState
	players   players.Players
	state     game.State

	registerCh   chan registration
	unregisterCh chan players.Player
	inboundCh    chan protocol.InboundMessage
	done         <-chan struct{}

	botTimer *time.Timer
	botC     <-chan time.Time
}

// NewGameEngine constructs a GameEngine and listens for players and their
// intents until ctx is cancelled.
func NewGameEngine(ctx context.Context, opts GameEngineOpts) (*gameEngine, error) {
	if len(opts.Players) > game.NumSeats {
		return nil, ErrGameFull
	}

	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	engine := &gameEngine{
		id:           opts.GameID,
		creatorID:    opts.CreatorID,
		botDelay:     opts.BotDelay,
		rand:         opts.Rand,
		log:          log.WithField("game_id", opts.GameID),
		players:      append(players.Players{}, opts.Players...),
		registerCh:   make(chan registration),
		unregisterCh: make(chan players.Player),
		inboundCh:    make(chan protocol.InboundMessage),
		done:         ctx.Done(),
	}

	if opts.State != nil {
		if err := game.CheckInvariant(*opts.State); err != nil {
			return nil, err
		}
		engine.state = opts.State.Clone()
		engine.playState = InProgress
		if engine.state.Phase == game.GameOver {
			engine.playState = Over
		}
	}

	go engine.Listen(ctx)

	return engine, nil
}

func (ge *gameEngine) ID() string {
	return ge.id
}

func (ge *gameEngine) CreatorID() string {
	return ge.creatorID
}

func (ge *gameEngine) PlayState() PlayState {
	ge.mu.RLock()
	defer ge.mu.RUnlock()
	return ge.playState
}

func (ge *gameEngine) Players() players.Players {
	ge.mu.RLock()
	defer ge.mu.RUnlock()
	return append(players.Players{}, ge.players...)
}

// State returns a copy of the game, if it has started
func (ge *gameEngine) State() (game.State, bool) {
	ge.mu.RLock()
	defer ge.mu.RUnlock()
	if ge.playState == Idle {
		return game.State{}, false
	}
	return ge.state.Clone(), true
}

// AddPlayer adds a player to a game, or reconnects one already seated
func (ge *gameEngine) AddPlayer(p players.Player) error {
	errCh := make(chan error, 1)
	select {
	case ge.registerCh <- registration{p, errCh}:
	case <-ge.done:
		return ErrEngineStopped
	}
	return <-errCh
}

// RemovePlayer forgets a player's connection. Their seat is kept.
func (ge *gameEngine) RemovePlayer(p players.Player) {
	select {
	case ge.unregisterCh <- p:
	case <-ge.done:
	}
}

// Receive forwards InboundMessages from Players for sorting
func (ge *gameEngine) Receive(msg protocol.InboundMessage) {
	select {
	case ge.inboundCh <- msg:
	case <-ge.done:
	}
}

// Listen is the only place the session changes
func (ge *gameEngine) Listen(ctx context.Context) {
	defer ge.stopBot()

	if ge.PlayState() == InProgress {
		ge.scheduleBot()
	}

	for {
		select {
		case <-ctx.Done():
			ge.log.Debug("game engine stopped")
			return

		case reg := <-ge.registerCh:
			reg.errCh <- ge.register(reg.player)

		case p := <-ge.unregisterCh:
			ge.mu.Lock()
			ge.players = players.RemovePlayer(ge.players, p)
			ge.mu.Unlock()
			ge.log.WithField("player_id", p.ID()).Info("player disconnected")

		case msg := <-ge.inboundCh:
			ge.handleInbound(msg)

		case <-ge.botC:
			ge.botC = nil
			ge.playBot()
		}
	}
}

func (ge *gameEngine) register(joiner players.Player) error {
	log := ge.log.WithField("player_id", joiner.ID())

	ge.mu.Lock()
	_, rejoining := ge.players.Find(joiner.ID())
	playState := ge.playState

	switch {
	case playState != Idle && !ge.isSeated(joiner.ID()):
		ge.mu.Unlock()
		return ErrGameAlreadyStarted
	case !rejoining && len(ge.players) >= game.NumSeats:
		ge.mu.Unlock()
		return ErrGameFull
	}

	ge.players = players.AddPlayer(ge.players, joiner)
	ge.mu.Unlock()

	if playState != Idle {
		log.Info("player reconnected")
		ge.sendTo(joiner, game.BuildSeatMessage(ge.state, ge.seatOf(joiner.ID())))
		return nil
	}

	log.WithField("name", joiner.Name()).Info("player joined")
	for _, p := range ge.Players() {
		ge.sendTo(p, buildNewJoinerMessage(joiner, p))
	}

	return nil
}

func (ge *gameEngine) handleInbound(msg protocol.InboundMessage) {
	log := ge.log.WithFields(logrus.Fields{
		"player_id": msg.PlayerID,
		"command":   msg.Command.String(),
	})

	p, ok := ge.Players().Find(msg.PlayerID)
	if !ok {
		log.Warn(ErrUnknownPlayer)
		return
	}

	if msg.Command == protocol.Start {
		if err := ge.start(msg.PlayerID); err != nil {
			log.WithError(err).Info("could not start game")
			ge.sendTo(p, buildErrorMessage(p, err))
		}
		return
	}

	if ge.PlayState() == Idle {
		ge.sendTo(p, buildErrorMessage(p, fmt.Errorf("%w: game has not started", game.ErrIllegalPhase)))
		return
	}

	seat := ge.seatOf(msg.PlayerID)
	if seat < 0 {
		ge.sendTo(p, buildErrorMessage(p, ErrUnknownPlayer))
		return
	}

	if seat != ge.state.ActiveSeat && ge.state.Phase != game.GameOver {
		ge.sendTo(p, game.BuildErrorMessage(ge.state, seat, ErrNotYourTurn))
		return
	}

	intent, err := intentFromMessage(msg)
	if err != nil {
		ge.sendTo(p, game.BuildErrorMessage(ge.state, seat, err))
		return
	}

	next, err := game.Apply(ge.state, intent)
	if err != nil {
		log.WithError(err).Debug("intent rejected")
		ge.sendTo(p, game.BuildErrorMessage(ge.state, seat, err))
		return
	}

	log.WithField("seat", seat).Debug(next.Message)
	ge.update(next)
}

func (ge *gameEngine) start(playerID string) error {
	if playerID != ge.creatorID {
		return ErrNotCreator
	}
	seats := seatsFor(ge.Players())
	switch ge.PlayState() {
	case InProgress:
		return ErrGameAlreadyStarted
	case Over:
		// same table, new deal
		seats = seatsOf(ge.state)
	}

	state, err := game.Start(game.StartOptions{Seats: seats, Rand: ge.rand})
	if err != nil {
		return err
	}

	ge.mu.Lock()
	ge.state = state
	ge.playState = InProgress
	ge.mu.Unlock()

	ge.log.WithField("players", len(ge.Players())).Info("game started")
	ge.update(state)

	return nil
}

// update commits a new state, tells everyone and wakes the next bot
func (ge *gameEngine) update(next game.State) {
	if err := game.CheckInvariant(next); err != nil {
		panic(err)
	}

	ge.mu.Lock()
	ge.state = next
	if next.Phase == game.GameOver {
		ge.playState = Over
	}
	ge.mu.Unlock()

	ge.broadcast()

	if next.Phase == game.GameOver {
		ge.log.WithField("winner", next.Seats[next.Winner].Name).Info("game over")
		ge.stopBot()
		return
	}

	ge.scheduleBot()
}

func (ge *gameEngine) broadcast() {
	ps := ge.Players()
	for _, msg := range game.BuildMessages(ge.state) {
		if p, ok := ps.Find(msg.PlayerID); ok {
			ge.sendTo(p, msg)
		}
	}
}

func (ge *gameEngine) sendTo(p players.Player, msg protocol.OutboundMessage) {
	if err := p.Send(msg); err != nil {
		ge.log.WithError(err).WithField("player_id", p.ID()).Warn("could not send message")
	}
}

func (ge *gameEngine) scheduleBot() {
	ge.stopBot()

	if ge.state.Phase == game.GameOver || !ge.state.Current().IsBot {
		return
	}

	ge.botTimer = time.NewTimer(ge.botDelay)
	ge.botC = ge.botTimer.C
}

func (ge *gameEngine) stopBot() {
	if ge.botTimer != nil {
		ge.botTimer.Stop()
	}
	ge.botTimer = nil
	ge.botC = nil
}

func (ge *gameEngine) playBot() {
	if ge.state.Phase == game.GameOver || !ge.state.Current().IsBot {
		return
	}

	next, err := game.BotTurn(ge.state)
	if err != nil {
		ge.log.WithError(err).WithField("seat", ge.state.ActiveSeat).Error("bot could not move")
		return
	}

	ge.log.WithField("seat", ge.state.ActiveSeat).Debug(next.Message)
	ge.update(next)
}

// isSeated must be called with mu held
func (ge *gameEngine) isSeated(playerID string) bool {
	_, ok := ge.state.SeatByID(playerID)
	return ok
}

func (ge *gameEngine) seatOf(playerID string) int {
	ge.mu.RLock()
	defer ge.mu.RUnlock()
	seat, ok := ge.state.SeatByID(playerID)
	if !ok {
		return -1
	}
	return seat
}
