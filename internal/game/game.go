package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/scoundrel/internal/card"
	"github.com/samdwyer/scoundrel/internal/combat"
	"github.com/samdwyer/scoundrel/internal/entity"
	"github.com/samdwyer/scoundrel/internal/gamedata"
	"github.com/samdwyer/scoundrel/internal/telemetry"
)

// logSize is how many narration lines a Snapshot carries.
const logSize = 6

// Game holds the entire state of one Scoundrel game.
type Game struct {
	id        uuid.UUID
	deck      *card.Deck
	room      []card.Card
	resolved  []card.Card
	player    *entity.Player
	turn      TurnState
	phase     Phase
	narration *gamedata.Narration
	logger    *zap.Logger
	log       []string
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithNarration sets the narration text. The default is the embedded text.
func WithNarration(n *gamedata.Narration) Option {
	return func(g *Game) { g.narration = n }
}

// WithSessionID fixes the session id. The default is a random UUID.
func WithSessionID(id uuid.UUID) Option {
	return func(g *Game) { g.id = id }
}

// New creates a game with a freshly shuffled 44-card dungeon.
func New(rng *rand.Rand, opts ...Option) *Game {
	deck := card.NewDeck(rng)
	deck.Shuffle()
	return NewWithDeck(deck, opts...)
}

// NewWithDeck creates a game that deals from the given deck as-is.
func NewWithDeck(deck *card.Deck, opts ...Option) *Game {
	g := &Game{
		id:     uuid.New(),
		deck:   deck,
		player: entity.NewPlayer(),
		turn:   TurnState{Number: 1},
		phase:  PhaseRoomStart,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.narration == nil {
		g.narration = gamedata.MustLoadNarration()
	}
	g.logger = g.logger.With(zap.String("session_id", g.id.String()))
	return g
}

// SessionID returns the game's unique id.
func (g *Game) SessionID() uuid.UUID { return g.id }

// Player returns the player.
func (g *Game) Player() *entity.Player { return g.player }

// Deck returns the remaining dungeon.
func (g *Game) Deck() *card.Deck { return g.deck }

// Room returns a copy of the cards currently in the room.
func (g *Game) Room() []card.Card {
	out := make([]card.Card, len(g.room))
	copy(out, g.room)
	return out
}

// Resolved returns a copy of every card taken so far, in order.
func (g *Game) Resolved() []card.Card {
	out := make([]card.Card, len(g.resolved))
	copy(out, g.resolved)
	return out
}

// Turn returns the current turn state.
func (g *Game) Turn() TurnState { return g.turn }

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	return g.phase.IsOver() || !g.player.IsAlive() || (g.deck.Empty() && len(g.room) == 0)
}

// Options returns the legal moves for the current room.
// Moving on needs exactly one card left and a next room to go to.
func (g *Game) Options() Options {
	return Options{
		RoomSize:  len(g.room),
		CanMoveOn: len(g.room) == 1 && !g.deck.Empty(),
		CanFlee:   g.turn.CanFlee() && len(g.room) > 0,
	}
}

// Snapshot returns a read-only copy of the game for rendering.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		SessionID: g.id.String(),
		Phase:     g.phase,
		Turn:      g.turn.Number,
		Health:    g.player.Health,
		MaxHealth: entity.MaxHealth,
		Room:      g.Room(),
		DeckSize:  g.deck.Len(),
		Options:   g.Options(),
		Log:       append([]string(nil), g.log...),
	}
	if w := g.player.Weapon(); w != nil {
		c := w.Card()
		s.Weapon = &c
		if last, ok := w.LastEnemy(); ok {
			s.LastEnemy = &last
		}
	}
	return s
}

// Play runs the game to completion and returns the final phase. It returns
// early with PhaseAbandoned and the error if the Input fails.
func (g *Game) Play(ctx context.Context, in Input) (Phase, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.play")
	span.SetAttributes(
		attribute.String("session_id", g.id.String()),
		attribute.Int("deck.size", g.deck.Len()),
	)
	defer span.End()

	g.logger.Info("game started", zap.Int("deck_size", g.deck.Len()))

	for !g.IsOver() {
		outcome, err := g.playTurn(ctx, in)
		if err != nil {
			g.phase = PhaseAbandoned
			span.SetAttributes(attribute.String("outcome", g.phase.String()))
			if errors.Is(err, ErrAbandoned) {
				g.logger.Info("game abandoned", zap.Int("turn", g.turn.Number))
			} else {
				g.logger.Error("input failed", zap.Error(err))
				span.RecordError(err)
			}
			return g.phase, fmt.Errorf("turn %d: %w", g.turn.Number, err)
		}
		g.turn = g.turn.Next(outcome)
	}

	g.finish()
	span.SetAttributes(
		attribute.String("outcome", g.phase.String()),
		attribute.Int("turns", g.turn.Number-1),
		attribute.Int("health", g.player.Health),
	)
	in.Render(g.Snapshot())
	return g.phase, nil
}

// playTurn deals a room and resolves moves until the room is done with.
func (g *Game) playTurn(ctx context.Context, in Input) (TurnOutcome, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	var outcome TurnOutcome
	dealt := g.Deal()
	span.SetAttributes(
		attribute.Int("turn", g.turn.Number),
		attribute.Int("dealt", dealt),
		attribute.Int("room.size", len(g.room)),
		attribute.Bool("fled_last_turn", g.turn.FledLastTurn),
	)
	defer func() {
		span.SetAttributes(
			attribute.Int("resolved", outcome.Resolved),
			attribute.Bool("fled", outcome.Fled),
			attribute.Bool("moved_on", outcome.MovedOn),
			attribute.Bool("died", outcome.Died),
		)
	}()

	for len(g.room) > 0 && g.player.IsAlive() {
		g.phase = PhaseResolving
		opts := g.Options()
		in.Render(g.Snapshot())

		move, err := in.ChooseAction(ctx, opts)
		if err != nil {
			return outcome, err
		}
		if !opts.Allows(move) {
			// Input broke its contract; ask again without touching state.
			g.logger.Warn("illegal move from input",
				zap.Stringer("move", move.Kind), zap.Int("index", move.Index))
			continue
		}

		switch move.Kind {
		case MoveNextRoom:
			g.MoveOn()
			outcome.MovedOn = true
			return outcome, nil
		case MoveFlee:
			g.Flee()
			outcome.Fled = true
			return outcome, nil
		}

		c := g.room[move.Index]
		useWeapon := false
		if c.IsEnemy() && g.player.CanUseWeaponOn(c) {
			w := g.player.Weapon()
			prompt := g.narration.Line(gamedata.KeyWeaponPrompt,
				"enemy", c.String(),
				"weapon", w.String(),
				"damage", strconv.Itoa(combat.CalculateDamage(g.player, c, true)),
				"rank", strconv.Itoa(c.Rank()),
			)
			useWeapon, err = in.Confirm(ctx, prompt)
			if err != nil {
				return outcome, err
			}
		}

		g.Take(ctx, move.Index, useWeapon)
		outcome.Resolved++
	}

	outcome.Died = !g.player.IsAlive()
	return outcome, nil
}

// Deal refills the room to four cards, or as many as the deck has left, and
// returns how many were dealt. Cards carried over stay at the front.
func (g *Game) Deal() int {
	dealt := g.deck.Deal(DealCount(len(g.room)))
	g.room = append(g.room, dealt...)
	g.phase = PhaseRoomStart
	g.turn.PotionUsed = false

	g.narrate(gamedata.KeyRoom, "room", joinCards(g.room))
	g.logger.Info("room dealt",
		zap.Int("turn", g.turn.Number),
		zap.Int("dealt", len(dealt)),
		zap.Strings("room", cardStrings(g.room)),
		zap.Int("deck_size", g.deck.Len()),
	)
	return len(dealt)
}

// Take resolves the room card at index and removes it from the room.
// useWeapon is ignored unless the card is an enemy the weapon can defeat.
// It panics if index is out of range; callers check Options first.
func (g *Game) Take(ctx context.Context, index int, useWeapon bool) combat.Result {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "card.resolve")
	defer span.End()

	c := g.room[index]
	result := combat.Resolve(g.player, c, useWeapon, g.turn.PotionUsed)
	if result.Drank {
		g.turn.PotionUsed = true
	}

	g.room = append(g.room[:index:index], g.room[index+1:]...)
	g.resolved = append(g.resolved, c)
	g.narrateResult(result)

	span.SetAttributes(
		attribute.String("card", c.String()),
		attribute.String("kind", c.Kind().String()),
		attribute.String("event", string(result.Event)),
		attribute.Int("damage", result.Damage),
		attribute.Int("healing", result.Healing),
		attribute.Int("health", g.player.Health),
	)
	g.logger.Info("card resolved",
		zap.Int("turn", g.turn.Number),
		zap.Stringer("card", c),
		zap.String("event", string(result.Event)),
		zap.Int("damage", result.Damage),
		zap.Int("healing", result.Healing),
		zap.Int("health", g.player.Health),
	)

	if !g.player.IsAlive() {
		g.phase = PhaseDefeat
	}
	return result
}

// Flee shuffles the room back under the deck and empties it.
func (g *Game) Flee() {
	g.logger.Info("fled room",
		zap.Int("turn", g.turn.Number),
		zap.Strings("room", cardStrings(g.room)),
	)
	g.deck.ReturnAndShuffle(g.room)
	g.room = g.room[:0]
	g.phase = PhaseFled
	g.narrate(gamedata.KeyFlee)
}

// MoveOn ends the turn leaving the last card in the room for the next deal.
func (g *Game) MoveOn() {
	g.phase = PhaseRoomCleared
	if len(g.room) > 0 {
		g.narrate(gamedata.KeyMoveOn, "card", g.room[0].String())
	}
	g.logger.Info("moved on", zap.Int("turn", g.turn.Number), zap.Int("carried", len(g.room)))
}

// finish settles the final phase once no more turns can be played.
func (g *Game) finish() {
	if g.player.IsAlive() {
		g.phase = PhaseVictory
		g.narrate(gamedata.KeyVictory)
	} else {
		g.phase = PhaseDefeat
		g.narrate(gamedata.KeyDeath)
	}
	g.logger.Info("game over",
		zap.Stringer("outcome", g.phase),
		zap.Int("health", g.player.Health),
		zap.Int("turns", g.turn.Number-1),
		zap.Int("cards_resolved", len(g.resolved)),
	)
}

func (g *Game) narrateResult(r combat.Result) {
	if r.Event == combat.EventWeaponEquip && r.Discarded != nil {
		g.narrate(gamedata.KeyWeaponDiscard, "old", r.Discarded.String(), "card", r.Card.String())
	}
	weapon := ""
	if w := g.player.Weapon(); w != nil {
		weapon = w.String()
	}
	g.narrate(string(r.Event), "card", r.Card.String(), "weapon", weapon)
}

func (g *Game) narrate(key string, vars ...string) {
	g.log = append(g.log, g.narration.Line(key, vars...))
	if len(g.log) > logSize {
		g.log = g.log[len(g.log)-logSize:]
	}
}

func cardStrings(cards []card.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

func joinCards(cards []card.Card) string {
	return strings.Join(cardStrings(cards), " ")
}
