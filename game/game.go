package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/minaorangina/phaseten/deck"
	"github.com/minaorangina/phaseten/phase"
	"go.uber.org/zap"
)

var (
	ErrTooFewPlayers        = errors.New("minimum of 2 players required")
	ErrTooManyPlayers       = errors.New("maximum of 6 players allowed")
	ErrInvalidHandSize      = errors.New("hand size does not fit the deck")
	ErrUnknownPlayer        = errors.New("unknown player")
	ErrUnknownClaim         = errors.New("unknown claim")
	ErrRoundInProgress      = errors.New("round is already in progress")
	ErrRoundNotInProgress   = errors.New("round is not in progress")
	ErrGameOver             = errors.New("game is already over")
	ErrAlreadyDrawn         = errors.New("already drawn this turn")
	ErrMustDraw             = errors.New("must draw first")
	ErrSkipOnDiscard        = errors.New("cannot draw a skip from the discard pile")
	ErrPhaseAlreadyComplete = errors.New("phase already complete this round")
	ErrPhaseNotComplete     = errors.New("phase must be complete first")
	ErrClaimNotComplete     = errors.New("claim has not been completed")
)

const (
	minPlayers      = 2
	maxPlayers      = 6
	DefaultHandSize = 10
)

// PlayState is where the game is between and during rounds
type PlayState int

const (
	RoundNotStarted PlayState = iota
	RoundInProgress
	RoundOver
	GameOver
)

var playStateNames = []string{"RoundNotStarted", "RoundInProgress", "RoundOver", "GameOver"}

func (s PlayState) String() string {
	if s < RoundNotStarted || s > GameOver {
		return fmt.Sprintf("PlayState(%d)", int(s))
	}
	return playStateNames[s]
}

// Opts configures a new Game. Seats without a name are called "Player N".
type Opts struct {
	ID         string
	Names      []string
	NumPlayers int
	HandSize   int
	Rand       *rand.Rand
	Logger     *zap.Logger
}

// Game runs rounds of Phase Ten, one turn at a time
type Game struct {
	ID      string
	Players []*Player
	Round   int

	pile     *deck.DrawPile
	handSize int
	current  int
	drawn    bool
	state    PlayState
	logger   *zap.Logger
}

// DiscardResult describes the end of a turn
type DiscardResult struct {
	Card      deck.Card
	Skipped   *Player
	RoundOver bool
}

// New constructs a game. Call StartRound to deal.
func New(opts Opts) (*Game, error) {
	numPlayers := opts.NumPlayers
	if len(opts.Names) > numPlayers {
		numPlayers = len(opts.Names)
	}
	if numPlayers < minPlayers {
		return nil, ErrTooFewPlayers
	}
	if numPlayers > maxPlayers {
		return nil, ErrTooManyPlayers
	}

	handSize := opts.HandSize
	if handSize == 0 {
		handSize = DefaultHandSize
	}
	// every hand plus the first discard must come out of one deck
	if handSize < 1 || handSize*numPlayers+1 > deck.DeckSize {
		return nil, fmt.Errorf("%w: %d cards for %d players", ErrInvalidHandSize, handSize, numPlayers)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	id := opts.ID
	if id == "" {
		id = NewID()
	}

	g := &Game{
		ID:       id,
		pile:     deck.NewDrawPile(rng),
		handSize: handSize,
		logger:   logger.With(zap.String("game_id", id)),
	}

	for i := 0; i < numPlayers; i++ {
		name := fmt.Sprintf("Player %d", i+1)
		if i < len(opts.Names) && opts.Names[i] != "" {
			name = opts.Names[i]
		}
		g.Players = append(g.Players, NewPlayer(NewID(), name))
	}

	return g, nil
}

func (g *Game) State() PlayState {
	return g.state
}

func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.current]
}

// HasDrawn reports whether the current player has drawn this turn
func (g *Game) HasDrawn() bool {
	return g.drawn
}

// Pile returns the shared draw pile. Its discard pile hangs off it.
func (g *Game) Pile() *deck.DrawPile {
	return g.pile
}

// Player finds a player by ID
func (g *Game) Player(id string) (*Player, error) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
}

// StartRound shuffles a fresh deck, deals every player a hand and turns
// over the first discard. The first seat moves round by round.
func (g *Game) StartRound() error {
	switch g.state {
	case GameOver:
		return ErrGameOver
	case RoundInProgress:
		return ErrRoundInProgress
	}

	g.Round++
	g.pile.Shuffle()
	for _, p := range g.Players {
		p.Hand.Clear()
		p.Out = false
		p.resetClaims()
	}

	for i := 0; i < g.handSize; i++ {
		for _, p := range g.Players {
			c, _, err := g.pile.Draw()
			if err != nil {
				return err
			}
			p.Hand.Push(c)
		}
	}
	first, _, err := g.pile.Draw()
	if err != nil {
		return err
	}
	g.pile.Discard().Push(first)

	g.current = (g.Round - 1) % len(g.Players)
	g.drawn = false
	g.state = RoundInProgress

	g.logger.Info("round started",
		zap.Int("round", g.Round),
		zap.String("first_player", g.CurrentPlayer().Name),
		zap.String("discard", first.String()),
	)
	return nil
}

// DrawFromPile draws the top of the draw pile into the current player's
// hand. recycled reports that the discard pile had to be reshuffled first.
func (g *Game) DrawFromPile() (card deck.Card, recycled bool, err error) {
	if err := g.checkCanDraw(); err != nil {
		return deck.Card{}, false, err
	}

	card, recycled, err = g.pile.Draw()
	if errors.Is(err, deck.ErrDeckExhausted) {
		g.logger.Error("deck exhausted, ending round", zap.Int("round", g.Round))
		g.endRound()
		return deck.Card{}, false, err
	}
	if err != nil {
		return deck.Card{}, false, err
	}
	if recycled {
		g.logger.Info("discard pile recycled", zap.Int("recycled_cards", g.pile.Size()+1))
	}

	g.take(card)
	return card, recycled, nil
}

// DrawFromDiscard takes the top discard. Skips cannot be taken.
func (g *Game) DrawFromDiscard() (deck.Card, error) {
	if err := g.checkCanDraw(); err != nil {
		return deck.Card{}, err
	}

	discard := g.pile.Discard()
	top, err := discard.Top()
	if err != nil {
		return deck.Card{}, err
	}
	if top.IsSkip() {
		return deck.Card{}, ErrSkipOnDiscard
	}

	card, err := discard.Pop()
	if err != nil {
		return deck.Card{}, err
	}

	g.take(card)
	return card, nil
}

// Stage moves a card from the current player's hand into one of their claims
func (g *Game) Stage(claimIdx int, cardID string) error {
	p, err := g.checkCanPlay()
	if err != nil {
		return err
	}
	if p.Out {
		return ErrPhaseAlreadyComplete
	}
	claim, err := claimAt(p, claimIdx)
	if err != nil {
		return err
	}

	card, err := p.Hand.Take(cardID)
	if err != nil {
		return err
	}
	claim.Push(card)
	return nil
}

// Unstage returns every staged card to the current player's hand
func (g *Game) Unstage() int {
	if g.state != RoundInProgress {
		return 0
	}
	return g.CurrentPlayer().unstage()
}

// CompletePhase confirms the current player's claims if every one of them
// is valid. Otherwise the staged cards go back to the hand.
func (g *Game) CompletePhase() (bool, error) {
	p, err := g.checkCanPlay()
	if err != nil {
		return false, err
	}
	if p.Out {
		return false, ErrPhaseAlreadyComplete
	}

	for _, c := range p.Claims {
		if !c.Valid() {
			returned := p.unstage()
			g.logger.Debug("phase attempt failed",
				zap.String("player_id", p.ID),
				zap.Int("phase", p.Phase),
				zap.Int("returned", returned),
			)
			return false, nil
		}
	}

	for _, c := range p.Claims {
		if err := c.Merge(); err != nil {
			return false, err
		}
	}
	p.Out = true

	g.logger.Info("phase complete",
		zap.String("player_id", p.ID),
		zap.String("player", p.Name),
		zap.Int("phase", p.Phase),
	)

	if p.Hand.IsEmpty() {
		g.endRound()
	}
	return true, nil
}

// Hit adds a card from the current player's hand to any completed claim.
// Only players who have completed their own phase may hit. The card is
// returned to the hand if it does not fit.
func (g *Game) Hit(ownerID string, claimIdx int, cardID string) (bool, error) {
	p, err := g.checkCanPlay()
	if err != nil {
		return false, err
	}
	if !p.Out {
		return false, ErrPhaseNotComplete
	}
	owner, err := g.Player(ownerID)
	if err != nil {
		return false, err
	}
	claim, err := claimAt(owner, claimIdx)
	if err != nil {
		return false, err
	}
	if !claim.Complete() {
		return false, ErrClaimNotComplete
	}

	card, err := p.Hand.Take(cardID)
	if err != nil {
		return false, err
	}
	claim.Push(card)

	if !claim.Valid() {
		claim.ReturnCards(p.Hand)
		return false, nil
	}
	if err := claim.Merge(); err != nil {
		return false, err
	}

	g.logger.Info("hit",
		zap.String("player_id", p.ID),
		zap.String("owner_id", owner.ID),
		zap.String("card", card.String()),
	)

	if p.Hand.IsEmpty() {
		g.endRound()
	}
	return true, nil
}

// Discard ends the current player's turn by discarding a card. Staged
// cards are returned to the hand first. A discarded skip skips the next
// player. Emptying the hand ends the round.
func (g *Game) Discard(cardID string) (DiscardResult, error) {
	p, err := g.checkCanPlay()
	if err != nil {
		return DiscardResult{}, err
	}

	p.unstage()
	card, err := p.Hand.Take(cardID)
	if err != nil {
		return DiscardResult{}, err
	}
	g.pile.Discard().Push(card)
	result := DiscardResult{Card: card}

	if p.Hand.IsEmpty() {
		g.endRound()
		result.RoundOver = true
		return result, nil
	}

	g.advance()
	if card.IsSkip() {
		result.Skipped = g.CurrentPlayer()
		g.logger.Info("player skipped",
			zap.String("player_id", result.Skipped.ID),
			zap.String("by", p.ID),
		)
		g.advance()
	}
	g.drawn = false

	return result, nil
}

// Winner is the player who finished phase 10 with the fewest points
func (g *Game) Winner() (*Player, bool) {
	if g.state != GameOver {
		return nil, false
	}

	var winner *Player
	for _, p := range g.Players {
		if !p.Finished() {
			continue
		}
		if winner == nil || p.Points < winner.Points {
			winner = p
		}
	}
	return winner, winner != nil
}

// Standings orders players by phase reached, then by fewest points
func (g *Game) Standings() []*Player {
	standings := make([]*Player, len(g.Players))
	copy(standings, g.Players)
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Phase != b.Phase {
			return a.Phase > b.Phase
		}
		return a.Points < b.Points
	})
	return standings
}

// CardCount counts every card in play: both piles, every hand and claim
func (g *Game) CardCount() int {
	n := g.pile.Size() + g.pile.Discard().Size()
	for _, p := range g.Players {
		n += p.CardCount()
	}
	return n
}

func (g *Game) endRound() {
	gameOver := false
	for _, p := range g.Players {
		p.unstage()
		p.Points += p.Hand.Sum()
		if p.Out {
			p.Phase++
		}
		if p.Finished() {
			gameOver = true
		}
		g.logger.Info("round scored",
			zap.Int("round", g.Round),
			zap.String("player_id", p.ID),
			zap.Int("points", p.Points),
			zap.Int("phase", p.Phase),
		)
	}

	g.drawn = false
	g.state = RoundOver
	if gameOver {
		g.state = GameOver
	}
}

func (g *Game) advance() {
	g.current = (g.current + 1) % len(g.Players)
}

func (g *Game) take(card deck.Card) {
	g.CurrentPlayer().Hand.Push(card)
	g.drawn = true
}

func (g *Game) checkInProgress() error {
	switch g.state {
	case RoundInProgress:
		return nil
	case GameOver:
		return ErrGameOver
	default:
		return ErrRoundNotInProgress
	}
}

func (g *Game) checkCanDraw() error {
	if err := g.checkInProgress(); err != nil {
		return err
	}
	if g.drawn {
		return ErrAlreadyDrawn
	}
	return nil
}

func (g *Game) checkCanPlay() (*Player, error) {
	if err := g.checkInProgress(); err != nil {
		return nil, err
	}
	if !g.drawn {
		return nil, ErrMustDraw
	}
	return g.CurrentPlayer(), nil
}

func claimAt(p *Player, idx int) (*phase.Claim, error) {
	if idx < 0 || idx >= len(p.Claims) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownClaim, idx)
	}
	return p.Claims[idx], nil
}
