// Package cli plays a game of Phase Ten at a terminal. Players share the
// same input and output and take turns in seat order.
package cli

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/minaorangina/phaseten/deck"
	"github.com/minaorangina/phaseten/display"
	"github.com/minaorangina/phaseten/game"
	"github.com/minaorangina/phaseten/phase"
	"go.uber.org/zap"
)

// ErrInputClosed means there is nothing left to read
var ErrInputClosed = errors.New("input closed")

type conn struct {
	In  *bufio.Scanner
	Out io.Writer
}

// Controller turns lines of input into moves on a game
type Controller struct {
	conn   *conn
	game   *game.Game
	logger *zap.Logger
}

func NewController(in io.Reader, out io.Writer, g *game.Game, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		conn:   &conn{In: bufio.NewScanner(in), Out: out},
		game:   g,
		logger: logger,
	}
}

// Run plays rounds until the game is over or the input runs out.
// Running out of input is not an error.
func (c *Controller) Run() error {
	g := c.game
	SendText(c.conn.Out, welcomeText, len(g.Players), strings.Join(playerNames(g), ", "))

	for g.State() != game.GameOver {
		if g.State() != game.RoundInProgress {
			if err := g.StartRound(); err != nil {
				return err
			}
			SendText(c.conn.Out, roundText, g.Round)
		}

		for g.State() == game.RoundInProgress {
			if err := c.PlayTurn(); err != nil {
				if errors.Is(err, ErrInputClosed) {
					SendText(c.conn.Out, goodbyeText)
					return nil
				}
				return err
			}
		}

		SendText(c.conn.Out, roundOverText, g.Round)
		SendText(c.conn.Out, "%s", buildStandingsText(g))
	}

	if winner, ok := g.Winner(); ok {
		SendText(c.conn.Out, winnerText, winner.Name, winner.Points)
	}
	return nil
}

// PlayTurn plays the current player's turn: draw, an optional phase
// attempt, optional hits once out, then a discard.
func (c *Controller) PlayTurn() error {
	g := c.game
	p := g.CurrentPlayer()
	c.logger.Debug("turn started", zap.String("player_id", p.ID), zap.Int("round", g.Round))

	SendText(c.conn.Out, turnText, p.Name, p.Phase, phase.Describe(p.Phase))
	SendText(c.conn.Out, "%s", buildPlayerText(g, p))

	if err := c.draw(p); err != nil {
		return err
	}
	if g.State() != game.RoundInProgress {
		return nil
	}

	if !p.Out {
		attempt, err := c.yesNo(attemptPhaseText)
		if err != nil {
			return err
		}
		if attempt {
			if err := c.attemptPhase(p); err != nil {
				return err
			}
		}
		if g.State() != game.RoundInProgress {
			return nil
		}
	}

	if p.Out {
		if err := c.hits(p); err != nil {
			return err
		}
		if g.State() != game.RoundInProgress {
			return nil
		}
	}

	return c.discard(p)
}

func (c *Controller) draw(p *game.Player) error {
	g := c.game
	for {
		SendText(c.conn.Out, drawMenuText)
		choice, err := c.readLine()
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			card, err := g.DrawFromDiscard()
			if errors.Is(err, game.ErrSkipOnDiscard) {
				SendText(c.conn.Out, retrySkipText)
				continue
			}
			if errors.Is(err, deck.ErrEmptyPile) {
				SendText(c.conn.Out, emptyDiscardText)
				continue
			}
			if err != nil {
				return err
			}
			SendText(c.conn.Out, drewText, card)
			return nil

		case "2":
			card, recycled, err := g.DrawFromPile()
			if errors.Is(err, deck.ErrDeckExhausted) {
				SendText(c.conn.Out, exhaustedText)
				return nil
			}
			if err != nil {
				return err
			}
			if recycled {
				SendText(c.conn.Out, recycledText)
			}
			SendText(c.conn.Out, drewText, card)
			return nil

		case "3":
			p.Hand.SortByFace()
			SendText(c.conn.Out, "%s\n", display.Hand(p.Hand))

		case "4":
			p.Hand.SortByColor()
			SendText(c.conn.Out, "%s\n", display.Hand(p.Hand))

		default:
			c.logger.Debug("invalid draw choice", zap.String("input", choice))
			SendText(c.conn.Out, retryDrawText)
		}
	}
}

func (c *Controller) attemptPhase(p *game.Player) error {
	g := c.game
	for i, claim := range p.Claims {
		for done := false; !done; {
			SendText(c.conn.Out, "\n%s\n%s\n", display.Claim(claim), display.Hand(p.Hand))
			SendText(c.conn.Out, stagePromptText, i+1)
			line, err := c.readLine()
			if err != nil {
				return err
			}

			for _, id := range strings.Fields(line) {
				if strings.EqualFold(id, "F") {
					done = true
					break
				}
				if err := g.Stage(i, id); err != nil {
					SendText(c.conn.Out, retryCardText, id, err)
				}
			}
		}
	}

	ok, err := g.CompletePhase()
	if err != nil {
		return err
	}
	if ok {
		SendText(c.conn.Out, phaseCompleteText)
	} else {
		SendText(c.conn.Out, phaseFailedText)
	}
	return nil
}

func (c *Controller) hits(p *game.Player) error {
	g := c.game
	for g.State() == game.RoundInProgress {
		SendText(c.conn.Out, "%s", buildHitTargetsText(g))
		SendText(c.conn.Out, "\n%s\n", display.Hand(p.Hand))
		SendText(c.conn.Out, hitPromptText)
		line, err := c.readLine()
		if err != nil {
			return err
		}
		if line == "" || strings.EqualFold(line, "n") {
			return nil
		}

		owner, claimIdx, cardID, ok := c.parseHit(line)
		if !ok {
			SendText(c.conn.Out, retryHitText)
			continue
		}

		hit, err := g.Hit(owner.ID, claimIdx, cardID)
		if err != nil {
			SendText(c.conn.Out, retryCardText, cardID, err)
			continue
		}
		if !hit {
			SendText(c.conn.Out, hitMissText, cardID)
			continue
		}
		SendText(c.conn.Out, hitText, cardID)
	}
	return nil
}

// parseHit reads "<player number> <claim number> <card>", numbered from 1
func (c *Controller) parseHit(line string) (*game.Player, int, string, bool) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return nil, 0, "", false
	}
	playerNum, err := strconv.Atoi(fields[0])
	if err != nil || playerNum < 1 || playerNum > len(c.game.Players) {
		return nil, 0, "", false
	}
	claimNum, err := strconv.Atoi(fields[1])
	if err != nil || claimNum < 1 {
		return nil, 0, "", false
	}
	return c.game.Players[playerNum-1], claimNum - 1, fields[2], true
}

func (c *Controller) discard(p *game.Player) error {
	for {
		SendText(c.conn.Out, "\n%s\n", display.Hand(p.Hand))
		SendText(c.conn.Out, discardPromptText)
		id, err := c.readLine()
		if err != nil {
			return err
		}

		result, err := c.game.Discard(id)
		if err != nil {
			SendText(c.conn.Out, retryCardText, id, err)
			continue
		}
		if result.Skipped != nil {
			SendText(c.conn.Out, skippedText, result.Skipped.Name)
		}
		return nil
	}
}

func (c *Controller) yesNo(prompt string) (bool, error) {
	for {
		SendText(c.conn.Out, prompt)
		answer, err := c.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			SendText(c.conn.Out, retryYesNoText)
		}
	}
}

func (c *Controller) readLine() (string, error) {
	if !c.conn.In.Scan() {
		if err := c.conn.In.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.conn.In.Text()), nil
}

func playerNames(g *game.Game) []string {
	names := make([]string, 0, len(g.Players))
	for _, p := range g.Players {
		names = append(names, p.Name)
	}
	return names
}
