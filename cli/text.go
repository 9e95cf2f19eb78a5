package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/phaseten/display"
	"github.com/minaorangina/phaseten/game"
	"github.com/minaorangina/phaseten/phase"
)

const (
	welcomeText        = "Welcome to Phase Ten! %d players: %s\n"
	roundText          = "\n=== Round %d ===\n"
	turnText           = "\n%s, it's your turn. Phase %d: %s\n\n"
	drawMenuText       = "\nChoose an option:\n  1 - take the discard\n  2 - draw from the deck\n  3 - sort your hand by number\n  4 - sort your hand by color\n> "
	retryDrawText      = "Invalid choice. Please enter 1, 2, 3 or 4\n"
	retrySkipText      = "You can't take a skip from the discard pile.\n"
	emptyDiscardText   = "The discard pile is empty.\n"
	drewText           = "You drew %s\n"
	recycledText       = "The deck ran out, so the discard pile was shuffled back in.\n"
	exhaustedText      = "There are no cards left to draw. The round is over.\n"
	attemptPhaseText   = "Would you like to attempt your phase? [y/n] "
	retryYesNoText     = "Invalid choice. Please enter \"y\" for \"yes\" or \"n\" for \"no\"\n"
	stagePromptText    = "Enter cards for claim %d (e.g. r5 w), or F to finish: "
	retryCardText      = "Can't play %q: %s\n"
	phaseCompleteText  = "\nPhase complete! 🎉\n"
	phaseFailedText    = "\nThose cards don't make your phase. They're back in your hand.\n"
	hitPromptText      = "To hit, enter a player number, claim number and card (e.g. 1 2 r7), or N to continue: "
	retryHitText       = "Invalid hit. Please enter a player number, a claim number and a card\n"
	hitMissText        = "%s doesn't fit there.\n"
	hitText            = "Hit! %s added.\n"
	discardPromptText  = "Enter a card to discard: "
	skippedText        = "%s is skipped!\n"
	roundOverText      = "\nRound %d is over.\n"
	standingsTitleText = "\nStandings:\n"
	standingText       = "  %d. %s - phase %d, %d points\n"
	winnerText         = "\n%s wins the game with %d points! 🏆\n"
	goodbyeText        = "\nGoodbye!\n"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

func buildPlayerText(g *game.Game, p *game.Player) string {
	var b strings.Builder
	b.WriteString(display.Table(g.Pile()))
	b.WriteString("\n\n")
	if len(p.Claims) > 0 {
		b.WriteString(display.Claims(p.Claims))
		b.WriteString("\n")
	}
	b.WriteString(display.Hand(p.Hand))
	b.WriteString("\n")
	return b.String()
}

// buildHitTargetsText lists the completed claims of every player who is out
func buildHitTargetsText(g *game.Game) string {
	var b strings.Builder
	for i, p := range g.Players {
		if !p.Out {
			continue
		}
		fmt.Fprintf(&b, "\nPlayer %d - %s\n", i+1, p.Name)
		b.WriteString(display.Claims(p.Claims))
	}
	return b.String()
}

func buildStandingsText(g *game.Game) string {
	text := standingsTitleText
	for i, p := range g.Standings() {
		ph := p.Phase
		if ph > phase.NumPhases {
			ph = phase.NumPhases
		}
		text += fmt.Sprintf(standingText, i+1, p.Name, ph, p.Points)
	}
	return text
}
