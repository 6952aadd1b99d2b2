package modes

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	msgPlayerWon  = "player won"
	msgTeamWon    = "team won"
	msgDraw       = "draw"
	msgKill       = "kill"
	msgLocked     = "teams locked"
	msgEliminated = "eliminated"
	msgTeamsLeft  = "teams left"
)

func init() {
	message.SetString(language.English, msgPlayerWon, "%s has won the match!")
	message.SetString(language.English, msgTeamWon, "Team %s has won the match!")
	message.SetString(language.English, msgDraw, "The match ended in a draw!")
	message.SetString(language.English, msgKill, "%s killed %s (%d/%d)")
	message.SetString(language.English, msgLocked, "Teams are locked, dying is final from now on!")
	message.SetString(language.English, msgEliminated, "%s has been eliminated!")
	message.Set(language.English, msgTeamsLeft, plural.Selectf(1, "%d",
		"=1", "There is %[1]d team left!",
		"other", "There are %[1]d teams left!",
	))
}

var printer = message.NewPrinter(language.English)
