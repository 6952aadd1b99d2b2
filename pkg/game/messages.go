package game

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	msgMinutesRemaining = "minutes remaining"
	msgSecondsRemaining = "seconds remaining"
	msgTooLate          = "too late to join"
	msgLeft             = "left the match"
	msgJoinedTeam       = "joined team"
)

func init() {
	message.Set(language.English, msgMinutesRemaining, plural.Selectf(1, "%d",
		"=1", "There is %[1]d minute remaining!",
		"other", "There are %[1]d minutes remaining!",
	))
	message.Set(language.English, msgSecondsRemaining, plural.Selectf(1, "%d",
		"=1", "There is %[1]d second remaining!",
		"other", "There are %[1]d seconds remaining!",
	))
	message.SetString(language.English, msgTooLate, "You are too late to join!")
	message.SetString(language.English, msgLeft, "You have left the match!")
	message.SetString(language.English, msgJoinedTeam, "You have joined the %s!")
}

var printer = message.NewPrinter(language.English)

// countdown returns the announcement for the given number of seconds left
// in the match, if that moment gets one.
func countdown(remaining int) (string, bool) {
	switch {
	case remaining > 0 && remaining%60 == 0:
		return printer.Sprintf(msgMinutesRemaining, remaining/60), true
	case remaining == 30:
		return printer.Sprintf(msgSecondsRemaining, remaining), true
	case remaining > 0 && remaining < 6:
		return printer.Sprintf(msgSecondsRemaining, remaining), true
	default:
		return "", false
	}
}
