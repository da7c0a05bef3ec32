package entity

// Score is the running tally of finished games.
type Score struct {
	GamesFinished int64 `json:"games_finished"`
	XWins         int64 `json:"x_wins"`
	OWins         int64 `json:"o_wins"`
	Draws         int64 `json:"draws"`
}

// Record adds one finished game. Any other winner value is ignored.
func (that *Score) Record(winner Mark) {
	switch winner {
	case PlayerX:
		that.XWins++
	case PlayerO:
		that.OWins++
	case PlayerTie:
		that.Draws++
	default:
		return
	}

	that.GamesFinished++
}
