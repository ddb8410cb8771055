package game

const (
	WinReward  = 1.0
	LossReward = -WinReward
	DrawReward = 0.0
)

// Outcome is a per-player reward vector indexed by Player. Players beyond its
// length receive DrawReward, so a nil Outcome is a draw for any number of players.
type Outcome []float64

func (o Outcome) Reward(p Player) float64 {
	if p < 0 || int(p) >= len(o) {
		return DrawReward
	}
	return o[p]
}

// Winner returns the single player holding the highest reward, or false on a tie.
func (o Outcome) Winner() (Player, bool) {
	best := Player(-1)
	tied := false
	for p, r := range o {
		switch {
		case best < 0 || r > o[best]:
			best = Player(p)
			tied = false
		case r == o[best]:
			tied = true
		}
	}
	if best < 0 || tied {
		return -1, false
	}
	return best, true
}

// Win rewards the winner and penalizes every other player.
func Win(winner Player, players int) Outcome {
	o := make(Outcome, players)
	for p := range o {
		o[p] = LossReward
	}
	if int(winner) < players {
		o[winner] = WinReward
	}
	return o
}

func Draw(players int) Outcome {
	return make(Outcome, players)
}
