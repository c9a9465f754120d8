package scoringservice

import (
	"fmt"

	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
)

// Decide picks a winner from computed records using the given mode.
func Decide(mode scoringtypes.Mode, records []scoringtypes.PlayerRoundRecord) (scoringtypes.Result, error) {
	switch mode {
	case scoringtypes.ModeStrokePlay:
		return DecideStrokePlay(records)
	case scoringtypes.ModeMatchPlay:
		return DecideMatchPlay(records)
	default:
		return scoringtypes.Result{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// DecideStrokePlay awards the event to the unique lowest net total. Any
// share of the lowest total is a tie, whatever the field size.
func DecideStrokePlay(records []scoringtypes.PlayerRoundRecord) (scoringtypes.Result, error) {
	if len(records) == 0 {
		return scoringtypes.Result{}, ErrNoPlayers
	}

	best := records[0].TotalNet
	var leaders []scoringtypes.PlayerName
	for _, r := range records {
		switch {
		case r.TotalNet < best:
			best = r.TotalNet
			leaders = []scoringtypes.PlayerName{r.Player}
		case r.TotalNet == best:
			leaders = append(leaders, r.Player)
		}
	}

	res := scoringtypes.Result{
		Mode:    scoringtypes.ModeStrokePlay,
		Players: records,
	}
	switch {
	case len(leaders) == 1:
		res.Winner = leaders[0].String()
		res.Summary = fmt.Sprintf("%s wins with a score of %d", leaders[0], best)
	case len(leaders) == 2 && len(records) == 2:
		res.Winner = scoringtypes.TieLabel
		res.Summary = fmt.Sprintf("Match tied with both players scoring %d", best)
	default:
		res.Winner = scoringtypes.TieLabel
		res.Summary = fmt.Sprintf("Match tied at %d", best)
	}
	return res, nil
}

// DecideMatchPlay compares the two players hole by hole on net score. The
// lower net wins the hole and equal nets halve it.
func DecideMatchPlay(records []scoringtypes.PlayerRoundRecord) (scoringtypes.Result, error) {
	if len(records) != 2 {
		return scoringtypes.Result{}, fmt.Errorf("%w: got %d", ErrMatchPlayNeedsTwoPlayers, len(records))
	}

	a, b := records[0], records[1]
	if len(a.Net) != len(b.Net) {
		return scoringtypes.Result{}, fmt.Errorf("%w: %q played %d holes, %q played %d",
			ErrInconsistentHoleCount, a.Player, len(a.Net), b.Player, len(b.Net))
	}

	aWon, bWon := 0, 0
	for i := range a.Net {
		switch {
		case a.Net[i] < b.Net[i]:
			aWon++
		case b.Net[i] < a.Net[i]:
			bWon++
		}
	}

	res := scoringtypes.Result{
		Mode:    scoringtypes.ModeMatchPlay,
		Players: records,
		HolesWon: map[scoringtypes.PlayerName]int{
			a.Player: aWon,
			b.Player: bWon,
		},
	}
	switch {
	case aWon > bWon:
		res.Winner = a.Player.String()
		res.Summary = fmt.Sprintf("%s wins %d holes to %d", a.Player, aWon, bWon)
	case bWon > aWon:
		res.Winner = b.Player.String()
		res.Summary = fmt.Sprintf("%s wins %d holes to %d", b.Player, bWon, aWon)
	default:
		res.Winner = scoringtypes.TieLabel
		res.Summary = fmt.Sprintf("Match halved with %d holes each", aWon)
	}
	return res, nil
}
