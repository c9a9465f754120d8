package scoringservice

import (
	"fmt"

	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
)

// NetScores subtracts the allocated strokes from each gross score. A net
// score below zero is kept as is.
func NetScores(gross, strokes []int) []int {
	net := make([]int, len(gross))
	for i, g := range gross {
		s := 0
		if i < len(strokes) {
			s = strokes[i]
		}
		net[i] = g - s
	}
	return net
}

// ValidateRound checks the invariants the engine relies on.
func ValidateRound(round scoringtypes.Round) error {
	if len(round.Holes) == 0 {
		return ErrNoHoles
	}

	seen := make(map[int]int, len(round.Holes))
	for _, h := range round.Holes {
		if h.HandicapRank <= 0 {
			return fmt.Errorf("%w: hole %d has rank %d", ErrInvalidHoleRank, h.Number, h.HandicapRank)
		}
		if other, ok := seen[h.HandicapRank]; ok {
			return fmt.Errorf("%w: holes %d and %d both ranked %d", ErrDuplicateHoleRank, other, h.Number, h.HandicapRank)
		}
		seen[h.HandicapRank] = h.Number
	}

	for _, p := range round.Players {
		if len(p.Gross) != len(round.Holes) {
			return fmt.Errorf("%w: player %q has %d scores for %d holes",
				ErrInconsistentHoleCount, p.Player, len(p.Gross), len(round.Holes))
		}
	}
	return nil
}

// ComputeRound validates a round and computes a record for every player in it.
func ComputeRound(round scoringtypes.Round) ([]scoringtypes.PlayerRoundRecord, error) {
	if err := ValidateRound(round); err != nil {
		return nil, err
	}

	records := make([]scoringtypes.PlayerRoundRecord, 0, len(round.Players))
	for _, p := range round.Players {
		strokes := AllocateStrokes(p.CourseHandicap, round.Holes)
		net := NetScores(p.Gross, strokes)

		gross := make([]int, len(p.Gross))
		copy(gross, p.Gross)

		records = append(records, scoringtypes.PlayerRoundRecord{
			Player:         p.Player,
			CourseHandicap: p.CourseHandicap,
			Gross:          gross,
			Strokes:        strokes,
			Net:            net,
			TotalGross:     sum(gross),
			TotalNet:       sum(net),
		})
	}
	return records, nil
}

// ComputeEvent scores every round and folds the results into one record per
// player, in order of first appearance. Sequences are concatenated across
// rounds; the displayed handicap is the one from the player's first round.
func ComputeEvent(event scoringtypes.Event) ([]scoringtypes.PlayerRoundRecord, error) {
	var (
		order   []scoringtypes.PlayerName
		byName  = map[scoringtypes.PlayerName]*scoringtypes.PlayerRoundRecord{}
		roundNo int
	)

	for _, round := range event.Rounds {
		roundNo++
		records, err := ComputeRound(round)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", roundNo, err)
		}

		for _, rec := range records {
			agg, ok := byName[rec.Player]
			if !ok {
				r := rec
				byName[rec.Player] = &r
				order = append(order, rec.Player)
				continue
			}
			agg.Gross = append(agg.Gross, rec.Gross...)
			agg.Strokes = append(agg.Strokes, rec.Strokes...)
			agg.Net = append(agg.Net, rec.Net...)
			agg.TotalGross += rec.TotalGross
			agg.TotalNet += rec.TotalNet
		}
	}

	if len(order) == 0 {
		return nil, ErrNoPlayers
	}

	out := make([]scoringtypes.PlayerRoundRecord, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out, nil
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
