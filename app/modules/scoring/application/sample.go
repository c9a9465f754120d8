package scoringservice

import scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"

var (
	samplePlayer1Scores = []int{4, 5, 4, 3, 5, 4, 4, 3, 4}
	samplePlayer2Scores = []int{5, 4, 3, 4, 4, 5, 3, 4, 5}
)

// SampleHoles returns nine holes ranked 1..9 in hole order.
func SampleHoles() []scoringtypes.Hole {
	holes := make([]scoringtypes.Hole, len(samplePlayer1Scores))
	for i := range holes {
		holes[i] = scoringtypes.Hole{Number: i + 1, HandicapRank: i + 1}
	}
	return holes
}

// DefaultHoles returns n holes ranked by hole number, or uses ranks when
// given.
func DefaultHoles(n int, ranks []int) []scoringtypes.Hole {
	holes := make([]scoringtypes.Hole, n)
	for i := range holes {
		rank := i + 1
		if i < len(ranks) {
			rank = ranks[i]
		}
		holes[i] = scoringtypes.Hole{Number: i + 1, HandicapRank: rank}
	}
	return holes
}

// SampleEvent builds the fixed practice card used by the match command.
func SampleEvent(p1 scoringtypes.PlayerName, h1 int, p2 scoringtypes.PlayerName, h2 int) scoringtypes.Event {
	s1 := make([]int, len(samplePlayer1Scores))
	copy(s1, samplePlayer1Scores)
	s2 := make([]int, len(samplePlayer2Scores))
	copy(s2, samplePlayer2Scores)

	return scoringtypes.Event{Rounds: []scoringtypes.Round{{
		Holes: SampleHoles(),
		Players: []scoringtypes.PlayerScores{
			{Player: p1, CourseHandicap: h1, Gross: s1},
			{Player: p2, CourseHandicap: h2, Gross: s2},
		},
	}}}
}
