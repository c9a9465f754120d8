package parsers

import (
	"fmt"
	"sort"

	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
	"gopkg.in/yaml.v3"
)

type yamlDocument struct {
	Rounds []yamlRound `yaml:"rounds"`
}

type yamlRound struct {
	PlayerHandicaps map[string]int `yaml:"player_handicaps"`
	Holes           []yamlHole     `yaml:"holes"`
}

type yamlHole struct {
	Hole     int         `yaml:"hole"`
	Handicap int         `yaml:"handicap"`
	Scores   []yamlScore `yaml:"scores"`
}

type yamlScore struct {
	Player string `yaml:"player"`
	Score  int    `yaml:"score"`
}

// YAMLParser parses the rounds document:
//
//	rounds:
//	  - player_handicaps: {Player A: 10}
//	    holes:
//	      - hole: 1
//	        handicap: 5
//	        scores: [{player: Player A, score: 4}]
type YAMLParser struct{}

// NewYAMLParser creates a new YAML parser
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse parses YAML data and returns an Event
func (p *YAMLParser) Parse(data []byte) (*scoringtypes.Event, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid YAML: %v", ErrMalformedInput, err)
	}

	event := &scoringtypes.Event{Rounds: make([]scoringtypes.Round, 0, len(doc.Rounds))}
	carried := map[string]int{}
	for i, r := range doc.Rounds {
		round, err := r.toRound(carried)
		if err != nil {
			return nil, fmt.Errorf("%w: round %d: %v", ErrMalformedInput, i+1, err)
		}
		for _, p := range round.Players {
			carried[p.Player.String()] = p.CourseHandicap
		}
		event.Rounds = append(event.Rounds, round)
	}
	return event, nil
}

// toRound orders holes by number and lays out each player's scores in that
// order. A player missing from player_handicaps keeps the handicap from an
// earlier round, or plays off zero.
func (r yamlRound) toRound(carried map[string]int) (scoringtypes.Round, error) {
	holes := make([]yamlHole, len(r.Holes))
	copy(holes, r.Holes)
	sort.SliceStable(holes, func(i, j int) bool { return holes[i].Hole < holes[j].Hole })

	round := scoringtypes.Round{Holes: make([]scoringtypes.Hole, 0, len(holes))}
	index := map[string]int{}

	for hi, h := range holes {
		if hi > 0 && holes[hi-1].Hole == h.Hole {
			return round, fmt.Errorf("hole %d listed twice", h.Hole)
		}
		round.Holes = append(round.Holes, scoringtypes.Hole{Number: h.Hole, HandicapRank: h.Handicap})

		for _, s := range h.Scores {
			if s.Player == "" {
				return round, fmt.Errorf("hole %d has a score without a player", h.Hole)
			}
			pi, ok := index[s.Player]
			if !ok {
				pi = len(round.Players)
				index[s.Player] = pi
				handicap, ok := r.PlayerHandicaps[s.Player]
				if !ok {
					handicap = carried[s.Player]
				}
				round.Players = append(round.Players, scoringtypes.PlayerScores{
					Player:         scoringtypes.PlayerName(s.Player),
					CourseHandicap: handicap,
				})
			}

			player := &round.Players[pi]
			if len(player.Gross) != hi {
				if len(player.Gross) > hi {
					return round, fmt.Errorf("player %q has two scores on hole %d", s.Player, h.Hole)
				}
				return round, fmt.Errorf("player %q has no score for hole %d", s.Player, holes[len(player.Gross)].Hole)
			}
			player.Gross = append(player.Gross, s.Score)
		}
	}

	for _, player := range round.Players {
		if len(player.Gross) != len(holes) {
			return round, fmt.Errorf("player %q has no score for hole %d", player.Player, holes[len(player.Gross)].Hole)
		}
	}
	return round, nil
}
