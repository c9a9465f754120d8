package scoringtypes

import "fmt"

// PlayerName identifies a player within an event.
type PlayerName string

func (n PlayerName) String() string { return string(n) }

// TieLabel is reported as the winner when no single player comes out ahead.
const TieLabel = "Tie"

// Mode selects how a winner is decided.
type Mode string

const (
	ModeMatchPlay  Mode = "match"
	ModeStrokePlay Mode = "stroke"
)

// ParseMode converts a user supplied string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMatchPlay, "match-play", "matchplay":
		return ModeMatchPlay, nil
	case ModeStrokePlay, "stroke-play", "strokeplay", "":
		return ModeStrokePlay, nil
	default:
		return "", fmt.Errorf("unknown scoring mode %q (want match or stroke)", s)
	}
}

// Hole is a single hole of a round. HandicapRank 1 is the hardest hole.
type Hole struct {
	Number       int `json:"hole" yaml:"hole"`
	HandicapRank int `json:"handicap" yaml:"handicap"`
}

// PlayerScores is the raw input for one player in one round.
type PlayerScores struct {
	Player         PlayerName
	CourseHandicap int
	Gross          []int
}

// Round is one set of holes played by a group of players. Gross scores are
// ordered the same way as Holes.
type Round struct {
	Holes   []Hole
	Players []PlayerScores
}

// Event is an ordered list of rounds scored together.
type Event struct {
	Rounds []Round
}

// PlayerRoundRecord is the computed breakdown for a player.
type PlayerRoundRecord struct {
	Player         PlayerName `json:"player"`
	CourseHandicap int        `json:"handicap"`
	Gross          []int      `json:"gross_scores"`
	Strokes        []int      `json:"strokes_received"`
	Net            []int      `json:"net_scores"`
	TotalGross     int        `json:"total_gross"`
	TotalNet       int        `json:"total_net"`
}

// StrokesReceived returns the total handicap strokes applied to the record.
func (r PlayerRoundRecord) StrokesReceived() int {
	return r.TotalGross - r.TotalNet
}

// Result is the outcome of scoring an event.
type Result struct {
	Mode     Mode                `json:"mode"`
	Winner   string              `json:"winner"`
	Summary  string              `json:"summary"`
	Players  []PlayerRoundRecord `json:"players"`
	HolesWon map[PlayerName]int  `json:"holes_won,omitempty"`
}

// IsTie reports whether the event ended level.
func (r Result) IsTie() bool { return r.Winner == TieLabel }

// Player returns the record for the named player.
func (r Result) Player(name PlayerName) (PlayerRoundRecord, bool) {
	for _, p := range r.Players {
		if p.Player == name {
			return p, true
		}
	}
	return PlayerRoundRecord{}, false
}
