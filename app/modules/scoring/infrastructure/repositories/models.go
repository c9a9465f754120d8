package scoringdb

import (
	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
	"github.com/uptrace/bun"
)

// MaxHoles is the number of hole column pairs in the match table.
const MaxHoles = 18

// Player is a league member and their course handicap.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`
	PlayerID      int64  `bun:"player_id,pk,autoincrement"`
	PlayerName    string `bun:"player_name,notnull,unique"`
	Handicap      int    `bun:"handicap,notnull"`
}

// Match is one head-to-head card with a column per hole and player.
type Match struct {
	bun.BaseModel `bun:"table:scores,alias:r"`
	ID            int64 `bun:"id,pk,autoincrement"`
	Player1ID     int64 `bun:"player1_id,notnull"`
	Player2ID     int64 `bun:"player2_id,notnull"`
	HoleScores
}

// HoleScores holds the holeN_score_p1 / holeN_score_p2 columns.
type HoleScores struct {
	Hole1P1  int `bun:"hole1_score_p1,notnull"`
	Hole1P2  int `bun:"hole1_score_p2,notnull"`
	Hole2P1  int `bun:"hole2_score_p1,notnull"`
	Hole2P2  int `bun:"hole2_score_p2,notnull"`
	Hole3P1  int `bun:"hole3_score_p1,notnull"`
	Hole3P2  int `bun:"hole3_score_p2,notnull"`
	Hole4P1  int `bun:"hole4_score_p1,notnull"`
	Hole4P2  int `bun:"hole4_score_p2,notnull"`
	Hole5P1  int `bun:"hole5_score_p1,notnull"`
	Hole5P2  int `bun:"hole5_score_p2,notnull"`
	Hole6P1  int `bun:"hole6_score_p1,notnull"`
	Hole6P2  int `bun:"hole6_score_p2,notnull"`
	Hole7P1  int `bun:"hole7_score_p1,notnull"`
	Hole7P2  int `bun:"hole7_score_p2,notnull"`
	Hole8P1  int `bun:"hole8_score_p1,notnull"`
	Hole8P2  int `bun:"hole8_score_p2,notnull"`
	Hole9P1  int `bun:"hole9_score_p1,notnull"`
	Hole9P2  int `bun:"hole9_score_p2,notnull"`
	Hole10P1 int `bun:"hole10_score_p1,notnull"`
	Hole10P2 int `bun:"hole10_score_p2,notnull"`
	Hole11P1 int `bun:"hole11_score_p1,notnull"`
	Hole11P2 int `bun:"hole11_score_p2,notnull"`
	Hole12P1 int `bun:"hole12_score_p1,notnull"`
	Hole12P2 int `bun:"hole12_score_p2,notnull"`
	Hole13P1 int `bun:"hole13_score_p1,notnull"`
	Hole13P2 int `bun:"hole13_score_p2,notnull"`
	Hole14P1 int `bun:"hole14_score_p1,notnull"`
	Hole14P2 int `bun:"hole14_score_p2,notnull"`
	Hole15P1 int `bun:"hole15_score_p1,notnull"`
	Hole15P2 int `bun:"hole15_score_p2,notnull"`
	Hole16P1 int `bun:"hole16_score_p1,notnull"`
	Hole16P2 int `bun:"hole16_score_p2,notnull"`
	Hole17P1 int `bun:"hole17_score_p1,notnull"`
	Hole17P2 int `bun:"hole17_score_p2,notnull"`
	Hole18P1 int `bun:"hole18_score_p1,notnull"`
	Hole18P2 int `bun:"hole18_score_p2,notnull"`
}

func (h *HoleScores) player1() []*int {
	return []*int{
		&h.Hole1P1, &h.Hole2P1, &h.Hole3P1, &h.Hole4P1, &h.Hole5P1, &h.Hole6P1,
		&h.Hole7P1, &h.Hole8P1, &h.Hole9P1, &h.Hole10P1, &h.Hole11P1, &h.Hole12P1,
		&h.Hole13P1, &h.Hole14P1, &h.Hole15P1, &h.Hole16P1, &h.Hole17P1, &h.Hole18P1,
	}
}

func (h *HoleScores) player2() []*int {
	return []*int{
		&h.Hole1P2, &h.Hole2P2, &h.Hole3P2, &h.Hole4P2, &h.Hole5P2, &h.Hole6P2,
		&h.Hole7P2, &h.Hole8P2, &h.Hole9P2, &h.Hole10P2, &h.Hole11P2, &h.Hole12P2,
		&h.Hole13P2, &h.Hole14P2, &h.Hole15P2, &h.Hole16P2, &h.Hole17P2, &h.Hole18P2,
	}
}

// Player1Scores returns player one's scores in hole order.
func (h *HoleScores) Player1Scores() []int { return deref(h.player1()) }

// Player2Scores returns player two's scores in hole order.
func (h *HoleScores) Player2Scores() []int { return deref(h.player2()) }

// SetScores fills the columns from per-hole slices. Extra holes are ignored
// and missing holes are left at zero.
func (h *HoleScores) SetScores(p1, p2 []int) {
	assign(h.player1(), p1)
	assign(h.player2(), p2)
}

func deref(ptrs []*int) []int {
	out := make([]int, len(ptrs))
	for i, p := range ptrs {
		out[i] = *p
	}
	return out
}

func assign(ptrs []*int, values []int) {
	for i := 0; i < len(ptrs) && i < len(values); i++ {
		*ptrs[i] = values[i]
	}
}

// StoredMatch is what the service needs from a stored card.
type StoredMatch struct {
	Player1         scoringtypes.PlayerName
	Player1Handicap int
	Player1Scores   []int
	Player2         scoringtypes.PlayerName
	Player2Handicap int
	Player2Scores   []int
}

// matchRow is the shape of the joined query.
type matchRow struct {
	Player1Name     string `bun:"player1_name"`
	Player1Handicap int    `bun:"player1_handicap"`
	Player2Name     string `bun:"player2_name"`
	Player2Handicap int    `bun:"player2_handicap"`
	HoleScores
}

func (r *matchRow) toStoredMatch() *StoredMatch {
	return &StoredMatch{
		Player1:         scoringtypes.PlayerName(r.Player1Name),
		Player1Handicap: r.Player1Handicap,
		Player1Scores:   r.Player1Scores(),
		Player2:         scoringtypes.PlayerName(r.Player2Name),
		Player2Handicap: r.Player2Handicap,
		Player2Scores:   r.Player2Scores(),
	}
}
