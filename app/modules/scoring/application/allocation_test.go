package scoringservice

import (
	"testing"

	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
)

func rankedHoles(ranks ...int) []scoringtypes.Hole {
	holes := make([]scoringtypes.Hole, len(ranks))
	for i, r := range ranks {
		holes[i] = scoringtypes.Hole{Number: i + 1, HandicapRank: r}
	}
	return holes
}

func TestAllocateStrokes(t *testing.T) {
	nine := rankedHoles(1, 2, 3, 4, 5, 6, 7, 8, 9)

	tests := []struct {
		name     string
		handicap int
		holes    []scoringtypes.Hole
		want     []int
	}{
		{
			name:     "zero handicap",
			handicap: 0,
			holes:    nine,
			want:     []int{0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name:     "negative handicap receives nothing",
			handicap: -4,
			holes:    nine,
			want:     []int{0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name:     "handicap 3 on nine holes",
			handicap: 3,
			holes:    nine,
			want:     []int{1, 1, 1, 0, 0, 0, 0, 0, 0},
		},
		{
			name:     "one stroke per hole",
			handicap: 9,
			holes:    nine,
			want:     []int{1, 1, 1, 1, 1, 1, 1, 1, 1},
		},
		{
			name:     "second stroke on hardest holes",
			handicap: 11,
			holes:    nine,
			want:     []int{2, 2, 1, 1, 1, 1, 1, 1, 1},
		},
		{
			name:     "two strokes everywhere",
			handicap: 18,
			holes:    nine,
			want:     []int{2, 2, 2, 2, 2, 2, 2, 2, 2},
		},
		{
			name:     "saturates above twice the hole count",
			handicap: 40,
			holes:    nine,
			want:     []int{2, 2, 2, 2, 2, 2, 2, 2, 2},
		},
		{
			name:     "ranks out of hole order",
			handicap: 2,
			holes:    rankedHoles(5, 1, 4, 2, 3),
			want:     []int{0, 1, 0, 1, 0},
		},
		{
			name:     "eighteen hole indexes on a nine",
			handicap: 3,
			holes:    rankedHoles(7, 1, 17, 11, 3, 15, 9, 13, 5),
			want:     []int{0, 1, 0, 0, 1, 0, 0, 0, 1},
		},
		{
			name:     "no holes",
			handicap: 5,
			holes:    nil,
			want:     []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllocateStrokes(tt.handicap, tt.holes)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAllocateStrokes_TotalMatchesHandicap(t *testing.T) {
	faker := gofakeit.New(42)

	for i := 0; i < 200; i++ {
		n := faker.Number(1, 18)
		ranks := make([]int, n)
		for j := range ranks {
			ranks[j] = j + 1
		}
		faker.ShuffleAnySlice(ranks)
		holes := rankedHoles(ranks...)

		h := faker.Number(0, 2*n)
		strokes := AllocateStrokes(h, holes)

		require.Len(t, strokes, n)
		require.Equal(t, h, TotalStrokes(strokes), "n=%d h=%d ranks=%v", n, h, ranks)
		for idx, s := range strokes {
			require.GreaterOrEqual(t, s, 0)
			require.LessOrEqual(t, s, 2)
			// A harder hole never receives fewer strokes than an easier one.
			for other, o := range strokes {
				if holes[idx].HandicapRank < holes[other].HandicapRank {
					require.GreaterOrEqual(t, s, o)
				}
			}
		}
	}
}
