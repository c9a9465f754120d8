package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"

	scoringdb "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/repositories"
)

// TestDataGenerator provides methods to create test data for integration tests
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a new test data generator with optional seed
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// Seed returns the seed the generator was built with, for reproducing failures.
func (g *TestDataGenerator) Seed() int64 { return g.seed }

// GeneratePlayers creates players with distinct names and handicaps in [0, maxHandicap].
func (g *TestDataGenerator) GeneratePlayers(count, maxHandicap int) []scoringdb.Player {
	players := make([]scoringdb.Player, 0, count)
	seen := make(map[string]bool, count)

	for len(players) < count {
		name := g.faker.Name()
		if seen[name] {
			continue
		}
		seen[name] = true
		players = append(players, scoringdb.Player{
			PlayerName: name,
			Handicap:   g.faker.Number(0, maxHandicap),
		})
	}
	return players
}

// GenerateScores creates a card of plausible gross scores, par minus one to
// par plus three on a par-four course.
func (g *TestDataGenerator) GenerateScores(holes int) []int {
	scores := make([]int, holes)
	for i := range scores {
		scores[i] = g.faker.Number(3, 7)
	}
	return scores
}

// GenerateRanks returns a random permutation of 1..holes.
func (g *TestDataGenerator) GenerateRanks(holes int) []int {
	ranks := make([]int, holes)
	for i := range ranks {
		ranks[i] = i + 1
	}
	g.faker.ShuffleAnySlice(ranks)
	return ranks
}
