package manager

import (
	"sort"
	"time"

	"github.com/samber/lo"
)

// RoundRecord is one finished round. Nothing is written to disk.
type RoundRecord struct {
	RoundID   string
	Score     int
	Length    int
	Reason    CollisionType
	StartTime time.Time
	EndTime   time.Time
}

func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// SessionStats accumulates the rounds played during one process run.
type SessionStats struct {
	Rounds []RoundRecord
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		Rounds: make([]RoundRecord, 0),
	}
}

func (s *SessionStats) AddRound(r RoundRecord) {
	s.Rounds = append(s.Rounds, r)
}

func (s *SessionStats) GamesPlayed() int {
	return len(s.Rounds)
}

func (s *SessionStats) GetMaxScore() int {
	maxScore := 0
	for _, r := range s.Rounds {
		if r.Score > maxScore {
			maxScore = r.Score
		}
	}
	return maxScore
}

func (s *SessionStats) GetAverageScore() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	total := 0
	for _, r := range s.Rounds {
		total += r.Score
	}
	return float64(total) / float64(len(s.Rounds))
}

// GetMedianScore returns the median round score, 0 with no rounds.
func (s *SessionStats) GetMedianScore() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	scores := make([]int, len(s.Rounds))
	for i, r := range s.Rounds {
		scores[i] = r.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (s *SessionStats) GetAverageDuration() time.Duration {
	if len(s.Rounds) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range s.Rounds {
		total += r.Duration()
	}
	return total / time.Duration(len(s.Rounds))
}

// CountByReason tallies how rounds ended.
func (s *SessionStats) CountByReason() map[CollisionType]int {
	return lo.CountValuesBy(s.Rounds, func(r RoundRecord) CollisionType {
		return r.Reason
	})
}
