package metrics

import (
	"time"
	"war/game"
)

// RoundMetric records what happened in a single round.
type RoundMetric struct {
	Round       int
	Attacker    string
	Defender    string
	AttackerDie int
	DefenderDie int
	Captured    bool
	Rejected    string // Reason the selection was rejected, empty if the attack was played
}

type GameMetric struct {
	ID        string
	Players   int
	Territory int // Territories on the map
	Outcome   string
	Winner    string
	Rounds    int
	Attacks   int
	Captures  int
	Rejected  int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type Collector interface {
	Start(id string, players, territories int)
	AddAttack(round int, result game.AttackResult)
	AddRejected(round int, err error)
	Complete(outcome game.Outcome) GameMetric
	Rounds() []RoundMetric
}

type collector struct {
	metric GameMetric
	rounds []RoundMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(id string, players, territories int) {
	m.metric = GameMetric{
		ID:        id,
		Players:   players,
		Territory: territories,
		StartTime: time.Now(),
	}
	m.rounds = nil
}

func (m *collector) AddAttack(round int, result game.AttackResult) {
	m.metric.Attacks++
	if result.Captured {
		m.metric.Captures++
	}
	m.rounds = append(m.rounds, RoundMetric{
		Round:       round,
		Attacker:    result.Attacker,
		Defender:    result.Defender,
		AttackerDie: result.AttackerDie,
		DefenderDie: result.DefenderDie,
		Captured:    result.Captured,
	})
}

func (m *collector) AddRejected(round int, err error) {
	m.metric.Rejected++
	m.rounds = append(m.rounds, RoundMetric{Round: round, Rejected: err.Error()})
}

func (m *collector) Complete(outcome game.Outcome) GameMetric {
	m.metric.Outcome = outcome.Phase.String()
	m.metric.Winner = outcome.Winner()
	m.metric.Rounds = outcome.Rounds
	m.metric.EndTime = time.Now()
	m.metric.Duration = m.metric.EndTime.Sub(m.metric.StartTime)
	return m.metric
}

func (m *collector) Rounds() []RoundMetric {
	return append([]RoundMetric(nil), m.rounds...)
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(id string, players, territories int)     {}
func (m *dummyCollector) AddAttack(round int, result game.AttackResult) {}
func (m *dummyCollector) AddRejected(round int, err error)              {}
func (m *dummyCollector) Complete(outcome game.Outcome) GameMetric      { return GameMetric{} }
func (m *dummyCollector) Rounds() []RoundMetric                         { return nil }
