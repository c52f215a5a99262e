package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source is the random source behind dice rolls and mission draws.
type Source interface {
	Intn(n int) int
}

// Dice rolls a single die with the given number of faces.
type Dice interface {
	Roll(faces int) int
}

// NewSource returns a seeded random source. A zero seed uses the clock.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// RandomDice rolls uniformly distributed dice.
type RandomDice struct {
	src Source
}

func NewRandomDice(src Source) *RandomDice {
	return &RandomDice{src: src}
}

func (d *RandomDice) Roll(faces int) int {
	return d.src.Intn(faces) + 1
}

// FixedDice replays a fixed sequence of values, cycling when exhausted.
// Values are clamped to [1, faces].
type FixedDice struct {
	values []int
	next   int
}

func NewFixedDice(values ...int) *FixedDice {
	return &FixedDice{values: values}
}

func (d *FixedDice) Roll(faces int) int {
	if len(d.values) == 0 {
		return 1
	}
	value := d.values[d.next%len(d.values)]
	d.next++
	return max(1, min(value, faces))
}
