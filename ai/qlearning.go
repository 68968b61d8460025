package ai

import (
	"fmt"
	"math"

	"grid-games/game"
	"grid-games/game/input"
	"grid-games/game/types"

	"golang.org/x/exp/rand"
)

type State struct {
	RelativeFoodDir [2]int  // Food direction relative to head (x, y)
	FoodDistance    int     // Manhattan distance to food
	DangerDirs      [4]bool // Danger in each direction (up, right, down, left)
}

// NewState reads the board around the head.
func NewState(v game.View) State {
	head := v.Head()
	food := v.Food()

	var dangers [4]bool
	for i, d := range types.Directions {
		dangers[i] = v.Blocked(head.Add(d.ToPoint()))
	}

	return State{
		RelativeFoodDir: [2]int{sign(food.X - head.X), sign(food.Y - head.Y)},
		FoodDistance:    abs(food.X-head.X) + abs(food.Y-head.Y),
		DangerDirs:      dangers,
	}
}

func (s State) key() string {
	return fmt.Sprintf("%d,%d|%t,%t,%t,%t", s.RelativeFoodDir[0], s.RelativeFoodDir[1],
		s.DangerDirs[0], s.DangerDirs[1], s.DangerDirs[2], s.DangerDirs[3])
}

func (s State) danger(d types.Direction) bool {
	for i, dir := range types.Directions {
		if dir == d {
			return s.DangerDirs[i]
		}
	}
	return false
}

type QTable map[string]map[types.Direction]float64

// QLearning is an autopilot that steers the snake through the same
// direction queue the keyboard feeds, learning from food and crashes as it
// plays. The table lives in memory only.
type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int

	rng        *rand.Rand
	lastState  State
	lastAction types.Direction
	hasLast    bool
	ate        bool
}

func NewQLearning(rng *rand.Rand) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rng,
	}
}

// Steer learns from the previous step, then queues one direction that is
// never a reversal of the queue's tail.
func (q *QLearning) Steer(v game.View, dq *input.DirectionQueue) {
	state := NewState(v)
	if q.hasLast {
		q.Update(q.lastState, q.lastAction, state, q.reward(q.lastState, q.lastAction, state))
	}

	action := q.GetAction(state, dq.Last())
	q.lastState = state
	q.lastAction = action
	q.hasLast = true
	q.ate = false

	dq.Enqueue(action)
}

// FoodEaten marks the step that just happened as rewarded.
func (q *QLearning) FoodEaten(types.Point) {
	q.ate = true
}

// GameOver closes the episode with a crash penalty. A quit is not the
// pilot's fault and only ends the episode.
func (q *QLearning) GameOver(reason game.OverReason) {
	if q.hasLast && (reason == game.OverSelf || reason == game.OverBorder) {
		q.updateTerminal(q.lastState, q.lastAction, -1.0)
	}
	q.hasLast = false
	q.ate = false
	q.GamesPlayed++
}

// GetAction picks among the moves that do not reverse current: a random safe
// one with probability Epsilon, otherwise the best known one.
func (q *QLearning) GetAction(state State, current types.Direction) types.Direction {
	candidates := q.candidates(state, current)

	// Exploration: random action
	if q.rng.Float64() < q.Epsilon {
		return candidates[q.rng.Intn(len(candidates))]
	}

	// Exploitation: best known action
	values := q.values(state)
	best := candidates[0]
	bestValue := values[best]
	for _, d := range candidates[1:] {
		if values[d] > bestValue {
			best = d
			bestValue = values[d]
		}
	}
	return best
}

// candidates lists the non-reversing moves, current first, keeping only the
// safe ones when any are safe.
func (q *QLearning) candidates(state State, current types.Direction) []types.Direction {
	var legal, safe []types.Direction
	ordered := append([]types.Direction{current}, types.Directions[:]...)
	seen := make(map[types.Direction]bool, 4)
	for _, d := range ordered {
		if d == types.NONE || d == current.Opposite() || seen[d] {
			continue
		}
		seen[d] = true
		legal = append(legal, d)
		if !state.danger(d) {
			safe = append(safe, d)
		}
	}
	if len(safe) > 0 {
		return safe
	}
	return legal
}

func (q *QLearning) values(state State) map[types.Direction]float64 {
	key := state.key()
	if _, exists := q.QTable[key]; !exists {
		q.QTable[key] = make(map[types.Direction]float64, 4)
		for _, d := range types.Directions {
			q.QTable[key][d] = 0
		}
	}
	return q.QTable[key]
}

func (q *QLearning) reward(state State, action types.Direction, next State) float64 {
	if q.ate {
		return 1.0
	}
	if state.danger(action) {
		return -1.0
	}

	// Base reward for moving towards/away from food
	switch distanceChange := next.FoodDistance - state.FoodDistance; {
	case distanceChange < 0:
		return 0.5
	case distanceChange > 0:
		return -0.3
	}
	return 0
}

// Update applies one Q-learning step and returns the reward used.
func (q *QLearning) Update(state State, action types.Direction, next State, reward float64) float64 {
	maxNextQ := math.Inf(-1)
	for _, value := range q.values(next) {
		maxNextQ = math.Max(maxNextQ, value)
	}

	current := q.values(state)
	current[action] += q.LearningRate * (reward + q.Discount*maxNextQ - current[action])
	q.TotalReward += reward
	return reward
}

func (q *QLearning) updateTerminal(state State, action types.Direction, reward float64) {
	current := q.values(state)
	current[action] += q.LearningRate * (reward - current[action])
	q.TotalReward += reward
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
