package model

import "github.com/sheikhrachel/torus-life/rules"

// maxNeighbors is the size of the Moore neighborhood.
const maxNeighbors = 8

// State is the value held by a single cell.
type State uint8

const (
	// Dead is the quiescent state.
	Dead State = iota
	// Alive is the live state.
	Alive
)

// Valid reports whether s is one of the defined states.
func (s State) Valid() bool {
	return s == Dead || s == Alive
}

// StateOf converts a boolean into a State.
func StateOf(alive bool) State {
	if alive {
		return Alive
	}
	return Dead
}

/*
Cell is a single automaton unit.

A cell never reads its neighbors. Instead every neighbor pushes its state
through ReceiveNeighborState when it commits, and the cell accumulates the
live notifications until it decides its next state.
*/
type Cell struct {
	current       State
	next          State
	neighborAlive int
	changed       bool

	// cells notified on commit, kept free of duplicates
	subscribers []*Cell
}

// SetCurrentState writes the current state. Invalid values are ignored.
// Subscribers are not notified.
func (c *Cell) SetCurrentState(s State) {
	if !s.Valid() {
		return
	}
	c.current = s
}

// CurrentState returns the state for the present generation.
func (c *Cell) CurrentState() State { return c.current }

// Alive reports whether the cell is currently alive.
func (c *Cell) Alive() bool { return c.current == Alive }

// Changed reports whether the last commit flipped the cell's state.
func (c *Cell) Changed() bool { return c.changed }

// NeighborAliveCount returns the live notifications received since the last decision.
func (c *Cell) NeighborAliveCount() int { return c.neighborAlive }

// ReceiveNeighborState counts a notification from a neighbor.
func (c *Cell) ReceiveNeighborState(neighborIsAlive bool) {
	if !neighborIsAlive || c.neighborAlive >= maxNeighbors {
		return
	}
	c.neighborAlive++
}

// DecideNextState computes the next state from the current state and the
// accumulated neighbor count, then resets the count.
func (c *Cell) DecideNextState() rules.Outcome {
	// start from the current state so a stale value never survives a no-match
	c.next = c.current

	outcome := rules.Classify(c.Alive(), c.neighborAlive)
	if outcome != rules.Unchanged {
		c.next = StateOf(outcome.Alive(c.Alive()))
	}
	c.neighborAlive = 0
	return outcome
}

// Commit makes the decided state current and pushes it to the subscribers.
func (c *Cell) Commit() {
	c.changed = c.current != c.next
	c.current = c.next
	c.NotifyAll()
}

// NotifyAll pushes the current state to every subscriber.
func (c *Cell) NotifyAll() {
	alive := c.Alive()
	for _, s := range c.subscribers {
		s.ReceiveNeighborState(alive)
	}
}

// Subscribe registers other to be notified on commit. Subscribing the same
// cell twice has no effect.
func (c *Cell) Subscribe(other *Cell) {
	if other == nil || c.HasSubscriber(other) {
		return
	}
	if c.subscribers == nil {
		c.subscribers = make([]*Cell, 0, maxNeighbors)
	}
	c.subscribers = append(c.subscribers, other)
}

// Unsubscribe removes other from the notification set.
func (c *Cell) Unsubscribe(other *Cell) {
	for i, s := range c.subscribers {
		if s == other {
			c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
			return
		}
	}
}

// HasSubscriber reports whether other is notified on commit.
func (c *Cell) HasSubscriber(other *Cell) bool {
	for _, s := range c.subscribers {
		if s == other {
			return true
		}
	}
	return false
}

// Subscribers returns the number of cells notified on commit.
func (c *Cell) Subscribers() int { return len(c.subscribers) }

// reset clears every state field, keeping the subscriptions.
func (c *Cell) reset() {
	c.current = Dead
	c.next = Dead
	c.neighborAlive = 0
	c.changed = false
}
