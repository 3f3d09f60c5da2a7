package ecs

type EventType string

const (
	EventTeleported EventType = "teleported"
	EventGateOpened EventType = "gate_opened"
	EventReset      EventType = "reset"
)

// Event is something systems later in the frame may react to.
type Event struct {
	Type   EventType
	Entity Entity
}

// EventQueue is a FIFO queue cleared at the end of every frame.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns pending events without consuming them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
