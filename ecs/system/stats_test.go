package system

import (
	"testing"

	"github.com/milk9111/mazeportal/ecs"
)

func TestStatsSystemCountsFrameEvents(t *testing.T) {
	w := ecs.NewWorld()
	s := NewStatsSystem()
	sched := ecs.NewScheduler(pushSystem{
		{Type: ecs.EventTeleported},
		{Type: ecs.EventTeleported},
		{Type: ecs.EventGateOpened},
	}, s)

	for i := 0; i < 2; i++ {
		if err := sched.Update(w); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	got := s.Stats()
	if got.Frames != 2 || got.Teleports != 4 || got.GatesOpen != 2 || got.Resets != 0 {
		t.Fatalf("stats = %+v", got)
	}
	if len(got.LastEvents) != 3 {
		t.Fatalf("last events = %+v, want the 3 from the final frame", got.LastEvents)
	}
	if len(w.Events().Peek()) != 0 {
		t.Fatalf("scheduler left events queued")
	}
}

type pushSystem []ecs.Event

func (p pushSystem) Update(w *ecs.World) error {
	for _, evt := range p {
		w.Events().Push(evt)
	}
	return nil
}
