package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/mazeportal/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("destroying twice should return false")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestWorldReusesSlotsWithNewGeneration(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	DestroyEntity(w, old)
	fresh := CreateEntity(w)

	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh.generation() == old.generation() || fresh == old {
		t.Fatalf("reused slot must get a new generation")
	}
	if IsAlive(w, old) || !IsAlive(w, fresh) {
		t.Fatalf("stale handle must not be alive")
	}
	if Entity(0).Valid() || !fresh.Valid() {
		t.Fatalf("zero entity must be invalid")
	}
}

func TestComponentsAddGetRemove(t *testing.T) {
	w := NewWorld()
	body := component.NewComponent[component.Body]("body")
	tint := component.NewComponent[component.Tint]("tint")
	e1, e2 := CreateEntity(w), CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name: "add_body_to_e1",
			setup: func() error {
				b := &component.Body{}
				b.Rect.X = 10
				return Add(w, e1, body, b)
			},
			check: func(t *testing.T) {
				v, ok := Get(w, e1, body)
				if !ok || v.Rect.X != 10 {
					t.Fatalf("expected x 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, body) {
					t.Fatalf("e2 should not have a body")
				}
			},
			teardown: func() bool { return Remove(w, e1, body) },
		},
		{
			name: "add_tint_to_both",
			setup: func() error {
				if err := Add(w, e1, tint, &component.Tint{}); err != nil {
					return err
				}
				return Add(w, e2, tint, &component.Tint{})
			},
			check: func(t *testing.T) {
				if !Has(w, e1, tint) || !Has(w, e2, tint) {
					t.Fatalf("expected both entities to have a tint")
				}
			},
			teardown: func() bool { return Remove(w, e1, tint) && Remove(w, e2, tint) },
		},
		{
			name:  "replace_component",
			setup: func() error { Add(w, e2, body, &component.Body{}); return Add(w, e2, body, &component.Body{}) },
			check: func(t *testing.T) {
				n := 0
				ForEach(w, body, func(Entity, *component.Body) { n++ })
				if n != 1 {
					t.Fatalf("replacing should keep one body, got %d", n)
				}
			},
			teardown: func() bool { return Remove(w, e2, body) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponent[component.Body]("body")
	e := CreateEntity(w)
	dead := CreateEntity(w)
	DestroyEntity(w, dead)

	cases := []struct {
		name string
		err  error
		want error
	}{
		{"nil_value", Add(w, e, kind, nil), component.ErrNilComponent},
		{"dead_entity", Add(w, dead, kind, &component.Body{}), component.ErrEntityNotAlive},
		{"zero_kind", Add(w, e, component.ComponentKind[component.Body]{}, &component.Body{}), component.ErrInvalidComponentKind},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !errors.Is(c.err, c.want) {
				t.Fatalf("err = %v, want %v", c.err, c.want)
			}
		})
	}
}

func TestDestroyRemovesComponents(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponent[component.Mover]("mover")
	e1, e2, e3 := CreateEntity(w), CreateEntity(w), CreateEntity(w)
	for i, e := range []Entity{e1, e2, e3} {
		if err := Add(w, e, kind, &component.Mover{Speed: i + 1}); err != nil {
			t.Fatal(err)
		}
	}
	DestroyEntity(w, e1)

	speeds := map[Entity]int{}
	ForEach(w, kind, func(e Entity, m *component.Mover) { speeds[e] = m.Speed })
	if len(speeds) != 2 || speeds[e2] != 2 || speeds[e3] != 3 {
		t.Fatalf("unexpected movers after destroy: %v", speeds)
	}

	reborn := CreateEntity(w)
	if Has(w, reborn, kind) {
		t.Fatalf("a reused slot must not inherit components")
	}
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponent[component.Body]("a")
	kb := component.NewComponent[component.Traveler]("b")
	e1, e2, e3, e4 := CreateEntity(w), CreateEntity(w), CreateEntity(w), CreateEntity(w)

	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(Add(w, e1, ka, &component.Body{}))
	must(Add(w, e2, ka, &component.Body{}))
	must(Add(w, e2, kb, &component.Traveler{}))
	must(Add(w, e3, kb, &component.Traveler{}))
	must(Add(w, e4, ka, &component.Body{}))
	must(Add(w, e4, kb, &component.Traveler{}))

	var got []Entity
	ForEach2(w, ka, kb, func(e Entity, _ *component.Body, tr *component.Traveler) {
		tr.Teleports++
		got = append(got, e)
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 entities with both components, got %v", got)
	}
	for _, e := range []Entity{e2, e4} {
		tr, _ := Get(w, e, kb)
		if tr.Teleports != 1 {
			t.Fatalf("entity %v visited %d times", e, tr.Teleports)
		}
	}

	first, _, ok := First(w, kb)
	if !ok || first != e2 {
		t.Fatalf("First = %v, want %v", first, e2)
	}
}

func TestSchedulerRunsInOrderAndStopsOnError(t *testing.T) {
	w := NewWorld()
	var order []string
	boom := errors.New("boom")
	s := NewScheduler(
		systemFunc(func(w *World) error { order = append(order, "a"); w.Events().Push(Event{Type: EventReset}); return nil }),
		systemFunc(func(w *World) error {
			order = append(order, "b")
			if len(w.Events().Peek()) != 1 {
				t.Fatalf("events should be visible later in the frame")
			}
			return boom
		}),
	)
	s.Add(systemFunc(func(*World) error { order = append(order, "c"); return nil }))
	s.Add(nil)

	if err := s.Update(w); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order = %v", order)
	}
	if len(w.Events().Peek()) != 0 {
		t.Fatalf("events must be flushed at the end of the frame")
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("systems = %d, want 3", len(s.Systems()))
	}
}

type systemFunc func(w *World) error

func (f systemFunc) Update(w *World) error { return f(w) }
