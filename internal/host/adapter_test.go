package host

import (
	"reflect"
	"testing"
)

type fakeParticipant struct {
	consume    bool
	pointers   []string
	lifecycles []Lifecycle
	log        *[]string
}

func (f *fakeParticipant) Draw(node string, width, height int) []string {
	return []string{"body:" + node}
}

func (f *fakeParticipant) HandlePointer(node string, ev PointerEvent) bool {
	f.pointers = append(f.pointers, node)
	if f.log != nil {
		*f.log = append(*f.log, "participant")
	}
	return f.consume
}

func (f *fakeParticipant) Lifecycle(ev Lifecycle) {
	f.lifecycles = append(f.lifecycles, ev)
}

func TestDispatchPointerRunsChromeFirst(t *testing.T) {
	var order []string
	p := &fakeParticipant{log: &order}
	a := NewAdapter(Chrome{
		Pointer: func(node string, ev PointerEvent) bool {
			order = append(order, "chrome")
			return false
		},
	}, nil)
	a.Register("node-1", p)

	a.DispatchPointer("node-1", PointerEvent{Button: ButtonLeft})

	if !reflect.DeepEqual(order, []string{"chrome", "participant"}) {
		t.Fatalf("expected chrome before participant, got %v", order)
	}
}

func TestDispatchPointerConsumedIsOrOfBothSides(t *testing.T) {
	cases := []struct {
		chrome      bool
		participant bool
		want        bool
	}{
		{false, false, false},
		{true, false, true},
		{false, true, true},
		{true, true, true},
	}
	for _, c := range cases {
		p := &fakeParticipant{consume: c.participant}
		a := NewAdapter(Chrome{
			Pointer: func(string, PointerEvent) bool { return c.chrome },
		}, nil)
		a.Register("node-1", p)
		if got := a.DispatchPointer("node-1", PointerEvent{}); got != c.want {
			t.Fatalf("chrome=%v participant=%v: consumed=%v, want %v", c.chrome, c.participant, got, c.want)
		}
		if len(p.pointers) != 1 {
			t.Fatalf("expected participant always invoked, got %d calls", len(p.pointers))
		}
	}
}

func TestDispatchPointerSkipsNonParticipants(t *testing.T) {
	p := &fakeParticipant{consume: true}
	a := NewAdapter(Chrome{}, nil)
	a.Register("node-1", p)

	if a.DispatchPointer("node-2", PointerEvent{}) {
		t.Fatalf("expected unhandled event for a non-participating node")
	}
	if len(p.pointers) != 0 {
		t.Fatalf("expected participant untouched, got %d calls", len(p.pointers))
	}
}

func TestDrawReturnsNilForNonParticipants(t *testing.T) {
	a := NewAdapter(Chrome{}, nil)
	a.Register("node-1", &fakeParticipant{})

	if lines := a.Draw("node-1", 10, 4); len(lines) != 1 || lines[0] != "body:node-1" {
		t.Fatalf("unexpected participant draw %v", lines)
	}
	if lines := a.Draw("node-2", 10, 4); lines != nil {
		t.Fatalf("expected nil draw for non-participants, got %v", lines)
	}
}

func TestRunWideLifecycleReachesEachParticipantOnce(t *testing.T) {
	shared := &fakeParticipant{}
	a := NewAdapter(Chrome{}, nil)
	a.Register("node-1", shared)
	a.Register("node-2", shared)

	a.DispatchLifecycle(Lifecycle{Kind: RunStart})

	if len(shared.lifecycles) != 1 {
		t.Fatalf("expected one callback for a shared participant, got %d", len(shared.lifecycles))
	}
}

func TestNodeLifecycleTargetsOneParticipant(t *testing.T) {
	first := &fakeParticipant{}
	second := &fakeParticipant{}
	var chromeSeen []Lifecycle
	a := NewAdapter(Chrome{
		Lifecycle: func(ev Lifecycle) { chromeSeen = append(chromeSeen, ev) },
	}, nil)
	a.Register("node-1", first)
	a.Register("node-2", second)

	a.DispatchLifecycle(Lifecycle{Kind: NodeRemoved, Node: "node-2"})

	if len(first.lifecycles) != 0 {
		t.Fatalf("expected node-1 untouched")
	}
	if len(second.lifecycles) != 1 || second.lifecycles[0].Node != "node-2" {
		t.Fatalf("expected node-2 to observe its removal, got %v", second.lifecycles)
	}
	if len(chromeSeen) != 1 {
		t.Fatalf("expected chrome to observe the callback, got %d", len(chromeSeen))
	}
}

func TestUnregisterStopsDelegation(t *testing.T) {
	p := &fakeParticipant{consume: true}
	a := NewAdapter(Chrome{}, nil)
	a.Register("node-1", p)
	a.Unregister("node-1")

	if a.Participating("node-1") {
		t.Fatalf("expected node-1 no longer participating")
	}
	if a.DispatchPointer("node-1", PointerEvent{}) {
		t.Fatalf("expected events to pass through after unregister")
	}
}
