package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatcher_OrderAndTypes(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(WaveStarted, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(WaveStarted, ListenerFunc(func(Event) { order = append(order, "second") }))

	r := &recorder{}
	d.SubscribeAll(r, MonsterKilled, GameWon)

	d.Dispatch(Event{Type: WaveStarted, Data: WaveData{Number: 1}})
	d.Dispatch(Event{Type: MonsterKilled})
	d.Dispatch(Event{Type: GameLost}) // никто не подписан
	d.Dispatch(Event{Type: GameWon})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("listeners must run in subscription order, got %v", order)
	}
	if len(r.got) != 2 || r.got[0] != MonsterKilled || r.got[1] != GameWon {
		t.Errorf("unexpected events: %v", r.got)
	}
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(TowerBuilt, a)
	d.Subscribe(TowerBuilt, b)
	calls := 0
	fn := ListenerFunc(func(Event) { calls++ })
	d.Subscribe(TowerBuilt, fn)

	d.Unsubscribe(TowerBuilt, a)
	d.Unsubscribe(TowerBuilt, fn)
	d.Unsubscribe(GameWon, b)
	d.Dispatch(Event{Type: TowerBuilt})

	if len(a.got) != 0 {
		t.Error("unsubscribed listener must not receive events")
	}
	if len(b.got) != 1 {
		t.Error("other listeners must stay subscribed")
	}
	if calls != 1 {
		t.Errorf("ListenerFunc cannot be unsubscribed, calls=%d", calls)
	}
}
