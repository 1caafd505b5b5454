package ecs

import (
	"github.com/phanxgames/starfield"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for starfield interaction
// events.
var InteractionEventType = events.NewEventType[starfield.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) starfield.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event starfield.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// TargetStats is the component a TargetTracker maintains.
type TargetStats struct {
	Hovered   bool
	Taps      int // all taps, hit or miss
	Hits      int
	LinkOpens int
	Pans      int // completed horizontal drags
	Yields    int // gestures handed back to the page as vertical scroll
	LastPan   float64
}

// TargetStatsComponent stores TargetStats on the tracker entity.
var TargetStatsComponent = donburi.NewComponentType[TargetStats]()

// TargetTracker subscribes to interaction events and folds them into a
// TargetStats component on a dedicated entity.
type TargetTracker struct {
	world  donburi.World
	entity donburi.Entity
}

// NewTargetTracker creates the stats entity and subscribes it to
// InteractionEventType. Stats change when the world's events are processed.
func NewTargetTracker(world donburi.World) *TargetTracker {
	t := &TargetTracker{
		world:  world,
		entity: world.Create(TargetStatsComponent),
	}
	InteractionEventType.Subscribe(world, t.apply)
	return t
}

// Entity returns the entity holding the TargetStats component.
func (t *TargetTracker) Entity() donburi.Entity {
	return t.entity
}

// Stats returns a copy of the current tally.
func (t *TargetTracker) Stats() TargetStats {
	return *TargetStatsComponent.Get(t.world.Entry(t.entity))
}

func (t *TargetTracker) apply(w donburi.World, e starfield.InteractionEvent) {
	if !w.Valid(t.entity) {
		return
	}
	st := TargetStatsComponent.Get(w.Entry(t.entity))
	switch e.Type {
	case starfield.EventTap:
		st.Taps++
		if e.Hit {
			st.Hits++
		}
	case starfield.EventLinkOpen:
		st.LinkOpens++
	case starfield.EventTargetEnter:
		st.Hovered = true
	case starfield.EventTargetLeave:
		st.Hovered = false
	case starfield.EventPan:
		st.LastPan = e.Pan
	case starfield.EventPanEnd:
		st.Pans++
	case starfield.EventScrollYield:
		st.Yields++
	}
}
