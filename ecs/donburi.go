package ecs

import (
	"github.com/phanxgames/motion"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TriggerEventType is the Donburi event type for playground trigger events.
// Subscribe to this in your ECS systems to react to pulses, explosions,
// morphs and resets.
var TriggerEventType = events.NewEventType[motion.TriggerEvent]()

// TriggerLogData counts the triggers a store has forwarded and keeps the most
// recent one, so systems can poll it without subscribing.
type TriggerLogData struct {
	Last   motion.TriggerEvent
	Total  int
	Counts map[motion.Trigger]int
}

// TriggerLog is the component holding a store's TriggerLogData. Each store
// owns one entity carrying it.
var TriggerLog = donburi.NewComponentType[TriggerLogData]()

type donburiStore struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiStore creates an EntityStore backed by a Donburi world. Trigger
// events are published to TriggerEventType and recorded on a TriggerLog
// entity created in world.
func NewDonburiStore(world donburi.World) motion.EntityStore {
	return &donburiStore{world: world, entity: world.Create(TriggerLog)}
}

func (s *donburiStore) EmitEvent(event motion.TriggerEvent) {
	if s.world.Valid(s.entity) {
		log := TriggerLog.Get(s.world.Entry(s.entity))
		if log.Counts == nil {
			log.Counts = make(map[motion.Trigger]int)
		}
		log.Last = event
		log.Total++
		log.Counts[event.Trigger]++
	}
	TriggerEventType.Publish(s.world, event)
}

// LastTrigger returns the trigger log of the first store entity in world.
func LastTrigger(world donburi.World) (TriggerLogData, bool) {
	entry, ok := TriggerLog.First(world)
	if !ok {
		return TriggerLogData{}, false
	}
	return *TriggerLog.Get(entry), true
}
