// Package ecs provides ECS adapters for motion's trigger events.
//
// The primary adapter is [NewDonburiStore], which forwards every trigger a
// playground runs (pulse, explode, morph, reset) into a [Donburi] world as a
// typed event. Subscribe to [TriggerEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	playground.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
