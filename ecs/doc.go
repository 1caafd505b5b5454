// Package ecs provides ECS adapters for starfield's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges starfield
// interaction events (pointer, pan, tap, hover, link open) into a [Donburi]
// world as typed events. Subscribe to [InteractionEventType] in your ECS
// systems to receive them, or attach a [TargetTracker] to keep a running
// tally on an entity.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
