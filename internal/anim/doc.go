// Package anim provides the in-memory data model for pixel-art animations.
//
// The package defines the core types shared by every surface of the
// application:
//
//   - [Frame]: a dense 2-D grid of binary cells (0 = off, 1 = on)
//   - [Store]: an ordered stack of equally-shaped frames, a cursor
//     selecting the current frame, and the playback state machine
//
// All mutation funnels through Store methods. The store owns no timers
// and spawns no goroutines; playback is a cooperative contract where the
// host calls [Store.Advance] on each tick of its own clock while
// [Store.Playing] reports true.
//
// # Thread Safety
//
// Store instances are NOT thread-safe. The intended host is a
// single-threaded event loop (a Bubble Tea program) that serializes all
// input events and timer ticks.
package anim
