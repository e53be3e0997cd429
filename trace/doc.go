// Package trace defines the event records that cross from an algorithm
// kernel to a presentation layer.
//
// What
//
//   - Event: one immutable algorithm step (visit, distance update, frontier
//     push/pop, edge relaxation, backtrack, completion) with a strictly
//     increasing Seq assigned by the consuming Recorder.
//   - Sink: the consumer interface kernels emit into. Kernels never depend
//     on anything above Sink, so any player (an animation engine, a test, a
//     JSON writer) can observe a run without the kernel knowing.
//   - Recorder: the standard Sink. It tags the run with a UUID, keeps events
//     in chronological order, and serializes them as JSON lines for the
//     downstream animation player.
//
// Emission contract
//
//   - KindVisit       exactly once per vertex, in traversal order.
//   - KindDistance    whenever a tentative distance is set or improved.
//   - KindPush/Pop    for every frontier mutation, chronologically.
//   - KindRelax       once per edge examined by Dijkstra, with Accepted.
//   - KindBacktrack   when a backtracking search undoes a choice.
//   - KindComplete    exactly once, last, carrying the final Result.
//
// The stream is strictly ordered; consumers may treat each event as a frame
// boundary. There is no retry or failure semantics on this boundary: a Sink
// must accept every event.
package trace
