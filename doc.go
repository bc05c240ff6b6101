// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package layr provides composable capability layers over continuation-passing
// computations in Go.
//
// A computation is a value of type [Cont] (usually [Eff]) built from [Pure],
// [Bind], and capability operations. Capabilities (contextual reads, output
// accumulation, mutable state, exceptions, escape continuations,
// non-determinism, and base-computation escape) are each owned by exactly one
// layer of a [Stack]. A layer interprets the operations of its own capability
// and forwards every other operation to the layers beneath it, so a stack
// built from layers owning capability set S supports exactly S at its surface,
// with no operation silently dropped.
//
// # Computations
//
// The core type [Cont] represents a computation that accepts a continuation
// and produces a final result.
//
// Minimal monad operations:
//
//   - [Return], [Pure]: Lift a value into a computation that performs no effects
//   - [Bind]: Sequence two computations
//
// Derived operations:
//
//   - [Map]: Apply a function to the result
//   - [Then]: Sequence, discarding the first result
//
// Execution:
//
//   - [Suspend]: Create a computation from a CPS function
//   - [Run]: Execute a computation to obtain the result
//   - [RunWith]: Execute with a custom final continuation
//
// # Capability Operations
//
// Operations are defined as types implementing the F-bounded [Op] constraint
// and are triggered with [Perform]. Each operation type carries exactly one
// resource type parameter (the context type, the output type, the state type,
// the error type), and dispatches only against the layer whose type parameter
// matches, so a stack cannot resolve one operation against two conflicting
// resource types.
//
// Context-read ([ReaderLayer]):
//
//   - [Ask]: Read the ambient context
//   - [Local]: Run a body under a modified context, restored on any exit path
//   - [LetLocal]: Run a body under a fixed context value
//
// Output ([WriterLayer], the reference layer):
//
//   - [Put]: Append output through the accumulator's combine
//   - [TakeFrom]: Run a body, diverting the output it produced into the result
//   - [MapBuffer]: Run a body and replace its output via a rewriting computation
//
// State ([StateLayer]):
//
//   - [Peek], [Poke], [Update]: Read, replace (returning the prior value),
//     and transform state
//
// Exception ([ErrorLayer]):
//
//   - [Raise]: Abort the current scope with an error
//   - [Catch]: Run a body, resuming through a handler on abort
//
// Continuation ([ControlLayer]):
//
//   - [CallCC]: Capture an escape continuation [EscapeK]
//   - [Jump]: Abandon the remaining computation, returning a value at the
//     capture point
//
// Non-determinism ([ChoiceLayer]):
//
//   - [Choose]: Run alternative bodies, collecting every result
//
// Base-escape ([BaseLayer]):
//
//   - [FromBase], [InBase]: Lift a computation of the foundational effect
//     (a plain Go thunk) into the decorated stack
//
// # Stacks and Delegation
//
// [New] builds a [Stack] from layers, outermost first. Dispatch walks the
// layers until one claims the operation; scoped operations (Local, TakeFrom,
// MapBuffer, Catch, CallCC, Choose) run their bodies against the same full
// stack, so any capability remains available inside any scope regardless of
// which layer owns it. Layers that buffer data implement [Buffered]; scopes
// that abort restore buffered state ([Catch]) or reset it to neutral
// (a matched escape), which is what makes output rollback exact.
//
// Stack runners:
//
//   - [RunStack]: Run to a plain result (panics on an uncaught abort)
//   - [RunStackEither]: Run to [Either], catching uncaught raises at the edge
//
// Single-layer convenience runners mirror the stack:
//
//   - [RunReader]
//   - [RunWriter], [ExecWriter]
//   - [RunState], [EvalState], [ExecState]
//   - [RunError]
//
// # The Output-Accumulating Layer
//
// [WriterLayer] interprets output over a [Monoid]: an associative Combine and
// a Neutral identity. Sequencing combines accumulators strictly: the
// accumulator itself is forced at each step, while values held inside it are
// not inspected until extraction. Output is scoped to the innermost enclosing
// successful completion: output emitted between a [Raise] and its matching
// [Catch] is discarded, a matched escape resets the accumulator to neutral,
// and each [Choose] branch commits its output in branch order.
//
// # Delimited Control
//
//   - [Shift]: Capture the current continuation up to [Reset]
//   - [Reset]: Establish a delimiter for [Shift]
//
// # Stepping Boundary
//
// [Step] and [Suspension] provide one-operation-at-a-time evaluation for
// external runtimes that drive computation asynchronously. Affine semantics:
// each [Suspension] may be resumed at most once.
//
// # Resource Safety
//
//   - [Bracket]: Acquire-release-use with guaranteed cleanup
//   - [OnError]: Run cleanup only on abort
//
// # Sequence Helpers
//
// [MapM], [FilterM], [ZipWithM], [SequenceM], and [FoldM] thread a
// capability-bearing computation over slices.
//
// # Tracing
//
// [TraceLayer] owns no capability: it logs every dispatched operation through
// a zap logger and forwards it untouched, pure delegation as a layer.
//
// # Example
//
//	wl, output := layr.WriterLayer(layr.StringMonoid())
//	el := layr.ErrorLayer[string]()
//	s := layr.New(wl, el)
//
//	comp := layr.HandleError(
//		layr.PutWriter("x", layr.RaiseError[string, int]("boom")),
//		func(string) layr.Eff[int] {
//			return layr.PutWriter("y", layr.Pure(7))
//		},
//	)
//
//	result := layr.RunStack[int](s, comp)
//	// result == 7, output() == "y": the "x" rolled back with the abort
package layr
