// Package nav implements client-side navigation: a static graph of
// destinations, a back stack of visited entries, and the controller that
// mutates the stack.
//
// # Overview
//
// The package is UI agnostic. A host (the Bubble Tea model in internal/ui)
// builds a Graph at startup, wraps it in a Controller and re-renders
// whenever the controller reports a new current entry.
//
//	Screens / tab bar           Controller              Host
//	┌──────────────┐      ┌──────────────────┐     ┌──────────────┐
//	│ navigate(id) │─────→│ plan on a clone  │     │              │
//	│              │      │ commit (mutex)   │────→│ observer(e)  │
//	│              │      │ notify observers │     │ render e     │
//	└──────────────┘      └──────────────────┘     └──────────────┘
//
// # Core Types
//
// Graph:
//   - Immutable set of Destination values plus the start destination
//   - Validated once by NewGraph (unique ids, registered children, schemas)
//
// BackStack:
//   - Ordered entries, bottom first; the start entry sits at index 0
//   - PopTo removes entries above (optionally including) a target
//   - Saved segments keyed by destination id for later Restore
//
// Controller:
//   - Navigate(id, args, opts...) with PopUpTo, LaunchSingleTop and
//     RestoreState options
//   - PopBackStack for the back key, PopBackStackTo for explicit pops
//   - Subscribe for observers, OnNavigated for side-effect hooks
//
// # Navigation Semantics
//
// Navigate works on a private copy of the stack and only swaps it in once
// every step has succeeded:
//
//  1. Unknown id                       → ErrUnknownDestination
//  2. PopUpTo target absent            → ErrTargetNotFound
//  3. RestoreState with a saved segment → segment pushed back, args ignored
//  4. Args fail the schema             → ErrArgumentMismatch
//  5. LaunchSingleTop and id on top    → top reused, args replaced if changed
//  6. Otherwise                        → new entry pushed
//
// Popping to an absent target is an error rather than a no-op, and no
// operation may leave the stack empty.
//
// # Tab Switching
//
// The usual tab bar pattern keeps a separate history per tab:
//
//	ctrl.Navigate("friends", nil,
//	    nav.PopUpTo(graph.Start().ID, false, true),
//	    nav.LaunchSingleTop(),
//	    nav.RestoreState(),
//	)
//
// Leaving a tab saves its entries (and their State blobs) under the tab's
// id; returning to it restores them exactly.
//
// # Typed Arguments
//
// A destination may declare an ArgSchema. Arguments are validated and
// normalized on push, then bound to a record with Decode:
//
//	type Profile struct {
//	    Name string `arg:"name"`
//	}
//	p, err := nav.Decode[Profile](entry.Args)
//
// # Concurrency
//
// All controller methods are safe for concurrent use. Observers and hooks
// run after the lock is released, so they may call back into the
// controller.
package nav
