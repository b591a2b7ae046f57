// Package scope lets a function or loop body leave early from inside an
// expression, so an unwanted carrier can end the enclosing function or skip
// the current element without an if statement at the call site:
//
//	scope.Run(func(s *scope.Scope[bool]) bool {
//		user := scope.UnwrapOrFalse(s, lookup(name))
//		scope.RequireOr(s, user.Active, false)
//		...
//	})
//
// Scopes:
// - Run/Do: function scopes, left with Return/ReturnWith
// - Range/Range2/Slice: loop scopes, left per element with Continue or for good with Break
//
// Unwrap family (carrier evaluated once, fallback only on the unwanted branch):
// - UnwrapOrDo: arbitrary fallback, its value is used if it does not divert
// - UnwrapOrContinue/UnwrapOrBreak: continue or break the loop
// - UnwrapOrReturn/UnwrapOrFalse/UnwrapOrTrue/UnwrapOrVal: return from the scope
// - Require/RequireOr/RequireContinue: boolean guards
//
// A diversion is a panic that only the owning scope recovers. It passes
// through nested scopes untouched and never swallows foreign panics. Scopes
// must be diverted from the goroutine running them and only while they run.
package scope
