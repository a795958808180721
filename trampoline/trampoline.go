// Package trampoline provides a deferred computation that is driven
// to completion by a loop instead of by native recursion.
//
// A Trampoline is either done, holding a value, or it holds a thunk
// that produces the next step.  Map and FlatMap chain computations
// without forcing them, and Run unwinds the whole chain iteratively
// using a continuation stack that lives on the heap.  That's what
// allows arbitrarily long chains (and arbitrarily deep nesting of
// chains) to run within a constant amount of Go stack.
package trampoline

// step is the untyped representation shared by all trampolines.  The
// typed API wraps it so the continuation stack in Run can hold
// functions over different value types.
type step interface{ isStep() }

type done struct{ value any }

type more struct{ thunk func() step }

type bind struct {
	inner step
	cont  func(any) step
}

func (done) isStep() {}
func (more) isStep() {}
func (bind) isStep() {}

// Trampoline is a computation producing a value of type A
type Trampoline[A any] struct {
	s step
}

// Done wraps a value that is already computed
func Done[A any](value A) Trampoline[A] {
	return Trampoline[A]{s: done{value: value}}
}

// More defers the computation of the next step until the trampoline
// is run
func More[A any](thunk func() Trampoline[A]) Trampoline[A] {
	return Trampoline[A]{s: more{thunk: func() step { return thunk().s }}}
}

// Map transforms the eventual value of t without forcing it
func Map[A, B any](t Trampoline[A], f func(A) B) Trampoline[B] {
	return Trampoline[B]{s: bind{
		inner: t.s,
		cont:  func(v any) step { return done{value: f(cast[A](v))} },
	}}
}

// FlatMap chains a computation that depends on the eventual value of
// t.  The continuation f is only called from within Run.
func FlatMap[A, B any](t Trampoline[A], f func(A) Trampoline[B]) Trampoline[B] {
	return Trampoline[B]{s: bind{
		inner: t.s,
		cont:  func(v any) step { return f(cast[A](v)).s },
	}}
}

// IsDone tells whether the trampoline holds an already computed value
func (t Trampoline[A]) IsDone() bool {
	_, ok := t.s.(done)
	return ok
}

// Run drives the trampoline until a final value is produced
func (t Trampoline[A]) Run() A {
	var (
		current = t.s
		conts   []func(any) step
	)
	for {
		switch s := current.(type) {
		case done:
			if len(conts) == 0 {
				return cast[A](s.value)
			}
			k := conts[len(conts)-1]
			conts[len(conts)-1] = nil
			conts = conts[:len(conts)-1]
			current = k(s.value)
		case more:
			current = s.thunk()
		case bind:
			conts = append(conts, s.cont)
			current = s.inner
		default:
			// zero Trampoline
			var zero A
			if len(conts) == 0 {
				return zero
			}
			current = done{value: zero}
		}
	}
}

// cast recovers the typed value from its untyped box.  A nil box
// means the zero value, which is what an interface typed A holding
// nil looks like after being stored as `any`.
func cast[A any](v any) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}
