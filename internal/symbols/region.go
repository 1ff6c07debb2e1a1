package symbols

// The arena context stack (spec.md §3.7) tracks, at any point in the
// walker's traversal, whether the current position is nested inside a
// `private` block, a `native fn` body, or an `as val` operand — each as a
// plain counter rather than a real stack, since all that's ever asked is
// "how deep", never "what was the previous frame" (§4.7.11's nesting
// invariant only needs depth, not frame identity). The counters live on
// the global Table rather than per-scope, because arena context nests
// independently of lexical scope (a `private` block can open and close
// without introducing a new variable scope of its own, and vice versa).

// EnterPrivate pushes one level of private-region context. Pair with a
// deferred ExitPrivate so an error return or panic still unwinds it.
func (t *Table) EnterPrivate() { t.root().arenaDepth++ }

// ExitPrivate pops one level of private-region context.
func (t *Table) ExitPrivate() {
	r := t.root()
	if r.arenaDepth > 0 {
		r.arenaDepth--
	}
}

// InPrivate reports whether the walker is currently inside at least one
// `private` block (§4.7.4's private escape rule applies here).
func (t *Table) InPrivate() bool { return t.root().arenaDepth > 0 }

// EnterNative pushes one level of native-function context.
func (t *Table) EnterNative() { t.root().inNative++ }

// ExitNative pops one level of native-function context.
func (t *Table) ExitNative() {
	r := t.root()
	if r.inNative > 0 {
		r.inNative--
	}
}

// InNative reports whether the walker is currently inside a `native fn`
// body (§4.7.6-§4.7.9: pointer expressions and as-ref are only legal here).
func (t *Table) InNative() bool { return t.root().inNative > 0 }

// EnterAsVal pushes one level of `as val` operand context.
func (t *Table) EnterAsVal() { t.root().inAsVal++ }

// ExitAsVal pops one level of `as val` operand context.
func (t *Table) ExitAsVal() {
	r := t.root()
	if r.inAsVal > 0 {
		r.inAsVal--
	}
}

// InAsVal reports whether the walker is currently evaluating the operand
// of an `as val` expression (§4.7.5).
func (t *Table) InAsVal() bool { return t.root().inAsVal > 0 }

// root walks to the outermost Table, since the three counters are shared
// across an entire compilation regardless of how many lexical scopes are
// pushed and popped while walking it.
func (t *Table) root() *Table {
	r := t
	for r.outer != nil {
		r = r.outer
	}
	return r
}
