package parsing

// chain parses `p (op p)*` keeping the operators paired with the
// operand that follows them.  The bounds count occurrences of p.
func chain[T, E any](p *Parser[T, E], op *Parser[func(T, T) T, E], min, max int, fold func(T, []Pair[func(T, T) T, T]) T) *Parser[Option[T], E] {
	checkBounds(min, max)
	if max == 0 {
		return Success[Option[T], E](None[T]())
	}
	restMax := Unbounded
	if max != Unbounded {
		restMax = max - 1
	}
	rest := Rep(Seq(op, p), maxInt(0, min-1), restMax)
	all := SeqWith(p, rest, func(first T, ops []Pair[func(T, T) T, T]) Option[T] {
		return Some(fold(first, ops))
	})
	if min > 0 {
		return all
	}
	return Or(all, Success[Option[T], E](None[T]()))
}

func foldLeft[T any](first T, rest []Pair[func(T, T) T, T]) T {
	acc := first
	for _, item := range rest {
		acc = item.First(acc, item.Second)
	}
	return acc
}

func foldRight[T any](first T, rest []Pair[func(T, T) T, T]) T {
	if len(rest) == 0 {
		return first
	}
	// each operator combines the operand before it with everything
	// folded to its right
	acc := rest[len(rest)-1].Second
	for i := len(rest) - 1; i >= 1; i-- {
		acc = rest[i].First(rest[i-1].Second, acc)
	}
	return rest[0].First(first, acc)
}

// ChainLeft parses occurrences of p separated by op, and folds the
// values from left to right using the functions op produces.  The
// earliest operator is applied to the earliest two operands first.
// The result is None when `min` is zero and p didn't match.
func ChainLeft[T, E any](p *Parser[T, E], op *Parser[func(T, T) T, E], min, max int) *Parser[Option[T], E] {
	return chain(p, op, min, max, foldLeft[T])
}

// ChainRight is like ChainLeft but folds from right to left, so the
// latest operator is applied to the latest two operands first
func ChainRight[T, E any](p *Parser[T, E], op *Parser[func(T, T) T, E], min, max int) *Parser[Option[T], E] {
	return chain(p, op, min, max, foldRight[T])
}

// ChainLeft1 is ChainLeft requiring at least one occurrence of p
func ChainLeft1[T, E any](p *Parser[T, E], op *Parser[func(T, T) T, E]) *Parser[T, E] {
	return Map(ChainLeft(p, op, 1, Unbounded), func(o Option[T]) T { return o.Value })
}

// ChainRight1 is ChainRight requiring at least one occurrence of p
func ChainRight1[T, E any](p *Parser[T, E], op *Parser[func(T, T) T, E]) *Parser[T, E] {
	return Map(ChainRight(p, op, 1, Unbounded), func(o Option[T]) T { return o.Value })
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
