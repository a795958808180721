package parsing

// Run applies p to r honoring the `parse.*` settings of cfg.  A nil
// cfg means the defaults from NewConfig.
func Run[T, E any](p *Parser[T, E], r Reader[E], cfg *Config) Result[T, E] {
	if cfg == nil {
		cfg = NewConfig()
	}
	if cfg.GetBool("parse.require_end") {
		p = SeqIgnoreRight(p, EndOfInput[E]())
	}
	if cfg.GetBool("parse.trace") {
		p = Trace(p)
	}
	if cfg.GetBool("parse.packrat") {
		if _, ok := r.(*PackratReader[E]); !ok {
			r = NewPackratReader(r)
		}
	}
	return p.Parse(r)
}

// ParseString runs p over the runes of input
func ParseString[T any](p *Parser[T, rune], input string, cfg *Config) Result[T, rune] {
	return Run(p, Reader[rune](NewRuneReader(input)), cfg)
}

// ParseSlice runs p over the elements of input
func ParseSlice[T, E any](p *Parser[T, E], input []E, cfg *Config) Result[T, E] {
	return Run(p, Reader[E](NewSliceReader(input)), cfg)
}
