package parsing

import (
	"github.com/tliron/commonlog"

	"github.com/clarete/parsing/trampoline"
)

// Trace wraps p so that every application of it is logged at the debug
// level of the `parsing.trace` logger, along with its outcome.  Name
// the parser with Named to make the trace readable.
func Trace[T, E any](p *Parser[T, E]) *Parser[T, E] {
	return TraceWith(p, commonlog.GetLogger("parsing.trace"))
}

// TraceWith is Trace logging to the given logger
func TraceWith[T, E any](p *Parser[T, E], log commonlog.Logger) *Parser[T, E] {
	name := p.Name()
	traced := NewParser(func(r Reader[E]) trampoline.Trampoline[Result[T, E]] {
		log.Debugf("enter %s @ %s", name, r.Position())
		return trampoline.Map(p.Step(r), func(res Result[T, E]) Result[T, E] {
			switch res.Kind {
			case KindSuccess:
				log.Debugf("match %s @ %s..%s", name, r.Position(), res.Remaining.Position())
			default:
				log.Debugf("%s %s @ %s: %s", res.Kind, name, res.Remaining.Position(), res.Message)
			}
			return res
		})
	})
	traced.name = name
	return traced
}
