package logmanager

import (
	"net"
	"time"

	"github.com/rs/zerolog"
)

// Event provides a fluent interface for structured logging with type-safe
// field methods. It wraps zerolog.Event; an Event for a disabled tier (or a
// destroyed logger) carries a nil event and every method is a no-op, so
// callers never branch on whether a tier is enabled.
type Event struct {
	event *zerolog.Event
}

func newEvent(e *zerolog.Event) *Event {
	return &Event{event: e}
}

func (e *Event) Str(key, val string) *Event {
	if e.event != nil {
		e.event.Str(key, val)
	}
	return e
}

func (e *Event) Strs(key string, vals []string) *Event {
	if e.event != nil {
		e.event.Strs(key, vals)
	}
	return e
}

func (e *Event) Stringer(key string, val interface{ String() string }) *Event {
	if e.event != nil {
		e.event.Stringer(key, val)
	}
	return e
}

func (e *Event) Int(key string, val int) *Event {
	if e.event != nil {
		e.event.Int(key, val)
	}
	return e
}

func (e *Event) Int64(key string, val int64) *Event {
	if e.event != nil {
		e.event.Int64(key, val)
	}
	return e
}

func (e *Event) Uint64(key string, val uint64) *Event {
	if e.event != nil {
		e.event.Uint64(key, val)
	}
	return e
}

func (e *Event) Float64(key string, val float64) *Event {
	if e.event != nil {
		e.event.Float64(key, val)
	}
	return e
}

func (e *Event) Bool(key string, val bool) *Event {
	if e.event != nil {
		e.event.Bool(key, val)
	}
	return e
}

func (e *Event) Time(key string, val time.Time) *Event {
	if e.event != nil {
		e.event.Time(key, val)
	}
	return e
}

func (e *Event) Dur(key string, val time.Duration) *Event {
	if e.event != nil {
		e.event.Dur(key, val)
	}
	return e
}

// Bytes and Hex serve the raw tier: wire payloads and packet dumps.
func (e *Event) Bytes(key string, val []byte) *Event {
	if e.event != nil {
		e.event.Bytes(key, val)
	}
	return e
}

func (e *Event) Hex(key string, val []byte) *Event {
	if e.event != nil {
		e.event.Hex(key, val)
	}
	return e
}

func (e *Event) IPAddr(key string, val net.IP) *Event {
	if e.event != nil {
		e.event.IPAddr(key, val)
	}
	return e
}

func (e *Event) Interface(key string, val interface{}) *Event {
	if e.event != nil {
		e.event.Interface(key, val)
	}
	return e
}

func (e *Event) Err(err error) *Event {
	if e.event != nil {
		e.event.Err(err)
		if err != nil {
			chain, ops, root, rootOp := buildErrorChain(err)
			if len(chain) > 0 {
				// include array and joined string for readability
				e.event.Strs("error_chain", chain)
				e.event.Str("error_root", root)
				e.event.Str("error_history", joinChain(chain))
				e.event.Strs("error_ops", ops)
				if rootOp != emptyString {
					e.event.Str("error_root_op", rootOp)
				}
			}
		}
	}
	return e
}

func (e *Event) AnErr(key string, err error) *Event {
	if e.event != nil {
		e.event.AnErr(key, err)
		if err != nil {
			chain, ops, root, rootOp := buildErrorChain(err)
			if len(chain) > 0 {
				e.event.Strs(key+"_chain", chain)
				e.event.Str(key+"_root", root)
				e.event.Str(key+"_history", joinChain(chain))
				e.event.Strs(key+"_ops", ops)
				if rootOp != emptyString {
					e.event.Str(key+"_root_op", rootOp)
				}
			}
		}
	}
	return e
}

func (e *Event) Msg(msg string) {
	if e.event != nil {
		e.event.Msg(msg)
	}
}

func (e *Event) Msgf(format string, v ...interface{}) {
	if e.event != nil {
		e.event.Msgf(format, v...)
	}
}

func (e *Event) Send() {
	if e.event != nil {
		e.event.Send()
	}
}
