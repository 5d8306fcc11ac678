package input

import (
	"github.com/gdamore/tcell/v2"
)

// EventSource is the part of tcell.Screen the poller reads from
type EventSource interface {
	PollEvent() tcell.Event
}

// Poller turns blocking screen events into a non-blocking per-tick poll
type Poller struct {
	source EventSource
	table  *KeyTable
	events chan tcell.Event
	done   chan struct{}

	crashHandler func(any)
}

// NewPoller creates a poller over source; call Start to begin reading
func NewPoller(source EventSource, table *KeyTable) *Poller {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Poller{
		source: source,
		table:  table,
		events: make(chan tcell.Event, 256),
		done:   make(chan struct{}),
	}
}

// SetCrashHandler sets the function called when the reader goroutine panics
func (p *Poller) SetCrashHandler(handler func(any)) {
	p.crashHandler = handler
}

// Start launches the reader goroutine. It exits when the source returns nil,
// which tcell does after Fini.
func (p *Poller) Start() {
	go func() {
		defer close(p.done)
		defer func() {
			if r := recover(); r != nil {
				if p.crashHandler == nil {
					panic(r)
				}
				p.crashHandler(r)
			}
		}()

		for {
			ev := p.source.PollEvent()
			if ev == nil {
				return
			}
			p.events <- ev
		}
	}()
}

// Poll returns the next queued intent without blocking
func (p *Poller) Poll() Intent {
	select {
	case ev := <-p.events:
		return p.table.Translate(ev)
	default:
		return None
	}
}

// Done is closed when the reader goroutine has exited
func (p *Poller) Done() <-chan struct{} {
	return p.done
}
