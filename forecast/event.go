package forecast

import (
	"fmt"
)

type EventKind int

const (
	DocumentStart EventKind = iota
	DocumentEnd
	ObjectStart
	ObjectEnd
	ArrayStart
	ArrayEnd
	Key
	Value
	Whitespace
)

var kindNames = [...]string{
	DocumentStart: "DocumentStart",
	DocumentEnd:   "DocumentEnd",
	ObjectStart:   "ObjectStart",
	ObjectEnd:     "ObjectEnd",
	ArrayStart:    "ArrayStart",
	ArrayEnd:      "ArrayEnd",
	Key:           "Key",
	Value:         "Value",
	Whitespace:    "Whitespace",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return kindNames[k]
}

// Event is one token of a JSON document. Text carries the key name for Key
// events and the literal scalar text for Value events; strings arrive
// unquoted.
type Event struct {
	Kind EventKind
	Text string
}

func (e Event) String() string {
	switch e.Kind {
	case Key, Value:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Text)
	}
	return e.Kind.String()
}

// Handler consumes events in document order.
type Handler interface {
	Handle(Event)
}

type HandlerFunc func(Event)

func (f HandlerFunc) Handle(ev Event) {
	f(ev)
}
