package forecast

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
)

// Stream turns a JSON document into Events while it is being read. Only the
// nesting frames are kept in memory, never the document.
type Stream struct {
	dec *json.Decoder
}

type frame struct {
	object  bool
	wantKey bool
}

func NewStream(r io.Reader) *Stream {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &Stream{dec: dec}
}

// Run reads one top-level JSON value and passes its events to h. Bytes after
// that value are not read. A truncated or malformed document yields an error
// after every event that preceded the fault has been delivered.
func (s *Stream) Run(h Handler) error {
	var stack []frame

	// valueDone reports whether the top-level value is complete.
	valueDone := func() bool {
		if len(stack) == 0 {
			return true
		}
		if top := &stack[len(stack)-1]; top.object {
			top.wantKey = true
		}
		return false
	}

	h.Handle(Event{Kind: DocumentStart})
	for {
		tok, err := s.dec.Token()
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}

		var ev Event
		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				h.Handle(Event{Kind: ObjectStart})
				stack = append(stack, frame{object: true, wantKey: true})
				continue
			case '[':
				h.Handle(Event{Kind: ArrayStart})
				stack = append(stack, frame{})
				continue
			case '}':
				ev = Event{Kind: ObjectEnd}
			case ']':
				ev = Event{Kind: ArrayEnd}
			}
			stack = stack[:len(stack)-1]
		case string:
			if n := len(stack); n > 0 && stack[n-1].wantKey {
				stack[n-1].wantKey = false
				h.Handle(Event{Kind: Key, Text: t})
				continue
			}
			ev = Event{Kind: Value, Text: t}
		case json.Number:
			ev = Event{Kind: Value, Text: t.String()}
		case bool:
			ev = Event{Kind: Value, Text: strconv.FormatBool(t)}
		case nil:
			ev = Event{Kind: Value, Text: "null"}
		}

		h.Handle(ev)
		if valueDone() {
			h.Handle(Event{Kind: DocumentEnd})
			return nil
		}
	}
}
