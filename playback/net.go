package playback

import (
	"context"
	"encoding/gob"
	"io"

	"github.com/pkg/errors"
)

// Header describes the playback that follows it on a stream, so that the
// receiver can rebuild the tree it renders.
type Header struct {
	Kind   string
	Flat   string
	Method string
	Order  []int
}

// Encode writes header followed by every event received from events to w,
// until events is closed.
func Encode(w io.Writer, header Header, events <-chan Event) error {
	enc := gob.NewEncoder(w)

	if err := enc.Encode(header); err != nil {
		return errors.Wrap(err, "encoding header")
	}

	for ev := range events {
		if err := enc.Encode(ev); err != nil {
			return errors.Wrapf(err, "encoding %s", ev)
		}
	}
	return nil
}

// Decode reads the header written by Encode and then decodes events in a
// goroutine until the stream ends or ctx is done. The events channel is then
// closed; a decoding error other than the end of the stream is sent on errs
// first. If the header cannot be decoded, no events are read.
func Decode(ctx context.Context, r io.Reader) (Header, <-chan Event, <-chan error) {
	dec := gob.NewDecoder(r)

	errs := make(chan error, 1)
	events := make(chan Event)

	var header Header
	if err := dec.Decode(&header); err != nil {
		errs <- errors.Wrap(err, "decoding header")
		close(events)
		close(errs)
		return header, events, errs
	}

	go func() {
		defer close(errs)
		defer close(events)

		for {
			// The gob decoder only fills in fields that are present in the
			// stream, so each pass decodes into a fresh Event.
			ev := Event{}
			if err := dec.Decode(&ev); err != nil {
				if err != io.EOF {
					errs <- errors.Wrap(err, "decoding event")
				}
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return header, events, errs
}
