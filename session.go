// Package treeviz ties together building a tree from its level-order encoding,
// computing a traversal order and playing it back.
package treeviz

import (
	"github.com/pkg/errors"

	"github.com/jeffwilliams/treeviz/arena"
	"github.com/jeffwilliams/treeviz/playback"
	"github.com/jeffwilliams/treeviz/traverse"
)

// Session is a tree together with the order in which one traversal visits it.
type Session struct {
	Kind   arena.Kind
	Method traverse.Method
	Flat   arena.Flat
	Tree   *arena.Tree
	Order  []int
}

// Prepare parses flat, builds the tree and computes its traversal order. The
// tree must not contain duplicate values.
func Prepare(flat, kind, method string) (*Session, error) {
	k, err := arena.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	m, err := traverse.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	f, err := arena.ParseFlat(flat)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse tree %q", flat)
	}

	t := arena.Build(f, k)
	if err := arena.Validate(t); err != nil {
		return nil, errors.Wrap(err, "invalid tree")
	}

	return &Session{
		Kind:   k,
		Method: m,
		Flat:   f,
		Tree:   t,
		Order:  traverse.Order(t, m),
	}, nil
}

// WithMethod returns a session over the same tree traversed by m.
func (s *Session) WithMethod(m traverse.Method) *Session {
	c := *s
	c.Method = m
	c.Order = traverse.Order(s.Tree, m)
	return &c
}

// Controller returns a playback controller for the session's order.
func (s *Session) Controller(opts playback.Options) *playback.Controller {
	return playback.New(s.Order, opts)
}

// Header describes the session on a playback event stream.
func (s *Session) Header() playback.Header {
	return playback.Header{
		Kind:   s.Kind.String(),
		Flat:   arena.Flatten(s.Tree).String(),
		Method: s.Method.String(),
		Order:  append([]int(nil), s.Order...),
	}
}

// FromHeader rebuilds the session described by a stream header.
func FromHeader(h playback.Header) (*Session, error) {
	s, err := Prepare(h.Flat, h.Kind, h.Method)
	if err != nil {
		return nil, errors.Wrap(err, "bad stream header")
	}
	return s, nil
}
