package main

import (
	"bytes"
	"fmt"
)

type TextSetter interface {
	SetText(string)
}

// StatusLine joins its parts with spaces and pushes the result to setter
// whenever a part changes.
type StatusLine struct {
	parts  []StatusPart
	setter TextSetter
}

func NewStatusLine(setter TextSetter) *StatusLine {
	return &StatusLine{setter: setter}
}

func (l StatusLine) String() string {
	var buf bytes.Buffer
	for _, p := range l.parts {
		s := p.String()
		if s == "" {
			continue
		}
		if buf.Len() != 0 {
			buf.WriteRune(' ')
		}
		buf.WriteString(s)
	}
	return buf.String()
}

func (l *StatusLine) Add(p StatusPart) {
	l.parts = append(l.parts, p)
	p.OnChange(l)
	l.changed()
}

func (l *StatusLine) changed() {
	if l.setter != nil {
		l.setter.SetText(l.String())
	}
}

type Changer interface {
	changed()
}

type StatusPart interface {
	fmt.Stringer
	OnChange(c Changer)
}

type statusPart struct {
	text     string
	c        Changer
	brackets bool
}

type StatusSetter interface {
	SetStatus(s string, args ...interface{})
}

func (p *statusPart) SetStatus(s string, args ...interface{}) {
	p.text = fmt.Sprintf(s, args...)
	if p.c != nil {
		p.c.changed()
	}
}

func (p *statusPart) String() string {
	if p.text == "" {
		return ""
	}
	if p.brackets {
		return fmt.Sprintf("[%s]", p.text)
	}
	return p.text
}

func (p *statusPart) OnChange(c Changer) {
	p.c = c
}

// controls describes the keys of the ui command. Replay and method changes
// are unavailable while a run is playing.
func controls(playing bool) string {
	if playing {
		return "r:replay(off) p:play(off) m:method(off) q:quit"
	}
	return "r:replay p:play m:method q:quit"
}
