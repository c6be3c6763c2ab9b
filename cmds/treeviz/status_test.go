package main

import (
	"testing"
)

type recorder struct {
	texts []string
}

func (r *recorder) SetText(s string) {
	r.texts = append(r.texts, s)
}

func TestStatusLine(t *testing.T) {
	rec := &recorder{}
	line := NewStatusLine(rec)

	state := &statusPart{brackets: true}
	msg := &statusPart{}
	line.Add(state)
	line.Add(msg)

	state.SetStatus("%s", "idle")
	msg.SetStatus("press p to play")
	msg.SetStatus("")

	exp := []string{
		"",
		"",
		"[idle]",
		"[idle] press p to play",
		"[idle]",
	}

	if len(rec.texts) != len(exp) {
		t.Fatalf("got %d updates %q, expected %d", len(rec.texts), rec.texts, len(exp))
	}
	for i := range exp {
		if rec.texts[i] != exp[i] {
			t.Errorf("update %d: got %q, expected %q", i, rec.texts[i], exp[i])
		}
	}
}

func TestControls(t *testing.T) {
	tests := []struct {
		name    string
		playing bool
		exp     string
	}{
		{"Idle", false, "r:replay p:play m:method q:quit"},
		{"Playing", true, "r:replay(off) p:play(off) m:method(off) q:quit"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := controls(tc.playing); got != tc.exp {
				t.Errorf("got %q, expected %q", got, tc.exp)
			}
		})
	}
}
