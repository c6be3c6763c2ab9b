package arena

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Slot is one entry of a level-order encoding.
type Slot struct {
	Value   int
	Present bool
}

// Null is the entry that marks "no node here".
var Null = Slot{}

// V returns a present entry.
func V(v int) Slot {
	return Slot{Value: v, Present: true}
}

// Flat is a level-order tree encoding.
type Flat []Slot

// ParseFlat parses an encoding such as "[1, null, 3, 2]", "1 null 3 2" or
// "1,null,3,2". Absent entries are written null or nil.
func ParseFlat(s string) (Flat, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	flat := make(Flat, 0, len(fields))
	for i, f := range fields {
		switch strings.ToLower(f) {
		case "null", "nil":
			flat = append(flat, Null)
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d", i)
		}
		flat = append(flat, V(v))
	}
	return flat, nil
}

// Trim returns f without trailing null entries.
func (f Flat) Trim() Flat {
	end := len(f)
	for end > 0 && !f[end-1].Present {
		end--
	}
	return f[:end]
}

func (f Flat) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range f {
		if i > 0 {
			b.WriteByte(',')
		}
		if s.Present {
			b.WriteString(strconv.Itoa(s.Value))
		} else {
			b.WriteString("null")
		}
	}
	b.WriteByte(']')
	return b.String()
}
