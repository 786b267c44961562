// Package script parses compact input scripts for headless runs.
//
// A script is a comma separated list of segments, each "keys:ticks". Keys
// combine w (forward), s (back), a (left), d (right) and j (jump, pressed on
// the segment's first tick only); "none" holds no input. For example
// "w:30,wj:1,none:40" walks forward for 30 ticks, jumps while walking, then
// idles for 40 ticks.
package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrEmpty = errors.New("script has no segments")

// Frame is the input held for one tick.
type Frame struct {
	Horizontal float64
	Vertical   float64
	Jump       bool
}

// Segment holds one frame for a number of ticks.
type Segment struct {
	Keys  string
	Frame Frame
	Ticks int
}

// Script is a parsed input sequence.
type Script struct {
	Segments []Segment
	total    int
}

// Parse reads a script string.
func Parse(src string) (*Script, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, ErrEmpty
	}

	s := &Script{}
	for i, part := range strings.Split(src, ",") {
		seg, err := parseSegment(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("segment %d %q: %w", i, part, err)
		}
		s.Segments = append(s.Segments, seg)
		s.total += seg.Ticks
	}
	return s, nil
}

func parseSegment(part string) (Segment, error) {
	keys, count, ok := strings.Cut(part, ":")
	if !ok {
		return Segment{}, errors.New("expected keys:ticks")
	}
	ticks, err := strconv.Atoi(count)
	if err != nil {
		return Segment{}, fmt.Errorf("bad tick count: %w", err)
	}
	if ticks <= 0 {
		return Segment{}, fmt.Errorf("tick count must be positive, got %d", ticks)
	}

	seg := Segment{Keys: keys, Ticks: ticks}
	if keys == "none" {
		return seg, nil
	}
	for _, k := range keys {
		switch k {
		case 'w':
			seg.Frame.Vertical++
		case 's':
			seg.Frame.Vertical--
		case 'd':
			seg.Frame.Horizontal++
		case 'a':
			seg.Frame.Horizontal--
		case 'j':
			seg.Frame.Jump = true
		default:
			return Segment{}, fmt.Errorf("unknown key %q", k)
		}
	}
	return seg, nil
}

// Len is the total number of ticks.
func (s *Script) Len() int {
	return s.total
}

// At returns the frame for tick. Jump is only set on a segment's first tick;
// ticks past the end hold no input.
func (s *Script) At(tick int) Frame {
	if tick < 0 {
		return Frame{}
	}
	start := 0
	for _, seg := range s.Segments {
		if tick < start+seg.Ticks {
			f := seg.Frame
			f.Jump = f.Jump && tick == start
			return f
		}
		start += seg.Ticks
	}
	return Frame{}
}

func (s *Script) String() string {
	parts := make([]string, len(s.Segments))
	for i, seg := range s.Segments {
		parts[i] = fmt.Sprintf("%s:%d", seg.Keys, seg.Ticks)
	}
	return strings.Join(parts, ",")
}
