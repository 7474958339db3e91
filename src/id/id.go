// Package id provides the opaque variable identity the expression core
// consumes. spec.md §3/§6 keep identity assignment out of the core's
// scope entirely; this package is the external factory a caller plugs
// in, ported from the original's VarGroup (original_source/addrs).
package id

import "sync/atomic"

var nextGroup int64

// Id names a single input variable. Two Ids are equal iff they name
// the same logical input. The zero value is never handed out by
// Group.Next, so it is safe to use as a "no variable" sentinel.
type Id struct {
	group int64
	name  string
	seq   uint64
}

// Group returns the numeric group this Id belongs to.
func (i Id) Group() int64 { return i.group }

// Name returns the group's human-readable name.
func (i Id) Name() string { return i.name }

// Seq returns the Id's sequence number within its group.
func (i Id) Seq() uint64 { return i.seq }

// Less gives Id a total order: group, then name, then sequence.
func (i Id) Less(o Id) bool {
	if i.group != o.group {
		return i.group < o.group
	}
	if i.name != o.name {
		return i.name < o.name
	}
	return i.seq < o.seq
}

func (i Id) String() string {
	return i.name + "#" + itoa(i.seq)
}

func itoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	n := len(buf)
	for v > 0 {
		n--
		buf[n] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[n:])
}

// Group hands out a sequential stream of Ids under one name, the way
// a caller typically names one tensor/parameter/input's scalar
// components. Safe for concurrent use even though the core itself is
// single-threaded (spec.md §5): callers are free to set up their
// variables from multiple goroutines before ever touching the core.
type Group struct {
	id   int64
	name string
	seq  uint64
}

// NewGroup creates a fresh, uniquely numbered variable group.
func NewGroup(name string) *Group {
	gid := atomic.AddInt64(&nextGroup, 1)
	return &Group{id: gid, name: name}
}

// Name returns the group's name.
func (g *Group) Name() string { return g.name }

// Next hands out the next Id in this group.
func (g *Group) Next() Id {
	seq := atomic.AddUint64(&g.seq, 1) - 1
	return Id{group: g.id, name: g.name, seq: seq}
}
