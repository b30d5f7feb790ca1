package core

type Key uint8

const (
	KeyUp1 Key = iota
	KeyDown1
	KeyUp2
	KeyDown2
	KeyEscape
	KeySpace
)

func (k Key) String() string {
	switch k {
	case KeyUp1:
		return "W"
	case KeyDown1:
		return "S"
	case KeyUp2:
		return "I"
	case KeyDown2:
		return "K"
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	}
	return "Unknown"
}

// KeySet is the set of keys held down during a frame.
type KeySet uint8

func KeysOf(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

type EventKind uint8

const (
	EventKeyDown EventKind = iota
	EventQuit
)

// Event is a discrete input event polled once per frame.
type Event struct {
	Kind EventKind
	Key  Key
}

func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

func Quit() Event {
	return Event{Kind: EventQuit}
}
