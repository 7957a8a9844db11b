package core

import "fmt"

// Entity is a generational handle into the world arena
// Generation 0 is never issued, so the zero value is always invalid
type Entity struct {
	Index      uint32
	Generation uint32
}

// IsZero reports whether e is the invalid handle
func (e Entity) IsZero() bool {
	return e.Generation == 0
}

func (e Entity) String() string {
	if e.IsZero() {
		return "entity(nil)"
	}
	return fmt.Sprintf("entity(%d:%d)", e.Index, e.Generation)
}
