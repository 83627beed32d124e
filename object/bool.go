package object

import "encoding/json"

// Bool wraps a Go bool and implements Object.
type Bool struct {
	value bool
}

var (
	True  = &Bool{value: true}
	False = &Bool{value: false}
)

func (b *Bool) Type() Type {
	return BOOL
}

func (b *Bool) Value() bool {
	return b.value
}

func (b *Bool) Inspect() string {
	if b.value {
		return "true"
	}
	return "false"
}

func (b *Bool) String() string {
	return b.Inspect()
}

func (b *Bool) Interface() interface{} {
	return b.value
}

func (b *Bool) Equals(other Object) bool {
	otherBool, ok := other.(*Bool)
	if !ok {
		return false
	}
	return b.value == otherBool.value
}

func (b *Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.value)
}

func NewBool(value bool) *Bool {
	if value {
		return True
	}
	return False
}
