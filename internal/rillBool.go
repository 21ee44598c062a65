package internal

import "strconv"

type rillBool bool

func (b rillBool) String() string {
	return strconv.FormatBool(bool(b))
}
