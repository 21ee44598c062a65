package internal

type rillString string

func (s rillString) String() string {
	return string(s)
}
