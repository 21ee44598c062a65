package internal

type rillNull struct{}

var null = rillNull{}

func (rillNull) String() string {
	return "null"
}
