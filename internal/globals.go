package internal

import (
	"time"
)

type nativeFn struct {
	arityValue int
	callFn     func(arguments []Object) (Object, error)
}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(exec *exec, arguments []Object) (Object, error) {
	return n.callFn(arguments)
}

func (n *nativeFn) String() string {
	return "<native fn>"
}

func defineGlobals(e *env) {
	defineClock(e)
	defineType(e)
}

func defineClock(e *env) {
	e.define("clock", &nativeFn{
		arityValue: 0,
		callFn: func(arguments []Object) (Object, error) {
			return rillNumber(float64(time.Now().UnixNano()) / float64(time.Second)), nil
		},
	})
}

func defineType(e *env) {
	e.define("type", &nativeFn{
		arityValue: 1,
		callFn: func(arguments []Object) (Object, error) {
			switch arguments[0].(type) {
			case rillBool:
				return rillString("bool"), nil
			case rillNumber:
				return rillString("number"), nil
			case rillString:
				return rillString("string"), nil
			case callable:
				return rillString("function"), nil
			}
			return rillString("null"), nil
		},
	})
}
