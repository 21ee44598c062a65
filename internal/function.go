package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

type callable interface {
	Object
	arity() int
	call(exec *exec, arguments []Object) (Object, error)
}

type function struct {
	declaration *fnStmt
	closure     *env
}

// returnSignal carries a return value up to the enclosing call. It travels
// on the error path but is never reported.
type returnSignal struct {
	value Object
}

func (r *returnSignal) Error() string {
	return "return outside of a function call"
}

func (f *function) arity() int {
	return len(f.declaration.params)
}

func (f *function) call(exec *exec, arguments []Object) (Object, error) {
	env := newEnv(f.closure)
	for i := range f.declaration.params {
		env.define(f.declaration.params[i].lexeme, arguments[i])
	}

	err := exec.executeBlock(f.declaration.body, env)

	var ret *returnSignal
	if errors.As(err, &ret) {
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	return null, nil
}

func (f *function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}
