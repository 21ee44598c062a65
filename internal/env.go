package internal

// env is one link of the lexical scope chain. Closures and call frames share
// links by pointer, so a write through one is seen by all of them.
type env struct {
	enclosing *env
	values    map[string]Object
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]Object),
	}
}

func (e *env) get(name *Token) (Object, error) {
	if value, ok := e.values[name.lexeme]; ok {
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	return nil, newRuntimeError(UndefinedVariable, name, "Undefined variable '%s'.", name.lexeme)
}

// define binds name in this scope only, replacing any previous binding
func (e *env) define(name string, value Object) {
	e.values[name] = value
}

// assign updates the nearest existing binding, it never creates one
func (e *env) assign(name *Token, value Object) error {
	if _, ok := e.values[name.lexeme]; ok {
		e.values[name.lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.assign(name, value)
	}
	return newRuntimeError(UndefinedVariable, name, "Undefined variable '%s'.", name.lexeme)
}
