package internal

import "rill/internal/tokens"

type operatorApply func(x, y float64) Object

// numberOperations holds every binary operator that takes two numbers
var numberOperations = map[tokens.TokenType]operatorApply{
	tokens.PLUS: func(x, y float64) Object {
		return rillNumber(x + y)
	},
	tokens.MINUS: func(x, y float64) Object {
		return rillNumber(x - y)
	},
	tokens.STAR: func(x, y float64) Object {
		return rillNumber(x * y)
	},
	tokens.SLASH: func(x, y float64) Object {
		return rillNumber(x / y)
	},
	tokens.GREATER: func(x, y float64) Object {
		return rillBool(x > y)
	},
	tokens.GREATER_EQUAL: func(x, y float64) Object {
		return rillBool(x >= y)
	},
	tokens.LESS: func(x, y float64) Object {
		return rillBool(x < y)
	},
	tokens.LESS_EQUAL: func(x, y float64) Object {
		return rillBool(x <= y)
	},
}
