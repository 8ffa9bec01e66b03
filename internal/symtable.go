package internal

import (
	"errors"
	"fmt"
)

var errCannotExitGlobal = errors.New("Cannot exit global scope")

// symbol is a declared variable with its current value, inferred type and
// mutability. dataType always matches value's tag except transiently while
// assign performs the int-to-float widening.
type symbol struct {
	name        string
	value       Value
	dataType    DataType
	mutable     bool
	initialized bool
}

// scope maps names to the symbols declared at one nesting level.
type scope map[string]*symbol

// symbolTable is a stack of scopes with the global scope at index 0. The
// global scope always exists and is never popped.
type symbolTable struct {
	scopes []scope
}

func newSymbolTable() *symbolTable {
	return &symbolTable{scopes: []scope{make(scope)}}
}

func (t *symbolTable) enterScope() {
	t.scopes = append(t.scopes, make(scope))
}

func (t *symbolTable) exitScope() error {
	if len(t.scopes) <= 1 {
		return errCannotExitGlobal
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
	return nil
}

func (t *symbolTable) depth() int {
	return len(t.scopes)
}

// define declares a name in the innermost scope, inferring its type from the
// value. Redefining a name within the same scope is an error; shadowing an
// outer scope is not.
func (t *symbolTable) define(name string, value Value, mutable bool) error {
	current := t.scopes[len(t.scopes)-1]
	if _, ok := current[name]; ok {
		return fmt.Errorf("Variable '%s' already declared in this scope", name)
	}
	current[name] = &symbol{
		name:        name,
		value:       value,
		dataType:    value.Type(),
		mutable:     mutable,
		initialized: true,
	}
	return nil
}

// lookup searches innermost to outermost and returns the first match, so
// inner declarations shadow outer ones.
func (t *symbolTable) lookup(name string) *symbol {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i][name]; ok {
			return sym
		}
	}
	return nil
}

func (t *symbolTable) exists(name string) bool {
	return t.lookup(name) != nil
}

func (t *symbolTable) getValue(name string) (Value, error) {
	if sym := t.lookup(name); sym != nil {
		return sym.value, nil
	}
	return nil, fmt.Errorf("Variable '%s' not found", name)
}

func (t *symbolTable) isMutable(name string) (bool, error) {
	if sym := t.lookup(name); sym != nil {
		return sym.mutable, nil
	}
	return false, fmt.Errorf("Variable '%s' not found", name)
}

// assign stores a new value into an existing symbol. The value must match
// the symbol's declared type, except an integer assigned into a float
// symbol, which widens in place.
func (t *symbolTable) assign(name string, value Value) error {
	sym := t.lookup(name)
	if sym == nil {
		return fmt.Errorf("Variable '%s' not found", name)
	}
	if !sym.mutable {
		return fmt.Errorf("Cannot assign to immutable variable '%s'", name)
	}
	if sym.dataType != value.Type() {
		if sym.dataType == TypeFloat && value.Type() == TypeInteger {
			sym.value = arcFloat(value.(arcInt))
			return nil
		}
		return fmt.Errorf("Type mismatch: variable '%s' has type %s, cannot assign value of type %s",
			name, sym.dataType, value.Type())
	}
	sym.value = value
	return nil
}
