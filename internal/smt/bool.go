package smt

import (
	"fmt"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
)

const (
	IntKind  = "int"
	BoolKind = "bool"
)

// Bool wraps a boolean yices term. Propositions built from Int comparisons
// and Bool connectives are what a Session accumulates.
type Bool struct {
	name  string
	value yices2.TermT
}

func NewBool(name string) Bool {
	term := yices2.NewUninterpretedTerm(yices2.BoolType())
	errcode := yices2.SetTermName(term, name)
	if errcode < 0 {
		fmt.Println("set term name ", errcode)
	}
	return Bool{
		name:  name,
		value: term,
	}
}

func NewBoolVal(value bool) Bool {
	if value {
		return Bool{value: yices2.True()}
	}
	return Bool{value: yices2.False()}
}

func NewBoolFromTerm(term yices2.TermT) Bool {
	return Bool{value: term}
}

func (b Bool) GetRaw() yices2.TermT {
	return b.value
}

func (b Bool) GetName() string {
	return b.name
}

func (b Bool) Kind() string {
	return BoolKind
}

func (b Bool) Not() Bool {
	return Bool{value: yices2.Not(b.value)}
}

func (b Bool) And(other Bool) Bool {
	return Bool{value: yices2.And2(b.value, other.value)}
}

func (b Bool) Or(other Bool) Bool {
	return Bool{value: yices2.Or2(b.value, other.value)}
}

func (b Bool) Implies(other Bool) Bool {
	return Bool{value: yices2.Implies(b.value, other.value)}
}

// Iff is the bidirectional equivalence. Definitions like
// "withdrawable <=> now >= unlock" must use Iff, not Implies, or the
// reverse direction is left open for the solver to exploit.
func (b Bool) Iff(other Bool) Bool {
	return Bool{value: yices2.Iff(b.value, other.value)}
}

// AsInt is the 0/1 indicator term, used for counting booleans.
func (b Bool) AsInt() *Int {
	term := yices2.Ite(b.value, yices2.Int32(1), yices2.Int32(0))
	return NewIntFromTerm(term)
}

func (b Bool) IsSymbolic() bool {
	return yices2.TermConstructor(b.value) != yices2.TrmCnstrBoolConstant
}

func (b Bool) Value() bool {
	var val int32
	errcode := yices2.BoolConstValue(b.value, &val)
	if errcode != 0 {
		fmt.Println("errcode ", errcode, ", ", yices2.ErrorString())
	}
	return val != 0
}

// All conjoins a list of propositions.
func All(values ...Bool) Bool {
	terms := make([]yices2.TermT, len(values))
	for i := range values {
		terms[i] = values[i].value
	}
	return Bool{value: yices2.And(terms)}
}
