package smt

import (
	"fmt"
	"math/big"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
)

// Int wraps an unbounded integer yices term. Balances, amounts, fees and
// timestamps are all modeled as exact integers: there is no wraparound, an
// "overflow" is a value exceeding a configured maximum.
type Int struct {
	name  string
	value yices2.TermT
}

func NewInt(name string) *Int {
	term := yices2.NewUninterpretedTerm(yices2.IntType())
	errcode := yices2.SetTermName(term, name)
	if errcode < 0 {
		fmt.Println("set term name ", errcode)
	}
	return &Int{
		name:  name,
		value: term,
	}
}

func NewIntVal(value int64) *Int {
	return &Int{value: yices2.Int64(value)}
}

func NewIntValFromBigInt(value *big.Int) *Int {
	return &Int{value: yices2.ParseRational(value.String())}
}

func NewIntFromTerm(term yices2.TermT) *Int {
	return &Int{value: term}
}

func (iv *Int) GetRaw() yices2.TermT {
	return iv.value
}

func (iv *Int) GetName() string {
	return iv.name
}

func (iv *Int) Kind() string {
	return IntKind
}

func (iv *Int) IsSymbolic() bool {
	return yices2.TermConstructor(iv.value) != yices2.TrmCnstrArithConstant
}

func (iv *Int) Add(other *Int) *Int {
	return &Int{value: yices2.Add(iv.value, other.value)}
}

func (iv *Int) AddInt64(n int64) *Int {
	return &Int{value: yices2.Add(iv.value, yices2.Int64(n))}
}

func (iv *Int) Sub(other *Int) *Int {
	return &Int{value: yices2.Sub(iv.value, other.value)}
}

func (iv *Int) SubInt64(n int64) *Int {
	return &Int{value: yices2.Sub(iv.value, yices2.Int64(n))}
}

// Mul stays linear as long as one side is constant, which is all the
// fee math here ever needs.
func (iv *Int) Mul(other *Int) *Int {
	return &Int{value: yices2.Mul(iv.value, other.value)}
}

func (iv *Int) MulInt64(n int64) *Int {
	return &Int{value: yices2.Mul(iv.value, yices2.Int64(n))}
}

func (iv *Int) Eq(other *Int) Bool {
	return NewBoolFromTerm(yices2.ArithEqAtom(iv.value, other.value))
}

func (iv *Int) EqInt64(n int64) Bool {
	return NewBoolFromTerm(yices2.ArithEqAtom(iv.value, yices2.Int64(n)))
}

func (iv *Int) Neq(other *Int) Bool {
	return NewBoolFromTerm(yices2.ArithNeqAtom(iv.value, other.value))
}

func (iv *Int) Ge(other *Int) Bool {
	return NewBoolFromTerm(yices2.ArithGeqAtom(iv.value, other.value))
}

func (iv *Int) GeInt64(n int64) Bool {
	return NewBoolFromTerm(yices2.ArithGeqAtom(iv.value, yices2.Int64(n)))
}

func (iv *Int) Gt(other *Int) Bool {
	return NewBoolFromTerm(yices2.ArithGtAtom(iv.value, other.value))
}

func (iv *Int) GtInt64(n int64) Bool {
	return NewBoolFromTerm(yices2.ArithGtAtom(iv.value, yices2.Int64(n)))
}

func (iv *Int) Le(other *Int) Bool {
	return NewBoolFromTerm(yices2.ArithLeqAtom(iv.value, other.value))
}

func (iv *Int) LeInt64(n int64) Bool {
	return NewBoolFromTerm(yices2.ArithLeqAtom(iv.value, yices2.Int64(n)))
}

func (iv *Int) Lt(other *Int) Bool {
	return NewBoolFromTerm(yices2.ArithLtAtom(iv.value, other.value))
}

func (iv *Int) LtInt64(n int64) Bool {
	return NewBoolFromTerm(yices2.ArithLtAtom(iv.value, yices2.Int64(n)))
}

func (iv *Int) String() string {
	return yices2.TermToString(iv.value, 200, 80, 0)
}

// Sum builds a single arithmetic term over all operands.
func Sum(values ...*Int) *Int {
	if len(values) == 0 {
		return NewIntVal(0)
	}
	terms := make([]yices2.TermT, len(values))
	for i := range values {
		terms[i] = values[i].GetRaw()
	}
	return &Int{value: yices2.Sum(terms)}
}
