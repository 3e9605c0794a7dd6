package smt

import (
	"fmt"
	"math/big"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
)

// Model value extraction. A model is only meaningful while the context that
// produced it has not been reset; callers hold it through the Session.

func GetInt64Value(model *yices2.ModelT, term yices2.TermT) (int64, error) {
	var val int64
	errcode := yices2.GetInt64Value(*model, term, &val)
	if errcode != 0 {
		return 0, fmt.Errorf("%s", yices2.ErrorString())
	}
	return val, nil
}

// GetBigValue evaluates a term whose value may not fit in 64 bits, e.g. the
// witness of an overflow past 2^256. Falls back to rendering the value term
// and re-parsing, since the fast path only covers int64.
func GetBigValue(model *yices2.ModelT, term yices2.TermT) (*big.Int, error) {
	var val int64
	errcode := yices2.GetInt64Value(*model, term, &val)
	if errcode == 0 {
		return big.NewInt(val), nil
	}

	valueTerm := yices2.GetValueAsTerm(*model, term)
	if valueTerm == yices2.NullTerm {
		return nil, fmt.Errorf("%s", yices2.ErrorString())
	}
	text := yices2.TermToString(valueTerm, 200, 1, 0)
	result, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("cannot parse model value %q", text)
	}
	return result, nil
}

func GetBoolValue(model *yices2.ModelT, term yices2.TermT) (bool, error) {
	var val int32
	errcode := yices2.GetBoolValue(*model, term, &val)
	if errcode != 0 {
		return false, fmt.Errorf("%s", yices2.ErrorString())
	}
	return val != 0, nil
}
