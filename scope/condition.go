package scope

// Cond is the three-valued condition accepted by if-chain adapters: a raw
// boolean always has a value, while a signal-backed condition may report
// no value at all.
type Cond interface {
	HasValue() bool
	Bool() bool
}

type boolCond bool

func (b boolCond) HasValue() bool { return true }
func (b boolCond) Bool() bool     { return bool(b) }

// BoolCond lifts a plain boolean into a Cond.
func BoolCond(b bool) Cond { return boolCond(b) }

// FuncCond adapts a has-value/value pair of closures into a Cond, the
// shape a readable signal's HasValue/Read naturally take.
type FuncCond struct {
	HasValueFn func() bool
	BoolFn     func() bool
}

func (f FuncCond) HasValue() bool { return f.HasValueFn() }
func (f FuncCond) Bool() bool     { return f.BoolFn() }
