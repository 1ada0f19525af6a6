// Package value defines Shy's tagged Value union (spec section 3, "Data
// Model") and the numeric promotion lattice shared by literals, the parser's
// PushLiteral instructions, context contents, and the evaluator's stack.
package value

import (
	"fmt"
	"math"
	"strconv"
)

//go:generate go tool stringer --linecomment --type Kind --output kind_string.go

// Kind discriminates the cases of Value.
type Kind int

const (
	Integer Kind = iota // integer
	Rational            // rational
	String              // string
	Bool                // bool
	List                // list
	Object              // object
	FunctionRef         // function
	Error               // error
	Null                // null
)

// ErrorKind classifies a Value of Kind Error, per spec section 7 ("Error
// taxonomy").
type ErrorKind int

const (
	LexError ErrorKind = iota
	ParseError
	UnknownVariable
	UnknownFunction
	ArityMismatch
	TypeMismatch
	DivideByZero
	Overflow
	InvalidAssignmentTarget
	NotAnObject
	RegexCompile
	EmptyExpression
	InternalInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "LexError"
	case ParseError:
		return "ParseError"
	case UnknownVariable:
		return "UnknownVariable"
	case UnknownFunction:
		return "UnknownFunction"
	case ArityMismatch:
		return "ArityMismatch"
	case TypeMismatch:
		return "TypeMismatch"
	case DivideByZero:
		return "DivideByZero"
	case Overflow:
		return "Overflow"
	case InvalidAssignmentTarget:
		return "InvalidAssignmentTarget"
	case NotAnObject:
		return "NotAnObject"
	case RegexCompile:
		return "RegexCompile"
	case EmptyExpression:
		return "EmptyExpression"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Association is the capability exposed by Object-valued entries, per spec
// section 9's Design Note re-architecting the original's reflection-like
// context object access as a small capability interface. Any caller-supplied
// type implementing Association may be stored as a Value of Kind Object
// without inheriting a framework type.
type Association interface {
	Get(property string) (Value, bool)
	Set(property string, v Value)
	Keys() []string
}

// Value is Shy's tagged union. Exactly one of the typed fields below is
// meaningful, selected by Kind.
type Value struct {
	Kind Kind

	i   int64
	r   float64
	s   string
	b   bool
	l   []Value
	obj Association
	fn  string

	errKind ErrorKind
	errMsg  string
}

// Constructors

func NewInteger(i int64) Value     { return Value{Kind: Integer, i: i} }
func NewRational(r float64) Value  { return Value{Kind: Rational, r: r} }
func NewString(s string) Value     { return Value{Kind: String, s: s} }
func NewBool(b bool) Value         { return Value{Kind: Bool, b: b} }
func NewList(vs ...Value) Value    { return Value{Kind: List, l: vs} }
func NewFunctionRef(name string) Value { return Value{Kind: FunctionRef, fn: name} }

// NullValue is the singleton absence-of-value.
var NullValue = Value{Kind: Null}

// NewObject wraps an Association capability as a Value.
func NewObject(a Association) Value { return Value{Kind: Object, obj: a} }

// NewError constructs a Value of Kind Error. Per spec section 7, runtime
// errors are values, never Go errors; this is the only constructor that
// should be used to signal a failed operation from within the evaluator.
func NewError(kind ErrorKind, msg string) Value {
	return Value{Kind: Error, errKind: kind, errMsg: msg}
}

// Accessors

func (v Value) Int() int64                { return v.i }
func (v Value) Float() float64             { return v.r }
func (v Value) Str() string                { return v.s }
func (v Value) Bool() bool                 { return v.b }
func (v Value) List() []Value              { return v.l }
func (v Value) Object() Association        { return v.obj }
func (v Value) FunctionName() string       { return v.fn }
func (v Value) ErrorKind() ErrorKind       { return v.errKind }
func (v Value) ErrorMessage() string       { return v.errMsg }

func (v Value) IsError() bool { return v.Kind == Error }
func (v Value) IsNull() bool  { return v.Kind == Null }

func (v Value) IsNumeric() bool { return v.Kind == Integer || v.Kind == Rational }

// AsFloat returns v's numeric value widened to float64, for use once
// promotion has already decided the result kind is Rational.
func (v Value) AsFloat() float64 {
	if v.Kind == Integer {
		return float64(v.i)
	}

	return v.r
}

// Truthy implements the "false-ish" test used by QuitIfFalse and voting
// function coercion, per spec sections 4.3 and 4.4.
func (v Value) Truthy() bool {
	switch v.Kind {
	case Bool:
		return v.b
	case Integer:
		return v.i != 0
	case Rational:
		return v.r != 0
	case Null, Error:
		return false
	case String:
		return v.s != ""
	case List:
		return len(v.l) != 0
	default:
		return true
	}
}

// String renders v the way the original implementation this spec was
// distilled from does: integers print without a decimal point, rationals
// always print with one (including for whole-number results), and NaN/Inf
// are display-only special cases.
func (v Value) String() string {
	switch v.Kind {
	case Integer:
		return strconv.FormatInt(v.i, 10)
	case Rational:
		if math.IsNaN(v.r) {
			return "NaN"
		}

		if math.IsInf(v.r, 1) {
			return "Inf"
		}

		if math.IsInf(v.r, -1) {
			return "-Inf"
		}

		s := strconv.FormatFloat(v.r, 'f', -1, 64)
		if !containsDot(s) {
			s += ".0"
		}

		return s
	case String:
		return v.s
	case Bool:
		return strconv.FormatBool(v.b)
	case Null:
		return "null"
	case Error:
		return fmt.Sprintf("Error(%s: %s)", v.errKind, v.errMsg)
	case FunctionRef:
		return "@" + v.fn
	case List:
		out := "["
		for i, e := range v.l {
			if i > 0 {
				out += ", "
			}

			out += e.String()
		}

		return out + "]"
	case Object:
		out := "{"
		for i, k := range v.obj.Keys() {
			if i > 0 {
				out += ", "
			}

			val, _ := v.obj.Get(k)
			out += k + ": " + val.String()
		}

		return out + "}"
	default:
		return "<invalid>"
	}
}

func containsDot(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == 'e' || s[i] == 'E' {
			return true
		}
	}

	return false
}

// Promote applies spec section 3's numeric promotion rule to a and b: any
// binary numeric op with at least one Rational operand yields Rational
// operands; two Integers stay Integer. Non-numeric inputs are returned
// unchanged (callers must separately reject them as TypeMismatch).
func Promote(a, b Value) (Value, Value) {
	if a.Kind == Integer && b.Kind == Integer {
		return a, b
	}

	if a.IsNumeric() && b.IsNumeric() {
		return NewRational(a.AsFloat()), NewRational(b.AsFloat())
	}

	return a, b
}
