package lang

import (
	"math"
	"sync"

	"github.com/paulchernoch/shy/lang/parser"
	"github.com/paulchernoch/shy/lang/value"
)

// Expression is a compiled, immutable postfix program plus its originating
// source text, per spec section 3. It may be safely shared and executed
// concurrently against distinct Contexts; the only mutable state it carries
// is the lazily-compiled regex cell on OpMatch instructions (itself
// thread-safe, lang/parser.RegexCell) and the memoized variable-reference
// sets computed lazily by ReadVars/WriteVars.
type Expression struct {
	Source       string
	Instructions []parser.Instruction

	varsOnce  sync.Once
	readVars  []string
	writeVars []string
}

// ReadVars returns the sorted, deduplicated set of top-level variable
// names this Expression reads via LoadVar, computed once and memoized.
// Useful for a caller deciding which Context entries a cached Expression
// actually depends on before calling Exec.
func (e *Expression) ReadVars() []string {
	e.scanVarsOnce()

	return e.readVars
}

// WriteVars returns the sorted, deduplicated set of top-level variable
// names this Expression writes via StoreVar, computed once and memoized.
func (e *Expression) WriteVars() []string {
	e.scanVarsOnce()

	return e.writeVars
}

func (e *Expression) scanVarsOnce() {
	e.varsOnce.Do(func() {
		reads := map[string]struct{}{}
		writes := map[string]struct{}{}

		for _, ins := range e.Instructions {
			switch ins.Kind {
			case parser.LoadVar:
				if len(ins.Path) > 0 {
					reads[ins.Path[0]] = struct{}{}
				}
			case parser.StoreVar:
				if len(ins.Path) > 0 {
					writes[ins.Path[0]] = struct{}{}
				}
			}
		}

		e.readVars = sortedKeys(reads)
		e.writeVars = sortedKeys(writes)
	})
}

// Exec runs the Expression's postfix program against ctx, mutating ctx
// in-place for any StoreVar instructions that execute, per spec section
// 4.3. Exec never returns a Go error: all failure is reported as the
// returned Value being of Kind Error.
func (e *Expression) Exec(ctx *ExecutionContext) value.Value {
	stack := make([]value.Value, 0, 8)

	push := func(v value.Value) { stack = append(stack, v) }

	pop := func() value.Value {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		return v
	}

	for _, ins := range e.Instructions {
		switch ins.Kind {
		case parser.PushLiteral:
			push(ins.Literal)

		case parser.LoadVar:
			push(ctx.Load(ins.Path))

		case parser.StoreVar:
			v := pop()
			push(ctx.Store(ins.Path, v))

		case parser.Call:
			args := make([]value.Value, ins.Argc)
			for i := ins.Argc - 1; i >= 0; i-- {
				args[i] = pop()
			}

			push(callFunction(ctx, ins.Name, args))

		case parser.Op:
			result := applyOp(ctx, &ins, stack)
			stack = stack[:len(stack)-ins.Argc]
			push(result)

		case parser.QuitIfFalse:
			if !stack[len(stack)-1].Truthy() {
				return stack[len(stack)-1]
			}

		case parser.PopStatement:
			pop()
		}
	}

	if len(stack) == 0 {
		return errorValuef(value.EmptyExpression, "expression produced no value")
	}

	return stack[len(stack)-1]
}

// callFunction resolves name in ctx's function table and invokes it with args,
// enforcing arity per spec section 4.3.
func callFunction(ctx *ExecutionContext, name string, args []value.Value) value.Value {
	for _, a := range args {
		if a.IsError() {
			return a
		}
	}

	fn, ok := ctx.function(name)
	if !ok {
		return errorValuef(value.UnknownFunction, "unknown function %q", name)
	}

	if fn.Arity >= 0 && fn.Arity != len(args) {
		return errorValuef(value.ArityMismatch, "%q expects %d argument(s), got %d", name, fn.Arity, len(args))
	}

	return fn.Handler(args)
}

// applyOp returns the result of applying ins.Opcode to the top ins.Argc
// values of stack, per spec section 4.3's typed-operation table and
// section 3's numeric promotion lattice. stack is read but not truncated
// here; the caller truncates by ins.Argc after this returns.
func applyOp(ctx *ExecutionContext, ins *parser.Instruction, stack []value.Value) value.Value {
	if ins.Argc == 1 {
		return applyUnary(ctx, ins.Opcode, stack[len(stack)-1])
	}

	a, b := stack[len(stack)-2], stack[len(stack)-1]

	if a.IsError() {
		return a
	}

	if b.IsError() {
		return b
	}

	return applyBinary(ctx, ins.Opcode, a, b, ins.Regex)
}

func applyUnary(ctx *ExecutionContext, op parser.Opcode, a value.Value) value.Value {
	if a.IsError() {
		return a
	}

	switch op {
	case parser.OpNeg:
		if !a.IsNumeric() {
			return errorValuef(value.TypeMismatch, "'-' requires a numeric operand")
		}

		if a.Kind == value.Integer {
			return value.NewInteger(-a.Int())
		}

		return value.NewRational(-a.Float())

	case parser.OpPos:
		if !a.IsNumeric() {
			return errorValuef(value.TypeMismatch, "'+' requires a numeric operand")
		}

		return a

	case parser.OpNot:
		return value.NewBool(!a.Truthy())

	case parser.OpSqrt:
		if !a.IsNumeric() {
			return errorValuef(value.TypeMismatch, "'√' requires a numeric operand")
		}

		return value.NewRational(math.Sqrt(a.AsFloat()))

	case parser.OpExp:
		if !a.IsNumeric() {
			return errorValuef(value.TypeMismatch, "exp requires a numeric operand")
		}

		return value.NewRational(math.Exp(a.AsFloat()))

	case parser.OpFactorial:
		if a.Kind != value.Integer {
			return errorValuef(value.TypeMismatch, "'!' requires an integer operand")
		}

		return factorial(ctx, a.Int())

	default:
		return errorValuef(value.InternalInvariant, "unhandled unary opcode %s", op)
	}
}

func applyBinary(ctx *ExecutionContext, op parser.Opcode, a, b value.Value, regex *parser.RegexCell) value.Value {
	switch op {
	case parser.OpMatch:
		if a.Kind != value.String || b.Kind != value.String {
			return errorValuef(value.TypeMismatch, "'~' requires string operands")
		}

		re, err := regex.Compile(b.Str())
		if err != nil {
			return errorValuef(value.RegexCompile, "invalid regex %q: %s", b.Str(), err)
		}

		return value.NewBool(re.MatchString(a.Str()))

	case parser.OpAnd:
		return value.NewBool(a.Truthy() && b.Truthy())

	case parser.OpOr:
		return value.NewBool(a.Truthy() || b.Truthy())

	case parser.OpEqual:
		return value.NewBool(valuesEqual(a, b))

	case parser.OpNotEqual:
		return value.NewBool(!valuesEqual(a, b))

	case parser.OpLess, parser.OpLessEq, parser.OpGreater, parser.OpGreaterEq:
		return compareNumeric(op, a, b)

	case parser.OpAdd, parser.OpSub, parser.OpMul, parser.OpMod, parser.OpPower:
		return arithmetic(ctx, op, a, b)

	case parser.OpDiv:
		return divide(a, b)

	case parser.OpAssign:
		return errorValuef(value.InternalInvariant, "OpAssign is never emitted as an Op instruction")

	default:
		return errorValuef(value.InternalInvariant, "unhandled binary opcode %s", op)
	}
}

func valuesEqual(a, b value.Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		pa, pb := value.Promote(a, b)

		return pa.AsFloat() == pb.AsFloat()
	}

	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case value.String:
		return a.Str() == b.Str()
	case value.Bool:
		return a.Bool() == b.Bool()
	case value.Null:
		return true
	case value.List:
		al, bl := a.List(), b.List()
		if len(al) != len(bl) {
			return false
		}

		for i := range al {
			if !valuesEqual(al[i], bl[i]) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

func compareNumeric(op parser.Opcode, a, b value.Value) value.Value {
	if !a.IsNumeric() || !b.IsNumeric() {
		return errorValuef(value.TypeMismatch, "comparison requires numeric operands")
	}

	pa, pb := value.Promote(a, b)
	x, y := pa.AsFloat(), pb.AsFloat()

	switch op {
	case parser.OpLess:
		return value.NewBool(x < y)
	case parser.OpLessEq:
		return value.NewBool(x <= y)
	case parser.OpGreater:
		return value.NewBool(x > y)
	case parser.OpGreaterEq:
		return value.NewBool(x >= y)
	default:
		return errorValuef(value.InternalInvariant, "unhandled comparison opcode %s", op)
	}
}

// arithmetic applies +, -, *, %, ^ following the promotion lattice:
// two Integers stay Integer unless the Integer path overflows, in which
// case the result promotes to Rational (spec section 4.3).
func arithmetic(ctx *ExecutionContext, op parser.Opcode, a, b value.Value) value.Value {
	if !a.IsNumeric() || !b.IsNumeric() {
		return errorValuef(value.TypeMismatch, "arithmetic requires numeric operands")
	}

	if a.Kind == value.Integer && b.Kind == value.Integer {
		if v, ok := integerArithmetic(op, a.Int(), b.Int()); ok {
			return v
		}

		ctx.traceOverflow(op.String(), a.Int(), b.Int())
	}

	pa, pb := value.NewRational(a.AsFloat()), value.NewRational(b.AsFloat())

	return value.NewRational(rationalArithmetic(op, pa.Float(), pb.Float()))
}

// integerArithmetic computes op over Int64 operands, reporting ok=false on
// overflow so the caller can fall back to the Rational path.
func integerArithmetic(op parser.Opcode, x, y int64) (value.Value, bool) {
	switch op {
	case parser.OpAdd:
		sum := x + y
		if (y > 0 && sum < x) || (y < 0 && sum > x) {
			return value.Value{}, false
		}

		return value.NewInteger(sum), true

	case parser.OpSub:
		diff := x - y
		if (y < 0 && diff < x) || (y > 0 && diff > x) {
			return value.Value{}, false
		}

		return value.NewInteger(diff), true

	case parser.OpMul:
		if x == 0 || y == 0 {
			return value.NewInteger(0), true
		}

		prod := x * y
		if prod/y != x {
			return value.Value{}, false
		}

		return value.NewInteger(prod), true

	case parser.OpMod:
		if y == 0 {
			return value.Value{}, false
		}

		return value.NewInteger(x % y), true

	case parser.OpPower:
		return integerPower(x, y)

	default:
		return value.Value{}, false
	}
}

// integerPower computes x**y for y >= 0 with overflow detection; negative
// exponents fall back to the Rational path.
func integerPower(x, y int64) (value.Value, bool) {
	if y < 0 {
		return value.Value{}, false
	}

	result := int64(1)

	for i := int64(0); i < y; i++ {
		next := result * x
		if x != 0 && next/x != result {
			return value.Value{}, false
		}

		result = next
	}

	return value.NewInteger(result), true
}

func rationalArithmetic(op parser.Opcode, x, y float64) float64 {
	switch op {
	case parser.OpAdd:
		return x + y
	case parser.OpSub:
		return x - y
	case parser.OpMul:
		return x * y
	case parser.OpMod:
		return math.Mod(x, y)
	case parser.OpPower:
		return math.Pow(x, y)
	default:
		return math.NaN()
	}
}

// divide implements spec section 3's division special case: two Integers
// that divide evenly stay Integer; otherwise (including any Rational
// operand) the result promotes to Rational. Division by zero is always
// Error(DivideByZero), never Inf/NaN.
func divide(a, b value.Value) value.Value {
	if !a.IsNumeric() || !b.IsNumeric() {
		return errorValuef(value.TypeMismatch, "'/' requires numeric operands")
	}

	if b.AsFloat() == 0 {
		return errorValuef(value.DivideByZero, "division by zero")
	}

	if a.Kind == value.Integer && b.Kind == value.Integer {
		x, y := a.Int(), b.Int()
		if x%y == 0 {
			return value.NewInteger(x / y)
		}
	}

	return value.NewRational(a.AsFloat() / b.AsFloat())
}

// factorial computes n! for a non-negative Integer n, promoting to
// Rational on overflow per spec section 4.3.
func factorial(ctx *ExecutionContext, n int64) value.Value {
	if n < 0 {
		return errorValuef(value.TypeMismatch, "'!' requires a non-negative integer")
	}

	result := int64(1)

	for i := int64(2); i <= n; i++ {
		next := result * i
		if next/i != result {
			ctx.traceOverflow("!", n, i)

			return factorialRational(n)
		}

		result = next
	}

	return value.NewInteger(result)
}

func factorialRational(n int64) value.Value {
	result := 1.0
	for i := int64(2); i <= n; i++ {
		result *= float64(i)
	}

	return value.NewRational(result)
}
