package lang

import (
	"log/slog"
	"maps"
	"math"
	"sync"

	"github.com/paulchernoch/shy/lang/value"
	"github.com/paulchernoch/shy/log"
)

// Function is a handler registered in a Context's function table: it
// receives the already-evaluated arguments and returns a result Value.
// Arity enforcement happens before Function is invoked (spec section 4.3).
type Function struct {
	Arity   int // -1 means variadic
	Handler func(args []value.Value) value.Value
}

// ExecutionContext is a mutable name-to-value map with nestable
// property-object entries and a bound function table, per spec section
// 4.4. Keys are unique; insertion order is preserved for deterministic
// dumping even though semantics never depend on it (spec section 3).
type ExecutionContext struct {
	mu     sync.Mutex
	order  []string
	vars   map[string]value.Value
	funcs  map[string]Function
	logger log.Logger
}

// NewExecutionContext returns a Context pre-populated with the standard
// constants and functions of spec section 4.4/6. Defaults are copied into
// the new Context rather than shared by reference (spec section 5), so
// callers cannot mutate global defaults through it.
func NewExecutionContext() *ExecutionContext {
	ctx := &ExecutionContext{
		vars:  maps.Clone(standardVariables()),
		funcs: maps.Clone(standardFunctions()),
	}

	ctx.order = sortedKeys(ctx.vars)

	return ctx
}

// NewBareExecutionContext returns a Context with no standard constants or
// functions pre-populated, for deployments that disable the standard
// library entirely (spec section 6's functions become plain UnknownFunction
// errors until the caller registers its own Function table).
func NewBareExecutionContext() *ExecutionContext {
	return &ExecutionContext{
		vars:  make(map[string]value.Value),
		funcs: make(map[string]Function),
	}
}

// Load resolves path left-to-right: the first segment names a Context
// variable; remaining segments navigate via the Association capability.
// Returns a Value of Kind Error(UnknownVariable) if any segment is
// missing, without mutating the Context (spec section 4.3).
func (ctx *ExecutionContext) Load(path []string) value.Value {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	return ctx.load(path)
}

func (ctx *ExecutionContext) load(path []string) value.Value {
	if len(path) == 0 {
		return errorValuef(value.InternalInvariant, "empty variable path")
	}

	v, ok := ctx.vars[path[0]]
	if !ok {
		return errorValuef(value.UnknownVariable, "unknown variable %q", path[0])
	}

	for _, seg := range path[1:] {
		if v.Kind != value.Object {
			return errorValuef(value.NotAnObject, "%q is not an object", seg)
		}

		next, ok := v.Object().Get(seg)
		if !ok {
			return errorValuef(value.UnknownVariable, "unknown property %q", seg)
		}

		v = next
	}

	return v
}

// Store navigates path, auto-creating intermediate Object entries for
// missing segments, and overwrites the terminal segment. Per spec section
// 4.4, an existing non-Object intermediate segment is an Error(NotAnObject)
// rather than being overwritten.
func (ctx *ExecutionContext) Store(path []string, v value.Value) value.Value {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	return ctx.store(path, v)
}

func (ctx *ExecutionContext) store(path []string, v value.Value) value.Value {
	if len(path) == 0 {
		return errorValuef(value.InternalInvariant, "empty variable path")
	}

	if len(path) == 1 {
		if _, exists := ctx.vars[path[0]]; !exists {
			ctx.order = append(ctx.order, path[0])
		}

		ctx.vars[path[0]] = v

		return v
	}

	root, ok := ctx.vars[path[0]]
	if !ok {
		root = value.NewObject(newMapAssociation())
		ctx.vars[path[0]] = root
		ctx.order = append(ctx.order, path[0])
	}

	if root.Kind != value.Object {
		return errorValuef(value.NotAnObject, "%q is not an object", path[0])
	}

	assoc, err := storeAlongPath(root.Object(), path[1:], v)
	if err.IsError() {
		return err
	}

	_ = assoc

	return v
}

// storeAlongPath recursively auto-vivifies intermediate segments of path
// beneath assoc, per the original implementation's execution_context.rs
// policy referenced in SPEC_FULL.md's SUPPLEMENTED FEATURES.
func storeAlongPath(assoc value.Association, path []string, v value.Value) (value.Association, value.Value) {
	if len(path) == 1 {
		assoc.Set(path[0], v)

		return assoc, value.Value{}
	}

	child, ok := assoc.Get(path[0])
	if !ok {
		child = value.NewObject(newMapAssociation())
		assoc.Set(path[0], child)
	}

	if child.Kind != value.Object {
		return nil, errorValuef(value.NotAnObject, "%q is not an object", path[0])
	}

	return storeAlongPath(child.Object(), path[1:], v)
}

// RegisterFunction adds or replaces a function in the Context's function
// table.
func (ctx *ExecutionContext) RegisterFunction(name string, fn Function) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	ctx.funcs[name] = fn
}

// function looks up name in the Context's function table, falling back to
// the standard functions if not found locally (they're already cloned in
// at construction, so this fallback is really just "not overridden").
func (ctx *ExecutionContext) function(name string) (Function, bool) {
	fn, ok := ctx.funcs[name]

	return fn, ok
}

// SetLogger attaches a Logger that Exec uses to trace non-error runtime
// events, such as the Integer-overflow-to-Rational promotion decided in
// SPEC_FULL.md's OPEN QUESTION DECISIONS. The zero value Logger is a safe
// no-op, so SetLogger is optional.
func (ctx *ExecutionContext) SetLogger(l log.Logger) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	ctx.logger = l
}

// traceOverflow emits a Trace-level event noting an Integer arithmetic
// result promoted to Rational on overflow, per spec section 4.3 and
// SPEC_FULL.md's decision to signal this via logging rather than an
// Overflow error kind. Unlocked like function(), since the logger is
// expected to be set once before an Expression is handed to Exec.
func (ctx *ExecutionContext) traceOverflow(op string, x, y int64) {
	ctx.logger.Trace("integer overflow promoted to rational",
		slog.String("op", op), slog.Int64("x", x), slog.Int64("y", y))
}

// Keys returns the Context's top-level variable names in insertion order,
// for deterministic dumping (spec section 3).
func (ctx *ExecutionContext) Keys() []string {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	out := make([]string, len(ctx.order))
	copy(out, ctx.order)

	return out
}

// mapAssociation is the built-in Association implementation backing
// auto-vivified Objects and caller-supplied map-shaped data, implementing
// the minimal get/set/keys capability of spec section 9's Design Note.
type mapAssociation struct {
	order []string
	data  map[string]value.Value
}

func newMapAssociation() *mapAssociation {
	return &mapAssociation{data: make(map[string]value.Value)}
}

// NewObjectFromMap builds a Value of Kind Object from a plain map,
// preserving the given key order (or sorted order if keys is nil).
func NewObjectFromMap(m map[string]value.Value, keys []string) value.Value {
	assoc := newMapAssociation()
	if keys == nil {
		keys = sortedKeys(m)
	}

	for _, k := range keys {
		assoc.Set(k, m[k])
	}

	return value.NewObject(assoc)
}

func (m *mapAssociation) Get(property string) (value.Value, bool) {
	v, ok := m.data[property]

	return v, ok
}

func (m *mapAssociation) Set(property string, v value.Value) {
	if _, exists := m.data[property]; !exists {
		m.order = append(m.order, property)
	}

	m.data[property] = v
}

func (m *mapAssociation) Keys() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)

	return out
}

const (
	piValue  = math.Pi
	eValue   = math.E
	phiValue = 1.618033988749895
)

// standardVariables returns the constants every default Context must
// contain per spec section 4.4/6, including the Greek-letter aliases
// (π, φ) the lexer already tokenizes as identifiers.
func standardVariables() map[string]value.Value {
	return map[string]value.Value{
		"pi":  value.NewRational(piValue),
		"PI":  value.NewRational(piValue),
		"π":   value.NewRational(piValue),
		"e":   value.NewRational(eValue),
		"phi": value.NewRational(phiValue),
		"PHI": value.NewRational(phiValue),
		"φ":   value.NewRational(phiValue),
	}
}

// standardFunctions returns the function table every default Context must
// contain per spec section 4.4/6: trig, exp/ln/log10/sqrt/abs/min/max/
// floor/ceil/if, and the voting functions.
func standardFunctions() map[string]Function {
	unary := func(f func(float64) float64) Function {
		return Function{Arity: 1, Handler: func(args []value.Value) value.Value {
			if !args[0].IsNumeric() {
				return errorValuef(value.TypeMismatch, "expected numeric argument")
			}

			return value.NewRational(f(args[0].AsFloat()))
		}}
	}

	funcs := map[string]Function{
		"sin":  unary(math.Sin),
		"cos":  unary(math.Cos),
		"tan":  unary(math.Tan),
		"asin": unary(math.Asin),
		"acos": unary(math.Acos),
		"atan": unary(math.Atan),
		"exp":  unary(math.Exp),
		"ln":   unary(math.Log),
		"log10": unary(math.Log10),
		"sqrt": unary(math.Sqrt),
		"abs": {Arity: 1, Handler: func(args []value.Value) value.Value {
			if args[0].Kind == value.Integer {
				v := args[0].Int()
				if v < 0 {
					v = -v
				}

				return value.NewInteger(v)
			}

			if !args[0].IsNumeric() {
				return errorValuef(value.TypeMismatch, "expected numeric argument")
			}

			return value.NewRational(math.Abs(args[0].AsFloat()))
		}},
		"floor": unary(math.Floor),
		"ceil":  unary(math.Ceil),
		"min": {Arity: -1, Handler: func(args []value.Value) value.Value {
			return reduceNumeric(args, func(a, b float64) bool { return a < b })
		}},
		"max": {Arity: -1, Handler: func(args []value.Value) value.Value {
			return reduceNumeric(args, func(a, b float64) bool { return a > b })
		}},
		"if": {Arity: 3, Handler: func(args []value.Value) value.Value {
			if args[0].IsError() {
				return args[0]
			}

			if args[0].Truthy() {
				return args[1]
			}

			return args[2]
		}},
	}

	for name, threshold := range votingThresholds {
		funcs[name] = Function{Arity: -1, Handler: makeVotingHandler(threshold)}
	}

	return funcs
}

// reduceNumeric picks the extreme element of args under less(a,b), erroring
// on non-numeric input or an empty argument list. Integer-only inputs stay
// Integer; any Rational input promotes the result, per spec section 3.
func reduceNumeric(args []value.Value, less func(a, b float64) bool) value.Value {
	if len(args) == 0 {
		return errorValuef(value.ArityMismatch, "expected at least one argument")
	}

	best := args[0]
	allInt := best.Kind == value.Integer

	for _, a := range args {
		if !a.IsNumeric() {
			return errorValuef(value.TypeMismatch, "expected numeric argument")
		}

		if a.Kind != value.Integer {
			allInt = false
		}

		if less(a.AsFloat(), best.AsFloat()) {
			best = a
		}
	}

	if allInt {
		return best
	}

	return value.NewRational(best.AsFloat())
}
