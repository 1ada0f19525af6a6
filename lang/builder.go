package lang

import (
	"github.com/paulchernoch/shy/lang/parser"
	"github.com/paulchernoch/shy/lang/value"
)

// Builder provides a programmatic API for constructing a compiled
// Expression without parsing source text, mirroring the shape of the
// teacher's AST Builder but emitting postfix Instructions instead of tree
// nodes. Useful for tests that want to exercise the evaluator in isolation
// from the lexer/parser, and for generating Expressions from a non-text
// source (e.g. a saved rule definition).
//
// Example:
//
//	b := lang.NewBuilder("r = 5; area = pi * r^2")
//	b.PushInt(5).Store("r")
//	b.PopStatement()
//	b.Load("pi").Load("r").Load("r").BinaryOp(parser.OpMul).BinaryOp(parser.OpMul).Store("area")
//	expr := b.Build()
type Builder struct {
	source string
	instrs []parser.Instruction
}

// NewBuilder creates a Builder. source is purely descriptive: it becomes
// the resulting Expression's Source field (useful for error messages and
// disassembly) but is never parsed.
func NewBuilder(source string) *Builder {
	return &Builder{source: source}
}

// PushInt emits PushLiteral(Integer(i)).
func (b *Builder) PushInt(i int64) *Builder {
	return b.push(value.NewInteger(i))
}

// PushFloat emits PushLiteral(Rational(f)).
func (b *Builder) PushFloat(f float64) *Builder {
	return b.push(value.NewRational(f))
}

// PushString emits PushLiteral(String(s)).
func (b *Builder) PushString(s string) *Builder {
	return b.push(value.NewString(s))
}

// PushBool emits PushLiteral(Bool(v)).
func (b *Builder) PushBool(v bool) *Builder {
	return b.push(value.NewBool(v))
}

// PushNull emits PushLiteral(Null).
func (b *Builder) PushNull() *Builder {
	return b.push(value.NullValue)
}

func (b *Builder) push(v value.Value) *Builder {
	b.emit(parser.Instruction{Kind: parser.PushLiteral, Literal: v})

	return b
}

// Load emits LoadVar(path).
func (b *Builder) Load(path ...string) *Builder {
	b.emit(parser.Instruction{Kind: parser.LoadVar, Path: path})

	return b
}

// Store emits StoreVar(path).
func (b *Builder) Store(path ...string) *Builder {
	b.emit(parser.Instruction{Kind: parser.StoreVar, Path: path})

	return b
}

// Call emits Call(name, argc).
func (b *Builder) Call(name string, argc int) *Builder {
	b.emit(parser.Instruction{Kind: parser.Call, Name: name, Argc: argc})

	return b
}

// UnaryOp emits a unary Op instruction.
func (b *Builder) UnaryOp(op parser.Opcode) *Builder {
	b.emit(parser.Instruction{Kind: parser.Op, Opcode: op, Argc: 1})

	return b
}

// BinaryOp emits a binary Op instruction. A match (~) instruction gets a
// fresh RegexCell, matching what the parser does for any OpMatch it emits.
func (b *Builder) BinaryOp(op parser.Opcode) *Builder {
	ins := parser.Instruction{Kind: parser.Op, Opcode: op, Argc: 2}
	if op == parser.OpMatch {
		ins.Regex = &parser.RegexCell{}
	}

	b.emit(ins)

	return b
}

// QuitIfFalse emits QuitIfFalse.
func (b *Builder) QuitIfFalse() *Builder {
	b.emit(parser.Instruction{Kind: parser.QuitIfFalse})

	return b
}

// PopStatement emits PopStatement.
func (b *Builder) PopStatement() *Builder {
	b.emit(parser.Instruction{Kind: parser.PopStatement})

	return b
}

func (b *Builder) emit(ins parser.Instruction) {
	b.instrs = append(b.instrs, ins)
}

// Build returns the assembled Expression.
func (b *Builder) Build() *Expression {
	return &Expression{Source: b.source, Instructions: append([]parser.Instruction(nil), b.instrs...)}
}
