package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/paulchernoch/shy/lang/parser"
)

// FormatNative writes the Expression's original source text to w,
// unchanged, so round-tripping through Compile and FormatNative is a
// no-op.
func (e *Expression) FormatNative(_ context.Context, w io.Writer) error {
	_, err := fmt.Fprintln(w, e.Source)

	return err
}

// FormatJSON writes the Expression's disassembled Instruction stream as
// JSON to w, for diagnostic inspection of what the parser produced.
func (e *Expression) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	rows := e.disassemble()

	if indent > 0 {
		data, err = json.MarshalIndent(rows, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(rows)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes the Expression's disassembled Instruction stream as
// YAML to w.
func (e *Expression) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, e.disassemble(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}

// disassemble renders each Instruction as a readable map, switching on
// Kind the way the teacher's formatValue switches on a node's Type.
func (e *Expression) disassemble() []map[string]any {
	rows := make([]map[string]any, len(e.Instructions))

	for i, ins := range e.Instructions {
		rows[i] = disassembleOne(ins)
	}

	return rows
}

func disassembleOne(ins parser.Instruction) map[string]any {
	row := map[string]any{"kind": instructionKindName(ins.Kind)}

	switch ins.Kind {
	case parser.PushLiteral:
		row["literal"] = ToJSON(ins.Literal)
	case parser.LoadVar, parser.StoreVar:
		row["path"] = ins.Path
	case parser.Call:
		row["name"] = ins.Name
		row["argc"] = ins.Argc
	case parser.Op:
		row["op"] = ins.Opcode.String()
		row["argc"] = ins.Argc
	}

	return row
}

func instructionKindName(k parser.InstructionKind) string {
	switch k {
	case parser.PushLiteral:
		return "push"
	case parser.LoadVar:
		return "load"
	case parser.StoreVar:
		return "store"
	case parser.Call:
		return "call"
	case parser.Op:
		return "op"
	case parser.QuitIfFalse:
		return "quit-if-false"
	case parser.PopStatement:
		return "pop-statement"
	default:
		return "invalid"
	}
}
