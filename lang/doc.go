// Package lang implements Shy, a rules-engine expression language: an
// infix mini-language compiled through a pushdown lexer and a
// Shunting-Yard parser into a postfix Instruction stream, then executed
// against a caller-supplied ExecutionContext.
//
// # Philosophy
//
// A Shy expression is a sequence of ';'-separated statements. Each
// statement is an assignment, a bare expression kept only for its value,
// or a guard of the form `condition ?` that halts the whole expression
// (not just the statement) the moment condition is false-ish. Only the
// final statement's value survives as the expression's result.
//
// # Grammar
//
// Informal EBNF:
//
//	Program     → Statement (';' Statement)*
//	Statement   → Expr ('?')?
//	Expr        → Assign | Or
//	Assign      → Path AssignOp Expr
//	AssignOp    → '=' | '+=' | '-=' | '*=' | '/=' | '%=' | '&&=' | '||='
//	Or          → And ('||' And)*
//	And         → Equality ('&&' Equality)*
//	Equality    → Relational (('==' | '!=') Relational)*
//	Relational  → Match (('<' | '<=' | '>' | '>=') Match)*
//	Match       → Additive ('~' Additive)*
//	Additive    → Multiplicative (('+' | '-') Multiplicative)*
//	Multiplicative → Power (('*' | '/' | '%') Power)*
//	Power       → Unary ('^' Power)?
//	Unary       → ('-' | '+' | '!' | '√')? Postfix
//	Postfix     → Operand ('!' | Superscript)*
//	Operand     → Literal | Call | Path | '(' Expr ')'
//	Call        → FunctionName '(' (Expr (',' Expr)*)? ')'
//	Path        → Identifier ('.' Identifier)*
//
// # Example
//
//	r = 5; area = π * r^2
//	distance = √((x1-x2)^2 + (y1-y2)^2)
//	result = well.depth > 1500
//	applicable = false?; side = 1
//	majority(true, false, true)
//
// # Pipeline
//
// Compile tokenizes and parses source into an immutable Expression.
// Expression.Exec runs the postfix program against an ExecutionContext,
// mutating it in place for any assignments that execute. Cache wraps
// Compile with bounded, approximate-LRU memoization keyed on source text,
// since parsing dominates the cost of repeatedly evaluating the same small
// rule against many contexts.
package lang
