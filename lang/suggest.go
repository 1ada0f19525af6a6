package lang

import "github.com/sahilm/fuzzy"

// maxSuggestions bounds how many "did you mean" candidates Suggest
// returns, keeping the Error message short for IoT-edge log lines.
const maxSuggestions = 3

// Suggest returns up to maxSuggestions candidates from names that best
// fuzzy-match target, ranked by fuzzy.Find's score, for use when
// attaching a "did you mean" hint to an UnknownVariable/UnknownFunction
// error message.
func Suggest(target string, names []string) []string {
	if target == "" || len(names) == 0 {
		return nil
	}

	matches := fuzzy.Find(target, names)

	n := len(matches)
	if n > maxSuggestions {
		n = maxSuggestions
	}

	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = matches[i].Str
	}

	return out
}

// SuggestVariable returns "did you mean" candidates for an unknown
// top-level variable name, drawn from ctx's current variable names.
func (ctx *ExecutionContext) SuggestVariable(name string) []string {
	return Suggest(name, ctx.Keys())
}

// SuggestFunction returns "did you mean" candidates for an unknown
// function name, drawn from ctx's registered function names.
func (ctx *ExecutionContext) SuggestFunction(name string) []string {
	ctx.mu.Lock()
	names := sortedKeys(ctx.funcs)
	ctx.mu.Unlock()

	return Suggest(name, names)
}
