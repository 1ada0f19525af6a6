// Package cli implements the shy command-line interface: compiling and
// executing rules, disassembling compiled programs, and reporting cache
// occupancy, plus the logging and profiling flags shared by every
// subcommand.
//
// # Usage
//
//	shy eval --source=rule.shy
//	shy fmt json --source=rule.shy
//	shy cache --source=rules.txt --capacity=512
//
// # Subcommands
//
//   - eval: compile a rule and execute it against an ExecutionContext,
//     optionally seeded with variables from a JSON context file.
//   - fmt: disassemble a compiled rule back to native text, JSON, or
//     YAML, without executing it.
//   - cache: compile a batch of rules (one per line) through a fresh
//     ApproximateLRUCache and report its resulting occupancy.
//
// Rule source is read from one or more --source files, or from stdin
// when --source is '-' or omitted.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o shy .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu,
//     goroutine, heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/shy/pprof)
//
// # Examples
//
//	# Debug logging with CPU profiling
//	shy eval --source=rule.shy --log-level=debug --pprof-mode=cpu
//
//	# Disassemble a rule as YAML
//	shy fmt yaml --source=rule.shy
package cli
