package cli

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/paulchernoch/shy/cli/cmd"
	"github.com/paulchernoch/shy/config"
	"github.com/paulchernoch/shy/pkg"
)

// CLI is the top-level command-line interface for shy.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Source []string `default:"-" help:"Rule source file(s) or '-' for stdin" name:"source" short:"s"`

	Fmt   cmd.Fmt   `cmd:""                    help:"Disassemble a compiled rule"`
	Cache cmd.Cache `cmd:""                    help:"Report ApproximateLRUCache occupancy for a batch of rules"`
	Eval  cmd.Eval  `cmd:"" default:"withargs" help:"Compile and execute a rule"`
}

// Run executes the shy CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	configFilePath := filepath.Join(pkg.ConfigDir(), config.FileName)

	cfg, err := config.Load(configFilePath)
	if err != nil {
		return err
	}

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
		"cacheCapacity":      strconv.Itoa(cfg.CacheCapacity),
		"logLevelDefault":    cfg.LogLevel.String(),
		"logFormatDefault":   cfg.LogFormat.String(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithSourceFiles(ctx, cli.Source)
	ctx = cmd.WithConfig(ctx, cfg)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
