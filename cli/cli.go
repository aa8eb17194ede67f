package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/aconst/cli/cmd"
	"github.com/ardnew/aconst/lang"
	"github.com/ardnew/aconst/log"
	"github.com/ardnew/aconst/named"
	"github.com/ardnew/aconst/pkg"
)

// CLI is the top-level command-line interface for aconst.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Source []string `help:"Manifest file(s) or '-' for stdin" name:"source" short:"s" type:"existingfile"`
	Order  string   `default:"declared" enum:"declared,value" help:"Constant iteration order (${enum})"`

	List    cmd.List    `cmd:"" default:"withargs" help:"List namespaces or the constants of one"`
	Lookup  cmd.Lookup  `cmd:""                    help:"Print the value of a named constant"`
	Resolve cmd.Resolve `cmd:""                    help:"Find the constant for a value or name"`
	Eval    cmd.Eval    `cmd:""                    help:"Evaluate an expression over the constants"`
	Fmt     cmd.Fmt     `cmd:""                    help:"Reformat manifests as YAML or JSON"`
	Repl    cmd.Repl    `cmd:""                    help:"Evaluate expressions interactively"`
	Init    cmd.Init    `cmd:""                    help:"Initialize configuration file"`
}

// Run executes the aconst CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, nil, args...)
}

// run is Run with optional extra kong options, such as output writers.
func run(
	ctx context.Context,
	exit func(code int),
	extra []kong.Option,
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(cmd.ConfigIdentifier + ".yaml")

	vars := kong.Vars{
		"version":            pkg.Name + " " + pkg.Version,
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
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

	opts := []kong.Option{
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
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve(ctx, cmd.ConfigIdentifier), configFilePath),
		vars,
	}

	parser, err := kong.New(&cli, append(opts, extra...)...)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSourceFiles(ctx, cli.Source)
	ctx = cmd.WithParseOptions(ctx,
		lang.WithOrder(parseOrder(cli.Order)),
		lang.WithLogger(log.Default()),
	)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}

func parseOrder(s string) named.Order {
	if s == named.OrderValue.String() {
		return named.OrderValue
	}

	return named.OrderDeclared
}
