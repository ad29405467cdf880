// Package main provides the CLI entrypoint for argbind.
//
// argbind binds a list of Starlark expressions against a signature from a
// YAML signature file, the same way a native builtin declared with that
// signature would bind its call arguments, and prints what each
// destination received:
//
//	argbind -signatures sigs.yaml -func repeat -- '"ab"' '3.7' 'struct(sep="-")'
//
// Expressions may use struct(...) and handle(tag, payload), the latter
// producing a native handle carrying payload under one of the tags the
// signature mentions.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"

	"argbind/args"
	"argbind/dyn"
	"argbind/internal/match"
	"argbind/internal/signature"
	"argbind/options"
	"argbind/starengine"
)

func main() {
	var (
		sigPath  = flag.String("signatures", "", "signature file (YAML)")
		funcName = flag.String("func", "", "name of the signature to bind against")
		dump     = flag.Bool("dump", false, "dump the bound values with their Go types")
		logLevel = slog.LevelWarn
	)
	flag.TextVar(&logLevel, "log-level", &logLevel, "set log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: argbind -signatures <file> -func <name> [-dump] [-log-level <level>] -- <expr>...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *sigPath == "" || *funcName == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts := slog.HandlerOptions{Level: &logLevel}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &opts))
	slog.SetDefault(logger)

	if err := run(os.Stdout, logger, *sigPath, *funcName, *dump, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger, sigPath, funcName string, dump bool, exprs []string) error {
	f, err := signature.LoadFile(sigPath)
	if err != nil {
		return err
	}

	diags := signature.Validate(f)
	for _, d := range diags.Warnings {
		logger.Warn("signature file", slog.String("diagnostic", d.String()))
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("invalid signature file %s: %w", sigPath, err)
	}

	sig, err := f.Lookup(funcName)
	if err != nil {
		return err
	}

	tags := make(map[string]*dyn.HandleTag)
	collectTags(sig.Args, tags)

	frame, err := sig.Compile(tags)
	if err != nil {
		return err
	}

	binder := args.NewBinder(starengine.New(), args.WithLogger(logger))

	argv, err := evalAll(binder, tags, exprs)
	if err != nil {
		return err
	}

	logger.Debug("binding", slog.String("signature", frame.Name()), slog.Int("args", len(argv)))

	if err := binder.Bind(argv, frame.Descriptors()...); err != nil {
		return err
	}

	for _, v := range frame.Values() {
		fmt.Fprintln(w, v)
	}

	if dump {
		cfg := spew.ConfigState{Indent: "  ", DisableMethods: true}
		cfg.Fdump(w, frame.Values())
	}

	return nil
}

func collectTags(list []signature.Arg, tags map[string]*dyn.HandleTag) {
	for _, a := range list {
		if a.Kind == signature.KindHandle {
			if _, ok := tags[a.Tag]; !ok {
				tags[a.Tag] = dyn.NewHandleTag(a.Tag)
			}
		}

		collectTags(a.Properties, tags)
	}
}

func evalAll(binder *args.Binder, tags map[string]*dyn.HandleTag, exprs []string) ([]dyn.Value, error) {
	env := starlark.StringDict{
		"struct": starlark.NewBuiltin("struct", starlarkstruct.Make),
		"handle": handleBuiltin(binder, tags),
	}

	thread := &starlark.Thread{Name: "argbind"}
	opts := &syntax.FileOptions{Set: true}

	argv := make([]dyn.Value, len(exprs))
	for i, expr := range exprs {
		v, err := starlark.EvalOptions(opts, thread, fmt.Sprintf("<arg %d>", i), expr, env)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}

		argv[i] = v
	}

	return argv, nil
}

// handleBuiltin implements handle(tag, payload=None).
func handleBuiltin(binder *args.Binder, tags map[string]*dyn.HandleTag) *starlark.Builtin {
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}

	return starengine.NewBuiltin("handle", binder, func(_ *starlark.Thread, bind starengine.BindFunc) (starlark.Value, error) {
		var (
			name    string
			payload dyn.Value
		)

		err := bind(
			args.Text(&name, options.NoCoerce, options.Required),
			args.CustomFunc(&payload, args.Extra{}, func(c *args.Cursor, dst *dyn.Value, _ args.Extra) error {
				*dst = c.Pop()
				return nil
			}),
		)
		if err != nil {
			return nil, err
		}

		tag, ok := tags[name]
		if !ok {
			if s := match.Suggest(name, names); s != "" {
				return nil, fmt.Errorf("unknown tag %q, did you mean %q?", name, s)
			}

			return nil, fmt.Errorf("unknown tag %q", name)
		}

		return starengine.NewHandle(tag, payload), nil
	})
}
