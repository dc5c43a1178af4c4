package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/arith/ast"
	"github.com/slowlang/arith/parse"
)

func main() {
	parseCmd := &cli.Command{
		Name:        "parse",
		Description: "parse expressions given as arguments",
		Action:      parseAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("partial", false, "print leftover text instead of failing on it"),
			cli.NewFlag("dump", false, "print parsed struct"),
		},
	}

	fileCmd := &cli.Command{
		Name:        "file",
		Description: "parse files with one expression per line",
		Action:      fileAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("dump", false, "print parsed struct"),
		},
	}

	app := &cli.Command{
		Name:        "arith",
		Description: "arith parses <number><operator><number> expressions",
		Before:      before,
		Flags: []*cli.Flag{
			cli.NewFlag("log", "stderr", "log output file (or stderr)"),
			cli.NewFlag("verbosity,v", "", "logger verbosity topics"),
			cli.HelpFlag,
		},
		Commands: []*cli.Command{
			parseCmd,
			fileCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func before(c *cli.Command) (err error) {
	var w io.Writer = os.Stderr

	if q := c.String("log"); q != "" && q != "stderr" {
		f, err := os.Create(q)
		if err != nil {
			return errors.Wrap(err, "open log file")
		}

		w = f
	}

	tlog.DefaultLogger = tlog.New(tlog.NewConsoleWriter(w, tlog.LstdFlags))

	tlog.SetVerbosity(c.String("verbosity"))

	return nil
}

func parseAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		if c.Bool("partial") {
			rest, x, err := parse.ParsePartial(ctx, a)
			if err != nil {
				return errors.Wrap(err, "parse %q", a)
			}

			printExpr(c, x)

			if rest != "" {
				fmt.Printf("rest: %q\n", rest)
			}

			continue
		}

		x, err := parse.Parse(ctx, a)
		if err != nil {
			return errors.Wrap(err, "parse %q", a)
		}

		printExpr(c, x)
	}

	return nil
}

func fileAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		res, err := parse.ParseFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		for _, x := range res {
			printExpr(c, x)
		}
	}

	return nil
}

func printExpr(c *cli.Command, x ast.Expr) {
	if c.Bool("dump") {
		fmt.Printf("left=%d op=%v right=%d\n", x.Left, x.Op, x.Right)
		return
	}

	fmt.Printf("%v\n", x)
}
