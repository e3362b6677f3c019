/*
sgf is a console utility for SGF (Smart Game Format) game records.
Usage is

	sgf check <file> ...
	sgf fmt [-w] <file> ...
	sgf info <file> ...

check parses every file and logs one line per file; exit status is non-zero
if any file fails.

fmt rewrites files to canonical (whitespace-free) form, to standard output or
in place with -w.

info prints game metadata from every record's root node.

Files with a .gz suffix are read (and written by fmt -w) gzip-compressed.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/y-ich/sgf"
)

func main() {
	app := &cli.App{
		Name:  "sgf",
		Usage: "check, reformat, and inspect SGF game records",
		Commands: []*cli.Command{
			checkCommand(),
			fmtCommand(),
			infoCommand(),
		},
	}

	if e := app.Run(os.Args); e != nil {
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(1)
	}
}

func newLogger() (*zap.SugaredLogger, error) {
	logger, e := zap.NewProduction()
	if e != nil {
		return nil, e
	}
	return logger.Sugar(), nil
}

func readFile(name string) ([]byte, error) {
	f, e := os.Open(name)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(name, ".gz") {
		zr, e := gzip.NewReader(f)
		if e != nil {
			return nil, e
		}
		defer zr.Close()
		r = zr
	}
	return io.ReadAll(r)
}

func writeFile(name string, content []byte) error {
	if !strings.HasSuffix(name, ".gz") {
		return os.WriteFile(name, content, 0o666)
	}

	f, e := os.Create(name)
	if e != nil {
		return e
	}
	zw := gzip.NewWriter(f)
	_, e = zw.Write(content)
	if e == nil {
		e = zw.Close()
	} else {
		zw.Close()
	}
	if ce := f.Close(); e == nil {
		e = ce
	}
	return e
}

func parseFile(name string) (sgf.Collection, error) {
	content, e := readFile(name)
	if e != nil {
		return nil, e
	}
	return sgf.ParseBytes(name, content)
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "parse files and report errors",
		ArgsUsage: "<file> ...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("no input files", 2)
			}

			log, e := newLogger()
			if e != nil {
				return e
			}
			defer log.Sync()

			failed := 0
			for _, name := range c.Args().Slice() {
				col, e := parseFile(name)
				if e != nil {
					log.Errorw("parse failed", "file", name, "error", e.Error())
					failed++
					continue
				}

				nodes := 0
				for _, root := range col {
					nodes += root.NumNodes()
				}
				log.Infow("ok", "file", name, "games", len(col), "nodes", nodes)
			}

			if failed > 0 {
				return cli.Exit(fmt.Sprintf("%d of %d files failed", failed, c.NArg()), 1)
			}
			return nil
		},
	}
}

func fmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "rewrite files to canonical form",
		ArgsUsage: "<file> ...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "w", Usage: "write result back instead of printing it"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("no input files", 2)
			}

			for _, name := range c.Args().Slice() {
				col, e := parseFile(name)
				if e != nil {
					return cli.Exit(e.Error(), 1)
				}

				if c.Bool("w") {
					e = writeFile(name, []byte(col.String()+"\n"))
					if e != nil {
						return cli.Exit(e.Error(), 1)
					}
				} else {
					fmt.Println(col.String())
				}
			}
			return nil
		},
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "print game metadata from root nodes",
		ArgsUsage: "<file> ...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("no input files", 2)
			}

			for _, name := range c.Args().Slice() {
				col, e := parseFile(name)
				if e != nil {
					return cli.Exit(e.Error(), 1)
				}

				fmt.Printf("%s: %d game(s)\n", name, len(col))
				for i, root := range col {
					printGameInfo(i+1, root)
				}
			}
			return nil
		},
	}
}

func printGameInfo(index int, root *sgf.Node) {
	fmt.Printf("  game %d:\n", index)
	if ff, ok := root.GetNumber("FF"); ok {
		fmt.Printf("    format: FF[%d]\n", ff)
	}
	if sz, ok := root.GetNumber("SZ"); ok {
		fmt.Printf("    board: %dx%d\n", sz, sz)
	}
	pb, okB := root.GetSimpleText("PB")
	pw, okW := root.GetSimpleText("PW")
	if okB || okW {
		fmt.Printf("    players: %s vs %s\n", orUnknown(pb, okB), orUnknown(pw, okW))
	}
	if re, ok := root.GetSimpleText("RE"); ok {
		fmt.Printf("    result: %s\n", re)
	}
	if app, version, ok := root.GetSimpleTextSimpleText("AP"); ok {
		fmt.Printf("    application: %s %s\n", app, version)
	}

	branches := 0
	root.Walk(func(n *sgf.Node) bool {
		if len(n.Children) > 1 {
			branches++
		}
		return true
	})
	fmt.Printf("    main line: %d node(s), %d node(s) total, %d branch point(s)\n",
		len(root.MainLine()), root.NumNodes(), branches)
}

func orUnknown(s string, ok bool) string {
	if !ok || s == "" {
		return "?"
	}
	return s
}
