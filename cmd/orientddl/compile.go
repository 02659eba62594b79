package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/orientschema/compiler/load"
	"github.com/syssam/orientschema/dialect/orientdb"
)

func newCompileCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile FILE...",
		Short: "Compile blueprint files to DDL",
		Long: `Compile reads each blueprint file and prints one line of DDL per
blueprint, in file and document order. Files are compiled concurrently.`,
		Example: `  orientddl compile schema/user.yaml schema/post.json
  orientddl compile --escape-literals --watch schema/*.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []orientdb.Option{orientdb.WithLogger(c.logger)}
			if c.cfg.GetBool(cfgKeyEscapeLiterals) {
				opts = append(opts, orientdb.WithEscapedLiterals())
			}
			g, err := orientdb.New(opts...)
			if err != nil {
				return err
			}
			run := func(ctx context.Context) error {
				return compileFiles(ctx, g, args, cmd.OutOrStdout())
			}
			if !c.cfg.GetBool(cfgKeyWatch) {
				return run(cmd.Context())
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return watch(ctx, c.logger, args, run)
		},
	}
	cmd.Flags().Bool("escape-literals", false, `escape '"' and '\' inside quoted literals`)
	cmd.Flags().BoolP("watch", "w", false, "recompile when a blueprint file changes")
	return cmd
}

// compileFiles compiles the given files concurrently and writes their
// statements to w in argument order. Nothing is written if any file
// fails.
func compileFiles(ctx context.Context, g *orientdb.Grammar, paths []string, w io.Writer) error {
	results := make([][]string, len(paths))
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lines, err := compileFile(g, path)
			if err != nil {
				return err
			}
			results[i] = lines
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return err
	}
	for _, lines := range results {
		for _, l := range lines {
			if _, err := fmt.Fprintln(w, l); err != nil {
				return err
			}
		}
	}
	return nil
}

// compileFile returns the DDL of each blueprint in the file.
func compileFile(g *orientdb.Grammar, path string) ([]string, error) {
	docs, err := load.File(path)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(docs))
	for _, s := range docs {
		bp, err := s.Blueprint()
		if err != nil {
			return nil, err
		}
		stmts, err := g.Statements(bp)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Pos, err)
		}
		lines = append(lines, strings.Join(stmts, orientdb.Separator))
	}
	return lines, nil
}
