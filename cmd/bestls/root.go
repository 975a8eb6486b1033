package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/desertwitch/bestls/internal/filelock"
	"github.com/desertwitch/bestls/internal/filter"
	"github.com/desertwitch/bestls/internal/schema"
	"github.com/spf13/cobra"
)

const outPerms = 0o644

type rootOptions struct {
	path       string
	all        bool
	sortBy     schema.SortKey
	tree       bool
	depth      int
	filterExt  string
	filterName string
	minSize    string
	maxSize    string
	format     schema.Format
	json       bool
	jsonPretty bool
	compact    bool
	columns    string
	noColor    bool
	out        string
	verbose    bool
}

func newRootCommand(app *App) *cobra.Command {
	opts := &rootOptions{
		path:   ".",
		sortBy: schema.SortByName,
		format: schema.FormatTable,
	}

	cmd := &cobra.Command{
		Use:   "bestls",
		Short: "A modern directory listing",
		Long: `bestls lists the contents of a directory as a colored table, one name
per line, or JSON.

Listings can be filtered by extension, filename pattern and size, sorted by
name, size or modification date, and extended recursively into a tree.

Colors are read from the theme configuration (see "bestls theme path").
Preset options are read from "defaults.env" next to it, and from BESTLS_*
environment variables.

Usage Examples:
  bestls -p ./src
  bestls --json --sort size
  bestls --tree --depth 2 --filter-ext go,md
  bestls --filter-name "*.rs" --min-size 1KB --out listing.txt`,
		Version:       Version,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			app.SetVerbose(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListing(cmd, app, opts)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.path, "path", "p", opts.path, "directory to list")
	flags.BoolVarP(&opts.all, "all", "a", false, "include hidden files")
	flags.VarP(&opts.sortBy, "sort", "s", "sort by name, size or date")
	flags.BoolVar(&opts.tree, "tree", false, "list subdirectories recursively")
	flags.IntVar(&opts.depth, "depth", schema.UnboundedDepth, "maximum depth of a tree listing")
	flags.StringVar(&opts.filterExt, "filter-ext", "", "comma-separated list of extensions to keep")
	flags.StringVar(&opts.filterName, "filter-name", "", "glob pattern the filename must match")
	flags.StringVar(&opts.minSize, "min-size", "", "minimum size (e.g. 10KB)")
	flags.StringVar(&opts.maxSize, "max-size", "", "maximum size (e.g. 1.5MB)")
	flags.Var(&opts.format, "format", "output format: table, json or json-pretty")
	flags.BoolVarP(&opts.json, "json", "j", false, "output compact JSON")
	flags.BoolVar(&opts.jsonPretty, "json-pretty", false, "output pretty-printed JSON")
	flags.BoolVar(&opts.compact, "compact", false, "print one name per line (table format)")
	flags.StringVar(&opts.columns, "columns", "", "comma-separated table columns: "+columnList())
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colors")
	flags.StringVar(&opts.out, "out", "", "write the output to a file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug information to stderr")

	_ = cmd.RegisterFlagCompletionFunc("sort", fixedCompletions(schema.SortKeys()))
	_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletions(schema.Formats()))
	_ = cmd.MarkFlagDirname("path")

	cmd.AddCommand(newCompletionCommand())
	cmd.AddCommand(newThemeCommand(app))

	return cmd
}

func runListing(cmd *cobra.Command, app *App, opts *rootOptions) error {
	flags := cmd.Flags()

	if flags.Changed("depth") && !opts.tree {
		return &usageError{err: ErrDepthWithoutTree}
	}

	req := buildRequest(app, opts, flags.Changed)

	out, err := app.List(cmd.Context(), req)
	if err != nil {
		return err
	}

	if opts.out != "" {
		if err := filelock.WriteInPlace(opts.out, []byte(out+"\n"), outPerms); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}

		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)

	return nil
}

// buildRequest layers the flags over the preset defaults. Only flags given
// on the command line override a preset.
func buildRequest(app *App, opts *rootOptions, changed func(string) bool) *schema.Request {
	defaults := app.Defaults()

	req := schema.NewRequest()
	req.Path = filepath.Clean(opts.path)
	req.Tree = opts.tree
	req.MaxDepth = opts.depth
	req.FilterExt = filter.SplitList(opts.filterExt)
	req.FilterName = opts.filterName
	req.JSON = opts.json
	req.JSONPretty = opts.jsonPretty

	req.IncludeHidden = opts.all
	if !changed("all") {
		req.IncludeHidden = defaults.IncludeHidden
	}

	req.Compact = opts.compact
	if !changed("compact") {
		req.Compact = defaults.Compact
	}

	if defaults.SortBy != "" && !changed("sort") {
		req.SortBy = defaults.SortBy
	} else {
		req.SortBy = opts.sortBy
	}

	if defaults.Format != "" && !changed("format") {
		req.Format = defaults.Format
	} else {
		req.Format = opts.format
	}

	req.Columns = filter.SplitList(opts.columns)
	if !changed("columns") {
		req.Columns = defaults.Columns
	}

	req.MinSize = opts.minSize
	if !changed("min-size") {
		req.MinSize = defaults.MinSize
	}

	req.MaxSize = opts.maxSize
	if !changed("max-size") {
		req.MaxSize = defaults.MaxSize
	}

	noColor := opts.noColor
	if !changed("no-color") {
		noColor = defaults.NoColor || app.NoColorRequested()
	}

	req.UseColor = !noColor && opts.out == ""

	return req
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return newUsageError("unexpected argument %q (use -p/--path to select a directory)", args[0])
	}

	return nil
}

func columnList() string {
	columns := schema.Columns()

	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = string(c)
	}

	return strings.Join(names, ",")
}

func fixedCompletions[T ~string](values []T) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		completions := make([]string, len(values))
		for i, v := range values {
			completions[i] = string(v)
		}

		return completions, cobra.ShellCompDirectiveNoFileComp
	}
}
