// Package cli implements the wealthctl subcommands. Every command works
// offline on a holdings CSV and an optional history CSV.
package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// Commands lists the subcommands registered by wealthctl
var Commands = []subcommands.Command{
	&summaryCmd{},
	&correlateCmd{},
	&planCmd{},
}

// output receives command results; errors go to stderr
var output io.Writer = os.Stdout

const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatText     = "text"
)

// sourceFlags are the input files shared by every command
type sourceFlags struct {
	file    string
	history string
}

func (s *sourceFlags) register(f *flag.FlagSet) {
	f.StringVar(&s.file, "file", "holdings.csv", "holdings CSV (id,name,category,value,performance)")
	f.StringVar(&s.history, "history", "", "optional history CSV (asset_id,timestamp,value)")
}

// renderFlags select how results are printed
type renderFlags struct {
	format   string
	currency string
}

func (r *renderFlags) register(f *flag.FlagSet) {
	f.StringVar(&r.format, "format", formatJSON, "output format (json, markdown, text)")
	f.StringVar(&r.currency, "currency", "EUR", "ISO 4217 currency used to format amounts")
}

func (r *renderFlags) validate() error {
	switch r.format {
	case formatJSON, formatMarkdown, formatText:
		return nil
	default:
		return fmt.Errorf("unknown format %q: must be one of %s, %s, %s", r.format, formatJSON, formatMarkdown, formatText)
	}
}

// emit prints v as JSON, or md as raw or terminal-rendered markdown
func (r *renderFlags) emit(v any, md func() (string, error)) error {
	if r.format == formatJSON {
		enc := json.NewEncoder(output)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	doc, err := md()
	if err != nil {
		return err
	}
	if r.format == formatMarkdown {
		_, err = fmt.Fprint(output, doc)
		return err
	}
	return printMarkdown(doc)
}

// splitList splits a comma separated flag value, dropping empty items
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

func usageError(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitUsageError
}
