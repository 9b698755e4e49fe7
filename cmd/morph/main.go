// Command morph analyzes Turkish words from the command line.
//
//	morph analyze [--text] <words...>   analyze words (or stdin lines)
//	morph compile -o out.lex <files...> compile dictionaries into one file
//	morph repl                          interactive analysis
//
// Global flags may also be set in a YAML file given with --config.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "morph",
		Short:        "Turkish morphological analyzer",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	pf.StringSliceVar(&opts.Lexicon, "lexicon", nil, "dictionary files (.txt, .yaml); repeatable")
	pf.StringVar(&opts.Compiled, "compiled", "", "compiled lexicon file")
	pf.BoolVar(&opts.IgnoreDiacritics, "ignore-diacritics", false, "let ASCII letters match Turkish ones")
	pf.BoolVar(&opts.NoCache, "no-cache", false, "disable the analysis cache")

	root.AddCommand(
		newAnalyzeCmd(opts),
		newCompileCmd(opts),
		newReplCmd(opts),
	)
	return root
}
