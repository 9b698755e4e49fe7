package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/turkmorph/turkmorph"
	"github.com/turkmorph/turkmorph/lexfile"
)

// options are the global settings. Fields with yaml tags may come from
// the config file; a flag given on the command line wins over the file.
type options struct {
	configPath string

	Lexicon          []string `yaml:"lexicon"`
	Compiled         string   `yaml:"compiled"`
	IgnoreDiacritics bool     `yaml:"ignore_diacritics"`
	NoCache          bool     `yaml:"no_cache"`
	CacheSize        int      `yaml:"cache_size"`
}

// resolve fills the options not set by flags from the config file.
func (o *options) resolve(cmd *cobra.Command) error {
	if o.configPath == "" {
		return nil
	}
	data, err := os.ReadFile(o.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var file options
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("config %s: %w", o.configPath, err)
	}
	changed := func(name string) bool {
		f := cmd.Flag(name)
		return f != nil && f.Changed
	}
	if !changed("lexicon") {
		o.Lexicon = file.Lexicon
	}
	if !changed("compiled") {
		o.Compiled = file.Compiled
	}
	if !changed("ignore-diacritics") {
		o.IgnoreDiacritics = file.IgnoreDiacritics
	}
	if !changed("no-cache") {
		o.NoCache = file.NoCache
	}
	o.CacheSize = file.CacheSize
	return nil
}

// lexicon loads the compiled lexicon followed by the dictionary files.
func (o *options) lexicon() (*turkmorph.RootLexicon, error) {
	var lex *turkmorph.RootLexicon
	if o.Compiled != "" {
		l, err := lexfile.Load(o.Compiled)
		if err != nil {
			return nil, err
		}
		lex = l
	}
	if len(o.Lexicon) > 0 {
		l, err := turkmorph.LoadFiles(o.Lexicon...)
		if err != nil {
			return nil, err
		}
		lex = lex.Merge(l)
	}
	return lex, nil
}

func (o *options) morphology(cmd *cobra.Command) (*turkmorph.Morphology, error) {
	if err := o.resolve(cmd); err != nil {
		return nil, err
	}
	lex, err := o.lexicon()
	if err != nil {
		return nil, err
	}
	return turkmorph.New(turkmorph.Config{
		Lexicon:          lex,
		IgnoreDiacritics: o.IgnoreDiacritics,
		DisableCache:     o.NoCache,
		CacheSize:        o.CacheSize,
	})
}
