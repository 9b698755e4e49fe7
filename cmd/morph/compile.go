package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turkmorph/turkmorph/lexfile"
)

func newCompileCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "compile -o out.lex [files...]",
		Short: "Compile dictionary files (and --lexicon, --compiled) into one lexicon file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New("missing -o output file")
			}
			if err := opts.resolve(cmd); err != nil {
				return err
			}
			opts.Lexicon = append(opts.Lexicon, args...)
			lex, err := opts.lexicon()
			if err != nil {
				return err
			}
			if lex.Len() == 0 {
				return errors.New("no dictionary items to compile")
			}
			if err := lexfile.WriteFile(output, lex); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d items to %s\n", lex.Len(), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	return cmd
}
