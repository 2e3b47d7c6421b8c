// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/latex-doctor/internal/acronym"
)

var glossaryCmd = &cobra.Command{
	Use:   "glossary [ACRONYM...]",
	Short: "Show acronyms stored in a SQLite glossary",
	Long: `Glossary reads the database written by "acronyms --db". Without
arguments it lists every stored acronym; with arguments it looks up each one.
Stored definitions are never overwritten by later runs.`,
	RunE: runGlossary,
}

func runGlossary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dbPath, _ := cmd.Flags().GetString("db")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	latexPath, _ := cmd.Flags().GetString("export-latex")

	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("glossary %s: %w", dbPath, err)
	}

	g, err := acronym.OpenGlossary(dbPath)
	if err != nil {
		return err
	}
	defer g.Close()

	ctx := cmd.Context()
	var entries []acronym.GlossaryEntry
	if len(args) == 0 {
		entries, err = g.All(ctx)
		if err != nil {
			return err
		}
	} else {
		for _, token := range args {
			e, ok, err := g.Lookup(ctx, token)
			if err != nil {
				return err
			}
			if !ok {
				rep.Warn("acronym not in glossary", "acronym", token)
				continue
			}
			entries = append(entries, e)
		}
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		if entries == nil {
			entries = []acronym.GlossaryEntry{}
		}
		if err := acronym.WriteJSON(out, entries); err != nil {
			return err
		}
	} else {
		for _, e := range entries {
			fmt.Fprintf(out, "%s: %s\n", e.Token, e.Definition)
		}
	}

	if latexPath != "" {
		m := acronym.NewMapping()
		for _, e := range entries {
			m.InsertIfAbsent(e.Token, e.Definition)
		}
		block := acronym.Block{Title: cfg.Acronyms.BlockTitle, Label: cfg.Acronyms.BlockLabel}
		if err := acronym.WriteLaTeX(latexPath, m, block); err != nil {
			return err
		}
		rep.Info("exported LaTeX acronyms chapter", "path", latexPath)
	}
	return nil
}

func init() {
	glossaryCmd.Flags().String("db", "glossary.db", "path to the SQLite glossary")
	glossaryCmd.Flags().Bool("json", false, "print entries as JSON")
	glossaryCmd.Flags().String("export-latex", "", "write the listed entries as a LaTeX acronyms chapter")

	rootCmd.AddCommand(glossaryCmd)
}
