// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/latex-doctor/internal/acronym"
	"github.com/pdiddy/latex-doctor/internal/texutil"
)

var acronymsCmd = &cobra.Command{
	Use:   "acronyms",
	Short: "Extract parenthesized acronyms and infer their definitions",
	Long: `Acronyms scans a .tex file, or every .tex file under a folder, for
acronyms written in parentheses such as "explainable artificial intelligence
(XAI)". For an acronym of N letters the definition is the last N words found
in the N*30 characters before the parenthesis, with markup, digits and
punctuation removed. The first occurrence of an acronym wins.

With --no-definitions only the acronym list is produced, using the loose
shape that also accepts tokens like COVID-19 or TCP/IP.`,
	RunE: runAcronyms,
}

func runAcronyms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	file, _ := cmd.Flags().GetString("file")
	folder, _ := cmd.Flags().GetString("folder")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	yamlOutput, _ := cmd.Flags().GetBool("yaml")
	exportPath, _ := cmd.Flags().GetString("export")
	latexPath, _ := cmd.Flags().GetString("export-latex")
	noDefinitions, _ := cmd.Flags().GetBool("no-definitions")
	dbPath, _ := cmd.Flags().GetString("db")

	if jsonOutput && yamlOutput {
		return fmt.Errorf("--json and --yaml are mutually exclusive")
	}

	files, err := texutil.Discover(texutil.Input{File: file, Folder: folder, Extension: cfg.Acronyms.Extension})
	if err != nil {
		return err
	}
	rep.Info("extracting acronyms", "files", len(files))

	tex, err := texutil.ReadConcat(files)
	if err != nil {
		return err
	}

	result, err := acronym.Extract(tex, acronym.Options{
		Profile:          cfg.Acronyms.Profile,
		NoDefinitions:    noDefinitions,
		WindowMultiplier: cfg.Acronyms.WindowMultiplier,
	}, rep)
	if err != nil {
		return err
	}

	if err := printAcronyms(cmd.OutOrStdout(), result, jsonOutput, yamlOutput); err != nil {
		return err
	}

	if exportPath != "" {
		if err := acronym.WritePlainList(exportPath, result.Tokens); err != nil {
			return err
		}
		rep.Info("exported acronym list", "path", exportPath)
	}

	if latexPath != "" {
		block := acronym.Block{Title: cfg.Acronyms.BlockTitle, Label: cfg.Acronyms.BlockLabel}
		if err := acronym.WriteLaTeX(latexPath, result.Mapping(), block); err != nil {
			return err
		}
		rep.Info("exported LaTeX acronyms chapter", "path", latexPath)
	}

	if dbPath != "" {
		source := file
		if source == "" {
			source = folder
		}
		if err := saveGlossary(cmd.Context(), dbPath, result, source); err != nil {
			return err
		}
	}
	return nil
}

// printAcronyms writes the result to w. Data formats carry the mapping when
// definitions exist and the token list otherwise.
func printAcronyms(w io.Writer, result acronym.Result, jsonOutput, yamlOutput bool) error {
	var data any = result.Tokens
	if result.Tokens == nil {
		data = []string{}
	}
	if result.HasDefinitions() {
		data = result.Definitions
	}

	switch {
	case jsonOutput:
		return acronym.WriteJSON(w, data)
	case yamlOutput:
		return acronym.WriteYAML(w, data)
	case result.HasDefinitions():
		return acronym.PrintMapping(w, result.Definitions)
	default:
		return acronym.PrintTokens(w, result.Tokens)
	}
}

func saveGlossary(ctx context.Context, dbPath string, result acronym.Result, source string) error {
	if !result.HasDefinitions() {
		rep.Warn("no definitions to store; glossary left unchanged", "path", dbPath)
		return nil
	}
	g, err := acronym.OpenGlossary(dbPath)
	if err != nil {
		return err
	}
	defer g.Close()

	summary, err := g.Save(ctx, result.Definitions, source)
	if err != nil {
		return err
	}
	rep.Info("glossary updated", "path", dbPath, "added", summary.Added, "kept", summary.Skipped)
	return nil
}

func init() {
	acronymsCmd.Flags().StringP("file", "f", "", "path to a single .tex file")
	acronymsCmd.Flags().StringP("folder", "F", "", "folder searched recursively for .tex files")
	acronymsCmd.Flags().Bool("json", false, "print JSON (object with definitions, array otherwise)")
	acronymsCmd.Flags().Bool("yaml", false, "print YAML instead of plain lines")
	acronymsCmd.Flags().String("export", "", "write the acronym list (one per line) to this file")
	acronymsCmd.Flags().String("export-latex", "", "write a LaTeX acronyms chapter to this file")
	acronymsCmd.Flags().Bool("no-definitions", false, "only list acronyms found in parentheses")
	acronymsCmd.Flags().String("profile", "", "acronym shape: strict or loose (default strict, loose with --no-definitions)")
	acronymsCmd.Flags().Int("window-multiplier", acronym.DefaultWindowMultiplier, "characters scanned per acronym letter")
	acronymsCmd.Flags().String("db", "", "SQLite glossary updated with the inferred definitions")

	mustBind("acronyms.profile", acronymsCmd.Flags().Lookup("profile"))
	mustBind("acronyms.window_multiplier", acronymsCmd.Flags().Lookup("window-multiplier"))

	rootCmd.AddCommand(acronymsCmd)
}
