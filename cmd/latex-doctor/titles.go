// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/latex-doctor/internal/texutil"
	"github.com/pdiddy/latex-doctor/internal/titles"
)

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Standardize the capitalization of sectioning command titles",
	Long: `Titles rewrites the text inside \part, \chapter, \section,
\subsection, \subsubsection, \paragraph and \subparagraph (starred or not).

Modes:
  Uppercase   title case; linking words such as "of" or "and" stay lowercase
  Capitalize  sentence case
  AllCaps     every letter uppercased

Rewritten files go to output/ (mirroring the folder layout) unless --inplace
is given. A file that cannot be read or written is reported and skipped.`,
	RunE: runTitles,
}

func runTitles(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	file, _ := cmd.Flags().GetString("file")
	folder, _ := cmd.Flags().GetString("folder")
	inPlace, _ := cmd.Flags().GetBool("inplace")

	mode := cfg.Titles.Mode
	if !mode.Valid() {
		return fmt.Errorf("%w %q: use Uppercase, Capitalize, or AllCaps", titles.ErrUnknownMode, mode)
	}

	files, err := texutil.Discover(texutil.Input{File: file, Folder: folder, Extension: cfg.Titles.Extension})
	if err != nil {
		return err
	}
	rep.Info("standardizing titles", "files", len(files), "mode", mode)

	opts := titles.Options{
		Mode:      mode,
		InPlace:   inPlace,
		OutputDir: cfg.Titles.OutputDir,
	}
	if file == "" {
		opts.Root = folder
	}

	result := titles.RewriteFiles(files, opts, rep)
	if result.HasFailures() {
		return fmt.Errorf("%d of %d file(s) failed", result.Failed, result.Total())
	}
	return nil
}

func init() {
	titlesCmd.Flags().StringP("file", "f", "", "path to a single .tex file")
	titlesCmd.Flags().StringP("folder", "F", "", "folder searched recursively for .tex files")
	titlesCmd.Flags().String("mode", "Uppercase", "capitalization: Uppercase, Capitalize, or AllCaps")
	titlesCmd.Flags().Bool("inplace", false, "overwrite the input files")
	titlesCmd.Flags().String("output-dir", titles.DefaultOutputDir, "root of the mirrored output tree")

	mustBind("titles.mode", titlesCmd.Flags().Lookup("mode"))
	mustBind("titles.output_dir", titlesCmd.Flags().Lookup("output-dir"))

	rootCmd.AddCommand(titlesCmd)
}
