// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf2svg CLI: convert one page of
// a PDF document to SVG on standard output.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshint/pdf2svg/internal/convert"
	"github.com/meshint/pdf2svg/internal/render"
)

// version is set at build time via ldflags.
var version = "dev"

// stdoutPath is the output value that means "write to standard output".
const stdoutPath = "-"

// rootCmd is the single command of the pdf2svg CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf2svg <FILE>",
	Short: "Convert a page of a PDF document to SVG",
	Long: `pdf2svg converts a single page of a PDF document into an SVG file.
Rendering is done by the MuPDF engine; the SVG markup is written verbatim
to standard output (or to --output). Pages are numbered from 1.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := convert.Request{
			Path: args[0],
			Page: viper.GetInt("page"),
		}

		var buf bytes.Buffer
		if err := convert.Run(req, openDocument, &buf); err != nil {
			return err
		}

		out := viper.GetString("output")
		if out == stdoutPath {
			_, err := os.Stdout.Write(buf.Bytes())
			return err
		}
		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		return nil
	},
}

// openDocument adapts render.Open to the orchestration's open signature.
func openDocument(path string) (convert.Renderer, error) {
	return render.Open(path)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("pdf2svg {{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "print the version and exit")

	rootCmd.Flags().IntP("page", "p", 1, "1-based page number to convert")
	rootCmd.Flags().StringP("output", "o", stdoutPath, `output path ("-" for stdout)`)
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf2svg.yaml or ~/.config/pdf2svg/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf2svg")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf2svg"))
		}
	}

	viper.SetEnvPrefix("PDF2SVG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// Flags win over config file and environment values.
	_ = viper.BindPFlag("page", rootCmd.Flags().Lookup("page"))
	_ = viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
