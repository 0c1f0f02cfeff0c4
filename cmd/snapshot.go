package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmmoran/srcgen/internal/loader"
	"github.com/cmmoran/srcgen/pkg/action/generate"
	"github.com/cmmoran/srcgen/pkg/action/snapshot"
)

func init() {
	rootCmd.AddCommand(NewDiffCommand(), NewRunsCommand(), NewSchemaCommand())
}

func NewDiffCommand() *cobra.Command {
	var manifestPath string
	var diffCmd = &cobra.Command{
		Use:   "diff",
		Short: "diff the last two runs",
		Long:  "Print the differences between the files of the current and the previous recorded run",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			diff, err := snapshot.DiffCurrentWithPrevious(manifestPath)
			if err != nil {
				return err
			}
			fmt.Fprint(c.OutOrStdout(), diff)
			return nil
		},
	}
	diffCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "srcgen.manifest.yaml", "manifest recording snapshots")
	return diffCmd
}

func NewRunsCommand() *cobra.Command {
	var manifestPath string
	var runsCmd = &cobra.Command{
		Use:   "runs",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			m, err := snapshot.List(manifestPath)
			if err != nil {
				return err
			}
			for _, r := range m.Runs {
				marker := " "
				switch r.Version {
				case m.CurrentVersion:
					marker = "*"
				case m.PreviousVersion:
					marker = "-"
				}
				fmt.Fprintf(c.OutOrStdout(), "%s %s\t%s\t%s\t%d files\n", marker, r.Version, r.Language, r.Schema, len(r.Files))
			}
			return nil
		},
	}
	runsCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "srcgen.manifest.yaml", "manifest recording snapshots")
	return runsCmd
}

func NewSchemaCommand() *cobra.Command {
	var schemaCmd = &cobra.Command{
		Use:   "schema",
		Short: "print a schema as YAML",
		Long:  "Load a schema, YAML or Go package, and print it as a YAML schema document",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := generateOptions(nil)
			if err != nil {
				return err
			}
			s, err := generate.LoadSchema(opts)
			if err != nil {
				return err
			}
			out, err := loader.MarshalYAML(s)
			if err != nil {
				return err
			}
			fmt.Fprint(c.OutOrStdout(), string(out))
			return nil
		},
	}
	generateFlags(schemaCmd)
	return schemaCmd
}
