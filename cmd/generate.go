package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/srcgen/pkg/action/generate"
	"github.com/cmmoran/srcgen/pkg/action/snapshot"
	"github.com/cmmoran/srcgen/pkg/annotation"
)

func init() {
	var generateCmd = NewGenerateCommand()
	rootCmd.AddCommand(generateCmd)
}

// generateFlags registers the flags shared by commands that load a schema.
// Each flag is bound to the viper key generate.<name> when the command runs.
func generateFlags(c *cobra.Command) {
	d := generate.NewOptions()
	c.Flags().StringP("schema", "s", "", "schema to load: a .yaml file or a directory holding a Go package")
	c.Flags().StringP("language", "L", d.Language, "output language (java, cpp, go)")
	c.Flags().StringP("framework", "f", "", "annotation framework ("+strings.Join(annotation.Frameworks(), ", ")+"); empty selects the language default")
	c.Flags().StringP("out", "o", d.Out, "output root")
	c.Flags().String("subdir", "", "directory between the output root and the package directories")
	c.Flags().StringP("package", "p", "", "package of generated files, overriding the schema package")
	c.Flags().String("module-path", "", "module path for Go output, overriding the nearest go.mod")
	c.Flags().StringSliceP("exclude-types", "t", []string{}, "exclude named types from generation")
	c.Flags().BoolP("exclude-deprecated", "d", false, "exclude types and fields documented as deprecated")
	c.PreRunE = func(c *cobra.Command, args []string) error {
		for _, name := range []string{"schema", "language", "framework", "out", "subdir", "package", "module-path", "exclude-types", "exclude-deprecated"} {
			if err := viper.BindPFlag("generate."+name, c.Flags().Lookup(name)); err != nil {
				return err
			}
		}
		return nil
	}
}

// generateOptions reads the generate.* keys. Prefixes come from the
// configuration first, then from "prefix=dir" pairs.
func generateOptions(prefixes []string) (*generate.Options, error) {
	o := &generate.Options{
		Schema:            viper.GetString("generate.schema"),
		Language:          viper.GetString("generate.language"),
		Framework:         viper.GetString("generate.framework"),
		Out:               viper.GetString("generate.out"),
		Subdir:            viper.GetString("generate.subdir"),
		Package:           viper.GetString("generate.package"),
		ModulePath:        viper.GetString("generate.module-path"),
		ExcludeTypes:      viper.GetStringSlice("generate.exclude-types"),
		ExcludeDeprecated: viper.GetBool("generate.exclude-deprecated"),
		Prefixes:          viper.GetStringMapString("generate.prefixes"),
	}
	if err := o.Normalize(prefixes...); err != nil {
		return nil, err
	}
	return o, nil
}

func NewGenerateCommand() *cobra.Command {
	var (
		prefixStrings []string
		manifestPath  string
		snapshotName  string
	)

	// generateCmd represents the srcgen generate command
	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate classes",
		Long:  "Generate one class per complex type of a schema, optionally recording the run as a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := generateOptions(prefixStrings)
			if err != nil {
				return err
			}
			if snapshotName != "" {
				path, err := snapshot.Generate(c.Context(), opts, manifestPath, snapshotName)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.OutOrStdout(), path)
				return nil
			}
			res, err := generate.Generate(c.Context(), opts)
			if err != nil {
				return err
			}
			for _, p := range res.Written {
				fmt.Fprintln(c.OutOrStdout(), p)
			}
			return nil
		},
	}
	generateFlags(generateCmd)
	generateCmd.Flags().StringSliceVar(&prefixStrings, "prefix", []string{}, "map a package prefix to a directory, ex: com.example=src/main/java")
	generateCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "srcgen.manifest.yaml", "manifest recording snapshots")
	generateCmd.Flags().StringVar(&snapshotName, "snapshot", "", "record the run in the manifest under this version")

	return generateCmd
}
