package cli

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lit-labs/litcodec/internal/generator"
)

func newGenerateCommand() *cobra.Command {
	var config GenerateConfig

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate literal marker types from a manifest",
		RunE: func(_ *cobra.Command, _ []string) error {
			return Generate(&config)
		},
	}

	cmd.Flags().StringVar(&config.ManifestPath, "manifest", "litgen.yaml", "Path to the litgen manifest")
	cmd.Flags().StringVar(&config.OutputPath, "output", "", "Path to output file or '-' for stdout (defaults to the manifest's output)")
	cmd.Flags().StringVar(&config.Package, "package", "", "Override the manifest's package clause")

	return cmd
}

// GenerateConfig holds configuration for marker generation.
type GenerateConfig struct {
	ManifestPath string
	OutputPath   string
	Package      string
}

// Generate renders the marker file described by the configured
// manifest.
func Generate(config *GenerateConfig) error {
	m, err := generator.LoadManifest(config.ManifestPath)
	if err != nil {
		return err
	}

	// Flags win over manifest values
	if config.Package != "" {
		if !token.IsIdentifier(config.Package) {
			return fmt.Errorf("package override %q is not a valid identifier", config.Package)
		}
		m.Package = config.Package
	}

	out := config.OutputPath
	if out == "" {
		out = m.Output
	}
	if out == "" {
		out = "lits_gen.go"
	}
	if out != "-" && !filepath.IsAbs(out) {
		out = filepath.Join(filepath.Dir(config.ManifestPath), out)
	}

	gen := generator.New(m)

	if out == "-" {
		src, err := gen.Source()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(src)
		return err
	}

	return gen.Write(out)
}

func newCheckCommand() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a manifest without writing output",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Check(cmd, manifestPath)
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "litgen.yaml", "Path to the litgen manifest")

	return cmd
}

// Check validates the manifest and dry-runs rendering.
func Check(cmd *cobra.Command, manifestPath string) error {
	m, err := generator.LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	if _, err := generator.New(m).Source(); err != nil {
		return err
	}
	cmd.Printf("%s: %d literals ok\n", manifestPath, len(m.Literals))
	return nil
}
