package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/openwith/sharext/internal/config"
	"github.com/openwith/sharext/internal/extension"
	"github.com/openwith/sharext/internal/preferences"
	"github.com/spf13/cobra"
)

var preferencesOutput string

func init() {
	preferencesCmd.Flags().StringVarP(&preferencesOutput, "output", "o", outputText, "Output format: text or yaml")
	rootCmd.AddCommand(preferencesCmd)
}

var preferencesCmd = &cobra.Command{
	Use:         "preferences [project-root]",
	Annotations: map[string]string{projectArgAnnotation: "true"},
	Short:       "Show resolved signing values and placeholder substitutions",
	Long: `Resolve the share extension preferences the way add-target does: plugin
variables in package.json first, then <preference> entries in config.xml.

Signing values are redacted unless --show-secrets is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreferences,
}

// preferencesView is the printable result of a resolution.
type preferencesView struct {
	Project       string            `yaml:"project"`
	Debug         bool              `yaml:"debug"`
	CodeSignStyle string            `yaml:"code_sign_style"`
	Signing       extension.Signing `yaml:"signing"`
	Placeholders  preferences.Table `yaml:"placeholders"`
}

func runPreferences(cmd *cobra.Command, args []string) error {
	if err := checkOutput(preferencesOutput); err != nil {
		return err
	}
	root, err := resolveProjectRoot(args)
	if err != nil {
		return err
	}
	in, err := extension.LoadInputs(root)
	if err != nil {
		return err
	}

	red := redactor()
	sg := in.ResolveSigning()
	sg.DevelopmentTeam = red.Value(preferences.DevelopmentTeam, sg.DevelopmentTeam)
	sg.ProvisioningProfile = red.Value(preferences.ProvisioningProfile, sg.ProvisioningProfile)

	view := preferencesView{
		Project:       in.Platform.ProjectName,
		Debug:         config.Debug(),
		CodeSignStyle: extension.SigningPolicyFor(config.Debug()).Style,
		Signing:       sg,
		Placeholders:  in.Resolver.Table(in.Platform.ProjectName),
	}

	out := cmd.OutOrStdout()
	if preferencesOutput == outputYAML {
		return writeYAML(out, view)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "PROJECT\t%s\n", view.Project)
	fmt.Fprintf(w, "DEBUG\t%t\n", view.Debug)
	fmt.Fprintf(w, "CODE_SIGN_STYLE\t%s\n", view.CodeSignStyle)
	fmt.Fprintf(w, "%s\t%s\n", preferences.DevelopmentTeam, orNone(sg.DevelopmentTeam))
	fmt.Fprintf(w, "%s\t%s\n", preferences.ProvisioningProfile, orNone(sg.ProvisioningProfile))
	fmt.Fprintf(w, "PRODUCT_BUNDLE_IDENTIFIER\t%s\n", orNone(sg.BundleIdentifier))
	fmt.Fprintln(w)
	for _, p := range view.Placeholders {
		fmt.Fprintf(w, "%s\t%s\n", p.Key, orNone(p.Value))
	}
	return w.Flush()
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
