package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/openwith/sharext/internal/config"
	"github.com/openwith/sharext/internal/extension"
	"github.com/openwith/sharext/internal/preferences"
	"github.com/spf13/cobra"
)

var addTargetOutput string

func init() {
	addTargetCmd.Flags().StringVarP(&addTargetOutput, "output", "o", outputText, "Output format: text or yaml")
	rootCmd.AddCommand(addTargetCmd)
}

var addTargetCmd = &cobra.Command{
	Use:         "add-target [project-root]",
	Annotations: map[string]string{projectArgAnnotation: "true"},
	Short:       "Add the share extension target to the Xcode project",
	Long: `Add the ShareExt target, its build phases and the ShareExtension group to
platforms/ios/<Project>.xcodeproj, register the extension files and patch the
extension's signing settings.

The project file is written once at the end. When any step fails the project
file is left as it was.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAddTarget,
}

func runAddTarget(cmd *cobra.Command, args []string) error {
	if err := checkOutput(addTargetOutput); err != nil {
		return err
	}
	root, err := resolveProjectRoot(args)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}

	red := redactor()
	report, err := extension.Run(extension.BuildContext{
		ProjectRoot: root,
		Debug:       config.Debug(),
		ShowSecrets: red.Reveal,
	}, log)
	if err != nil {
		return err
	}

	report.Signing.DevelopmentTeam = red.Value(preferences.DevelopmentTeam, report.Signing.DevelopmentTeam)
	report.Signing.ProvisioningProfile = red.Value(preferences.ProvisioningProfile, report.Signing.ProvisioningProfile)

	out := cmd.OutOrStdout()
	if addTargetOutput == outputYAML {
		return writeYAML(out, report)
	}

	status := "updated"
	if report.TargetCreated {
		status = "added"
	}
	color.New(color.FgGreen).Fprintf(out, "%s target %s in %s\n", extension.TargetName, status, report.ProjectName)
	fmt.Fprintf(out, "  files:   %d source, %d config, %d resource\n", report.SourceFiles, report.ConfigFiles, report.ResourceFiles)
	fmt.Fprintf(out, "  signing: %d configuration(s), debug=%t\n", report.SigningPatched, report.Debug)
	if report.GroupCreated && !report.GroupParented {
		color.New(color.FgYellow).Fprintf(out, "  %s group was not found; %s group is not attached to it\n",
			extension.ParentGroupName, extension.FolderName)
	}
	return nil
}
