package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/openwith/sharext/internal/branding"
	"github.com/openwith/sharext/internal/config"
	"github.com/openwith/sharext/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` adds an iOS share extension target to a prepared Cordova project.

Run it from an after_prepare hook, or by hand from the project root. The
extension sources are read from platforms/ios/ShareExtension.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[projectArgAnnotation] == "" {
			args = nil
		}
		root, err := resolveProjectRoot(args)
		if err != nil {
			return err
		}
		config.Load(root)
		return nil
	},
}

// projectArgAnnotation marks commands whose first positional argument is the
// project root, so .env and config.yaml are read from that project.
const projectArgAnnotation = "project-root-arg"

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("project-root", "", "Cordova project root (default: current directory)")
	pf.Bool("debug", false, "Sign for a debug build (also set by "+config.DebugEnv+")")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
	pf.Bool("show-secrets", false, "Print signing values without redaction")

	_ = viper.BindPFlag(config.KeyProjectRoot, pf.Lookup("project-root"))
	_ = viper.BindPFlag(config.KeyDebug, pf.Lookup("debug"))
	_ = viper.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyShowSecrets, pf.Lookup("show-secrets"))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// resolveProjectRoot picks the positional argument, then the configured
// project root, then the working directory.
func resolveProjectRoot(args []string) (string, error) {
	root := config.ProjectRoot()
	if len(args) > 0 {
		root = args[0]
	}
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving project root %s: %w", root, err)
	}
	return abs, nil
}

// newLogger returns the hook logger writing to the command's stderr.
func newLogger(cmd *cobra.Command) (*logrus.Logger, error) {
	return logging.New(cmd.ErrOrStderr(), config.LogLevel())
}

func redactor() logging.Redactor {
	return logging.Redactor{Reveal: config.ShowSecrets()}
}
