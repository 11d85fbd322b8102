package cmd

import (
	"fmt"
	"os"

	"github.com/gridgarden/landing/internal/content"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by all commands.
type options struct {
	contentPath string
	fs          afero.Fs
}

// loadSite returns the catalog from --content, or the embedded one.
func (o *options) loadSite() (*content.Site, error) {
	if o.contentPath == "" {
		return content.Default()
	}
	return content.Load(o.fs, o.contentPath)
}

// NewRootCmd builds the command tree. Every call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	opts := &options{fs: afero.NewOsFs()}

	rootCmd := &cobra.Command{
		Use:   "gridgarden-cli",
		Short: "GridGarden landing site tool",
		Long: `gridgarden-cli works with the GridGarden landing page outside the server.

Available commands:
  render       Render the landing page to a static HTML file
  content      List or validate the site content catalog
  inquiries    List partner inquiries stored in the data directory
  stats        Preview the count-up animation of the stat counters
  version      Print the version

Use "gridgarden-cli [command] --help" for more information about a specific command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.contentPath, "content", os.Getenv("CONTENT_PATH"),
		"site content YAML file (defaults to the embedded catalog)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRenderCmd(opts),
		newContentCmd(opts),
		newInquiriesCmd(),
		newStatsCmd(opts),
	)
	return rootCmd
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
