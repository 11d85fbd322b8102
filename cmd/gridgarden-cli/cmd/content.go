package cmd

import (
	"fmt"
	"strconv"

	"github.com/gridgarden/landing/cmd/gridgarden-cli/internal/output"
	"github.com/gridgarden/landing/internal/content"
	"github.com/spf13/cobra"
)

func newContentCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect the site content catalog",
		Long: `Inspect the content catalog that drives every section of the landing page.

The embedded catalog is used unless --content (or CONTENT_PATH) names a YAML file.`,
	}
	cmd.AddCommand(newContentListCmd(opts), newContentValidateCmd(opts))
	return cmd
}

func newContentListCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list [section]",
		Short: "List the catalog sections or the entries of one section",
		Long: `Without arguments, list every catalog section with its number of entries.
With a section name, list that section's entries one per line.

Examples:
  gridgarden-cli content list
  gridgarden-cli content list testimonials
  gridgarden-cli content list products --format json`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: content.SectionNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := opts.loadSite()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				tbl := output.Table{Headers: []string{"Section", "Entries"}}
				for _, name := range content.SectionNames {
					lines, err := site.Summary(name)
					if err != nil {
						return err
					}
					tbl.Rows = append(tbl.Rows, []string{name, strconv.Itoa(len(lines))})
				}
				return output.Print(cmd.OutOrStdout(), format, tbl)
			}

			lines, err := site.Summary(args[0])
			if err != nil {
				return err
			}
			tbl := output.Table{
				Headers: []string{"#", "Entry"},
				Empty:   fmt.Sprintf("No entries in section %q", args[0]),
			}
			for i, line := range lines {
				tbl.Rows = append(tbl.Rows, []string{strconv.Itoa(i + 1), output.Truncate(line, 80)})
			}
			return output.Print(cmd.OutOrStdout(), format, tbl)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", output.FormatTable, "output format (table, json)")
	return cmd
}

func newContentValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a site content YAML file",
		Long: `Parse and validate a content file the same way the server does on startup
and on hot reload.

The validation checks:
- the YAML structure and field types
- required fields such as brand, headline and labels
- at least one product, testimonial and stat
- ratings between 1 and 5 and non-negative stat numbers
- unique product ids and partner type ids`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := content.Load(opts.fs, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid: %d products, %d testimonials, %d stats, %d partner types\n",
				args[0], len(site.Products), len(site.Testimonials), len(site.Stats.Items), len(site.Partners.Types))
			return nil
		},
	}
}
