package cmd

import (
	"fmt"

	"github.com/gridgarden/landing/internal/rendering"
	"github.com/gridgarden/landing/internal/view"
	"github.com/gridgarden/landing/web/src/templates/layouts"
	"github.com/gridgarden/landing/web/src/templates/pages"
	"github.com/gridgarden/landing/web/src/templates/sections"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *options) *cobra.Command {
	var (
		out         string
		locale      string
		partnerType string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the landing page to a static HTML file",
		Long: `Render the complete landing page, exactly as the server serves GET /,
into a standalone HTML document.

The stat counters show their final values and the live connection element is
inert without a server, so the result works as a static fallback page.

Examples:
  gridgarden-cli render --out index.html
  gridgarden-cli render --out - --locale sk
  gridgarden-cli render --content site.yaml --partner-type architect`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := opts.loadSite()
			if err != nil {
				return err
			}
			if partnerType != "" {
				if _, ok := site.Partners.PartnerType(partnerType); !ok {
					return fmt.Errorf("unknown partner type %q", partnerType)
				}
			}

			page := view.AdaptGomponentToTempl(pages.Home(site, pages.HomeProps{
				PartnerType: partnerType,
				Printer:     sections.NumberPrinter(locale),
			}))
			html, err := rendering.NewUniversalRenderer().RenderComponent(cmd.Context(),
				layouts.Base(site.Brand, view.FlashData{}, page))
			if err != nil {
				return err
			}

			if out == "-" {
				_, err := cmd.OutOrStdout().Write(html)
				return err
			}
			if err := writeFile(opts.fs, out, html); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Rendered %s (%d bytes)\n", out, len(html))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "index.html", `output file, "-" for stdout`)
	cmd.Flags().StringVar(&locale, "locale", "en", "locale used to format the stat numbers")
	cmd.Flags().StringVar(&partnerType, "partner-type", "", "partner type preselected in the inquiry form")
	return cmd
}

func writeFile(fs afero.Fs, path string, data []byte) error {
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
