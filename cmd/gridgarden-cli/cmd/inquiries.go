package cmd

import (
	"os"
	"time"

	"github.com/gridgarden/landing/cmd/gridgarden-cli/internal/output"
	"github.com/gridgarden/landing/internal/domain"
	"github.com/gridgarden/landing/internal/modules/partners"
	"github.com/gridgarden/landing/internal/registry"
	"github.com/gridgarden/landing/internal/storage"
	"github.com/spf13/cobra"
)

func newInquiriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inquiries",
		Short: "Work with stored partner inquiries",
	}
	cmd.AddCommand(newInquiriesListCmd())
	return cmd
}

func newInquiriesListCmd() *cobra.Command {
	var (
		dataDir     string
		format      string
		partnerType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List partner inquiries, oldest first",
		Long: `List the partner inquiries the server has persisted under DATA_DIR.

Examples:
  gridgarden-cli inquiries list
  gridgarden-cli inquiries list --data-dir /var/lib/gridgarden --type architect
  gridgarden-cli inquiries list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := inquiryRepository(dataDir)
			if err != nil {
				return err
			}
			inquiries, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}

			tbl := output.Table{
				Headers: []string{"Received", "Type", "Name", "Email", "Company", "Message"},
				Empty:   "No inquiries found",
			}
			for _, inq := range inquiries {
				if partnerType != "" && inq.PartnerType != partnerType {
					continue
				}
				company := inq.Company
				if company == "" {
					company = "-"
				}
				tbl.Rows = append(tbl.Rows, []string{
					inq.ReceivedAt.Format(time.DateTime),
					inq.PartnerType,
					inq.Name,
					inq.Email,
					company,
					output.Truncate(inq.Message, 40),
				})
			}
			return output.Print(cmd.OutOrStdout(), format, tbl)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", envOr("DATA_DIR", "data"), "directory the server stores inquiries in")
	cmd.Flags().StringVarP(&format, "format", "f", output.FormatTable, "output format (table, json)")
	cmd.Flags().StringVar(&partnerType, "type", "", "only show inquiries for this partner type")
	return cmd
}

// inquiryRepository resolves the inquiry repository the way the server's
// modules share it: the partners module registers it under
// InquiryRepositoryKey.
func inquiryRepository(dataDir string) (domain.InquiryRepository, error) {
	disk, err := storage.NewDiskStore(dataDir)
	if err != nil {
		return nil, err
	}
	reg := registry.New(nil)
	mod := partners.New(partners.Dependencies{Repository: storage.NewInquiryStore(disk)})
	if err := mod.Register(reg); err != nil {
		return nil, err
	}
	return registry.MustGet(reg, registry.InquiryRepositoryKey), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
