package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	portssvc "github.com/SscSPs/warehouse_management_app/internal/core/ports/services"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().Bool("json", false, "Print the report as JSON")
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Recompute balances from movements and report drift",
	Long: `Sums every receipt item and subtracts every item of a signed shipment,
then compares the result with the stored balance rows. Exits non-zero when
any balance differs or is negative.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	var report *dto.LedgerAuditReport
	err := withServices(cmd.Context(), false, func(svc *portssvc.ServiceContainer) error {
		var err error
		report, err = svc.Audit.VerifyBalances(cmd.Context())
		return err
	})
	if err != nil {
		return err
	}

	if err := printReport(cmd, report, asJSON); err != nil {
		return err
	}
	if !report.OK() {
		return fmt.Errorf("%w: %d balance(s) disagree", ErrDriftFound, len(report.Drifts))
	}
	return nil
}

func printReport(cmd *cobra.Command, report *dto.LedgerAuditReport, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(out, "Checked %d balance(s), %d drift(s)\n", report.CheckedKeys, len(report.Drifts))
	if report.OK() {
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RESOURCE\tUNIT\tSTORED\tEXPECTED")
	for _, d := range report.Drifts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ResourceID, d.UnitID, d.Stored.String(), d.Expected.String())
	}
	return w.Flush()
}
