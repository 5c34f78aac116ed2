package cli

import (
	"fmt"

	portssvc "github.com/SscSPs/warehouse_management_app/internal/core/ports/services"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(numbersCmd)
}

var numbersCmd = &cobra.Command{
	Use:       "numbers receipts|shipments",
	Short:     "List the document numbers in use",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"receipts", "shipments"},
	RunE:      runNumbers,
}

func runNumbers(cmd *cobra.Command, args []string) error {
	var numbers []string
	err := withServices(cmd.Context(), false, func(svc *portssvc.ServiceContainer) error {
		var err error
		if args[0] == "receipts" {
			numbers, err = svc.Receipt.ListReceiptNumbers(cmd.Context())
		} else {
			numbers, err = svc.Shipment.ListShipmentNumbers(cmd.Context())
		}
		return err
	})
	if err != nil {
		return err
	}
	for _, n := range numbers {
		fmt.Fprintln(cmd.OutOrStdout(), n)
	}
	return nil
}
