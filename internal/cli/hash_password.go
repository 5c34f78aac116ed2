package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/SscSPs/warehouse_management_app/internal/utils"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
	Long:  `Hashes the given password, or the first line of stdin when no argument is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHashPassword,
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read password from stdin: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
