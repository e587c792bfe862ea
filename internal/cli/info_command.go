package cli

import (
	"encoding/json"
	"fmt"

	"appinfo/internal/services"

	"github.com/spf13/cobra"
)

// NewInfoCommand prints the info document exactly as GET /api/v1/info returns it.
func NewInfoCommand(globalOptions *GlobalOptions) *cobra.Command {
	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Print the resolved application info as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := services.NewInfoService(globalOptions.Conf.App).GetInfo()
			b, err := json.Marshal(info)
			if err != nil {
				return fmt.Errorf("encoding info: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
	registerInfoFlags(infoCmd)
	return infoCmd
}
