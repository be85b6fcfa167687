package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/lambdazip/internal/core/domain"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package",
		Short: "Package a code file given on the command line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, _ := cmd.Flags().GetString("code")
			extraFiles, _ := cmd.Flags().GetString("extra-files")
			output, _ := cmd.Flags().GetString("output")

			req, err := domain.NewRequest(code, extraFiles, output)
			if err != nil {
				return err
			}

			res, err := c.app.Package(cmd.Context(), req, runOptions(cmd))
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", res.OutputFilename, res.OutputBase64SHA256)
			return nil
		},
	}
	cmd.Flags().String("code", "", "Path of the primary source file (.py or .js)")
	cmd.Flags().String("extra-files", "", "Comma-separated files, relative to the code file's directory, to include")
	cmd.Flags().StringP("output", "o", "", "Archive path (default: code file with a .zip extension)")
	_ = cmd.MarkFlagRequired("code")
	return cmd
}
