package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"ezc/internal/version"
)

var versionFormat string

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show ezc build metadata",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		switch strings.ToLower(versionFormat) {
		case "json":
			return renderVersionJSON(out, version.Get())
		case "pretty":
			color, err := useColor(cmd, out)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, version.Banner(color))
			return err
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
	},
}

func renderVersionJSON(out io.Writer, info version.Info) error {
	if info.Version == "" {
		info.Version = "dev"
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}
