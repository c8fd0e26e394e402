package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driving/mcp"
)

// versionShort prints only the version string.
var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if versionShort {
			cmd.Println(version)
			return
		}
		cmd.Printf("docchat version %s\n", version)
		cmd.Printf("  mcp server: %s\n", mcp.Version)
		cmd.Printf("  go:         %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print the version string only")
	rootCmd.AddCommand(versionCmd)
}
