package cmd

import (
	"fmt"

	"github.com/sjzsdu/yeshu/lang"
	"github.com/sjzsdu/yeshu/share"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: lang.T("Print version information"),
	Long:  lang.T("Print detailed version information of yeshu"),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s: %s\n", lang.T("yeshu version"), share.VERSION)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
