package cmd

import (
	"fmt"
	"os"

	"github.com/sjzsdu/yeshu/lang"
	"github.com/sjzsdu/yeshu/share"
	"github.com/spf13/cobra"
)

var (
	workDir     string
	contentDirs []string
	defaultLang string
	languages   []string
	excludeDirs []string
	repoURL     string
	debugMode   bool
)

var rootCmd = &cobra.Command{
	Use:   share.BUILDNAME,
	Short: lang.T("Yeshu command line tool"),
	Long:  lang.T("Build hierarchical page trees for static sites"),
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}
		fmt.Fprintln(os.Stderr, lang.T("Invalid arguments")+": ", args)
		os.Exit(1)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workDir, "directory", "d", ".", lang.T("Work directory path"))
	rootCmd.PersistentFlags().StringVarP(&repoURL, "repository", "r", "", lang.T("Git repository URL to clone and scan"))
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "v", false, lang.T("Debug mode"))
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		share.SetDebug(debugMode)
	}
}
