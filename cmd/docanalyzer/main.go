package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "docanalyzer",
		Short: "Summarize, extract insights, chat, and generate MCQs from documents",
	}

	root.AddCommand(summaryCmd())
	root.AddCommand(insightsCmd())
	root.AddCommand(mcqCmd())
	root.AddCommand(askCmd())
	root.AddCommand(chatCmd())
	root.AddCommand(indexCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
