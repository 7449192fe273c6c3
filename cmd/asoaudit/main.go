package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "asoaudit",
		Short: "Score app store presence and analyze keyword opportunities",
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")

	root.AddCommand(scoreCmd())
	root.AddCommand(keywordsCmd())
	root.AddCommand(clustersCmd())
	root.AddCommand(metadataCmd())
	root.AddCommand(captionsCmd())
	root.AddCommand(cppCmd())
	root.AddCommand(historyCmd())
	root.AddCommand(serveCmd())

	return root
}

func scoreCmd() *cobra.Command {
	var (
		input      string
		platform   string
		appName    string
		jsonOutput bool
		noSave     bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute an ASO health score from a metrics file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(input, platform, appName, jsonOutput, noSave)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "metrics JSON file (required)")
	cmd.Flags().StringVar(&platform, "platform", "", "weight profile: apple, google or default (overrides file)")
	cmd.Flags().StringVar(&appName, "app", "", "app name recorded with the audit")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the audit to history")
	cmd.MarkFlagRequired("input")
	return cmd
}

func keywordsCmd() *cobra.Command {
	var (
		input      string
		jsonOutput bool
		noSave     bool
	)

	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Compare and rank a keyword set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeywords(input, jsonOutput, noSave)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "keywords JSON file (required)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the run to history")
	cmd.MarkFlagRequired("input")
	return cmd
}

func clustersCmd() *cobra.Command {
	var (
		keywords []string
		dataFile string
	)

	cmd := &cobra.Command{
		Use:   "clusters",
		Short: "Group keywords by search intent",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClusters(keywords, dataFile)
		},
	}

	cmd.Flags().StringSliceVar(&keywords, "keywords", nil, "keywords to cluster (required)")
	cmd.Flags().StringVar(&dataFile, "data", "", "optional per-keyword stats JSON file")
	cmd.MarkFlagRequired("keywords")
	return cmd
}

func metadataCmd() *cobra.Command {
	var (
		platform string
		appFile  string
		keywords []string
	)

	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Generate optimized listing metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMetadata(platform, appFile, keywords)
		},
	}

	cmd.Flags().StringVar(&platform, "platform", "", "apple or google (required)")
	cmd.Flags().StringVar(&appFile, "app", "", "app info JSON file (required)")
	cmd.Flags().StringSliceVar(&keywords, "keywords", nil, "target keywords")
	cmd.MarkFlagRequired("platform")
	cmd.MarkFlagRequired("app")
	return cmd
}

func captionsCmd() *cobra.Command {
	var (
		platform     string
		keywords     []string
		title        string
		subtitle     string
		keywordField string
		count        int
	)

	cmd := &cobra.Command{
		Use:   "captions",
		Short: "Recommend screenshot captions from uncovered keywords",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCaptions(platform, keywords, title, subtitle, keywordField, count)
		},
	}

	cmd.Flags().StringVar(&platform, "platform", "apple", "apple or google")
	cmd.Flags().StringSliceVar(&keywords, "keywords", nil, "target keywords (required)")
	cmd.Flags().StringVar(&title, "title", "", "current app title")
	cmd.Flags().StringVar(&subtitle, "subtitle", "", "current subtitle")
	cmd.Flags().StringVar(&keywordField, "keyword-field", "", "current Apple keyword field")
	cmd.Flags().IntVar(&count, "count", 10, "number of captions (5-10)")
	cmd.MarkFlagRequired("keywords")
	return cmd
}

func cppCmd() *cobra.Command {
	var (
		segments     []string
		keywords     []string
		clustersFile string
	)

	cmd := &cobra.Command{
		Use:   "cpp",
		Short: "Plan Apple Custom Product Pages per user segment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCPP(segments, keywords, clustersFile)
		},
	}

	cmd.Flags().StringSliceVar(&segments, "segments", nil, "user segments (required)")
	cmd.Flags().StringSliceVar(&keywords, "keywords", nil, "keywords to distribute")
	cmd.Flags().StringVar(&clustersFile, "clusters", "", "optional cluster JSON file from the clusters command")
	cmd.MarkFlagRequired("segments")
	return cmd
}

func historyCmd() *cobra.Command {
	var (
		platform   string
		minScore   float64
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show saved audits",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(platform, minScore, limit, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&platform, "platform", "", "filter by platform")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "minimum overall score")
	cmd.Flags().IntVar(&limit, "limit", 20, "max audits to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "server port (default: from config)")
	return cmd
}
