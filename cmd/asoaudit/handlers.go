package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/abc-elearning/aso-audit/internal/config"
	"github.com/abc-elearning/aso-audit/internal/store"
	"github.com/abc-elearning/aso-audit/pkg/aso"
	"github.com/abc-elearning/aso-audit/pkg/keyword"
	"github.com/abc-elearning/aso-audit/pkg/metadata"
	"github.com/abc-elearning/aso-audit/pkg/server"
)

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runScore(input, platform, appName string, jsonOutput, noSave bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var metrics aso.MetricsInput
	if err := readJSONFile(input, &metrics); err != nil {
		return err
	}

	if platform == "" {
		platform = metrics.Platform
	}
	if platform == "" {
		platform = cfg.Scoring.Platform
	}

	var scorer *aso.Scorer
	if cfg.Scoring.Weights != nil {
		scorer = aso.NewScorerWithWeights(platform, *cfg.Scoring.Weights)
	} else {
		scorer = aso.NewScorer(platform)
	}

	report := scorer.Score(
		metrics.Metadata, metrics.Ratings, metrics.Keywords,
		metrics.Conversion, metrics.Technical, metrics.Visual,
	)

	if !noSave {
		db, err := store.New(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer db.Close()

		reportJSON, _ := json.Marshal(report)
		audit := &store.Audit{
			AppName:      appName,
			Platform:     report.Platform,
			OverallScore: report.OverallScore,
			HealthStatus: report.HealthStatus,
			ReportJSON:   string(reportJSON),
		}
		if err := db.SaveAudit(context.Background(), audit); err != nil {
			return fmt.Errorf("save audit: %w", err)
		}
		fmt.Fprintf(os.Stderr, "saved audit %s\n", audit.ID)
	}

	if jsonOutput {
		return printJSON(report)
	}

	fmt.Printf("Overall: %.1f/100 (%s)\n", report.OverallScore, report.Platform)
	fmt.Printf("Health:  %s\n\n", report.HealthStatus)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DIMENSION\tSCORE\tWEIGHT\tCONTRIBUTION")
	for _, result := range report.ScoreBreakdown {
		fmt.Fprintf(w, "%s\t%.1f\t%d\t%.1f\n",
			result.Dimension.DisplayName(), result.Score, result.Weight, result.WeightedContribution)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(report.PriorityActions) > 0 {
		fmt.Println("\nPriority actions:")
		for i, rec := range report.PriorityActions {
			fmt.Printf("  %d. [%s] %s\n", i+1, rec.Priority, rec.Action)
		}
	}
	return nil
}

func runKeywords(input string, jsonOutput, noSave bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var inputs []keyword.Input
	if err := readJSONFile(input, &inputs); err != nil {
		return err
	}

	comparison := keyword.NewAnalyzer().CompareKeywords(inputs)

	if !noSave {
		db, err := store.New(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer db.Close()

		resultJSON, _ := json.Marshal(comparison)
		run := &store.KeywordRun{
			KeywordCount: comparison.TotalKeywordsAnalyzed,
			ResultJSON:   string(resultJSON),
		}
		if len(comparison.RankedKeywords) > 0 {
			run.TopKeyword = comparison.RankedKeywords[0].Keyword
		}
		if err := db.SaveKeywordRun(context.Background(), run); err != nil {
			return fmt.Errorf("save keyword run: %w", err)
		}
		fmt.Fprintf(os.Stderr, "saved keyword run %s\n", run.ID)
	}

	if jsonOutput {
		return printJSON(comparison)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEYWORD\tPOTENTIAL\tDIFFICULTY\tCOMPETITION\tVOLUME\tRECOMMENDATION")
	for _, record := range comparison.RankedKeywords {
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%s\t%s\t%s\n",
			record.Keyword, record.PotentialScore, record.DifficultyScore,
			record.CompetitionLevel, record.VolumeCategory, record.Recommendation)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%s\n", comparison.Summary)
	return nil
}

func runClusters(keywords []string, dataFile string) error {
	var data map[string]keyword.Stats
	if dataFile != "" {
		if err := readJSONFile(dataFile, &data); err != nil {
			return err
		}
	}

	clusters := keyword.ClusterByIntent(keywords, data)
	return printJSON(clusters)
}

func runMetadata(platform, appFile string, keywords []string) error {
	optimizer, err := metadata.NewOptimizer(platform)
	if err != nil {
		return err
	}

	var info metadata.AppInfo
	if err := readJSONFile(appFile, &info); err != nil {
		return err
	}

	out := map[string]any{
		"platform":    optimizer.Platform(),
		"title":       optimizer.OptimizeTitle(info.Name, keywords, true),
		"description": optimizer.OptimizeFullDescription(info, keywords),
	}

	switch optimizer.Platform() {
	case metadata.Apple:
		if subtitle, err := optimizer.OptimizeSubtitle(info, keywords); err == nil {
			out["subtitle"] = subtitle
		}
		if field, err := optimizer.OptimizeKeywordField(keywords, info.Name, ""); err == nil {
			out["keyword_field"] = field
		}
	case metadata.Google:
		if short, err := optimizer.OptimizeShortDescription(info, keywords); err == nil {
			out["short_description"] = short
		}
	}

	return printJSON(out)
}

func runCaptions(platform string, keywords []string, title, subtitle, keywordField string, count int) error {
	optimizer, err := metadata.NewOptimizer(platform)
	if err != nil {
		return err
	}

	report := optimizer.GenerateScreenshotCaptions(keywords, metadata.ExistingMetadata{
		Title:        title,
		Subtitle:     subtitle,
		KeywordField: keywordField,
	}, count, 0)

	return printJSON(report)
}

func runCPP(segments, keywords []string, clustersFile string) error {
	optimizer, err := metadata.NewOptimizer("apple")
	if err != nil {
		return err
	}

	var clusters []keyword.Cluster
	if clustersFile != "" {
		if err := readJSONFile(clustersFile, &clusters); err != nil {
			return err
		}
	}

	plan, err := optimizer.GenerateCPPMetadata(segments, keywords, clusters)
	if err != nil {
		return err
	}
	return printJSON(plan)
}

func runHistory(platform string, minScore float64, limit int, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	audits, err := db.ListAudits(context.Background(), store.AuditListOpts{
		Platform: platform,
		MinScore: minScore,
		Limit:    limit,
	})
	if err != nil {
		return fmt.Errorf("list audits: %w", err)
	}

	if jsonOutput {
		return printJSON(audits)
	}

	if len(audits) == 0 {
		fmt.Println("no audits found (run a score first: asoaudit score --input metrics.json)")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tPLATFORM\tAPP\tSTATUS\tCREATED")
	for _, audit := range audits {
		fmt.Fprintf(w, "%.1f\t%s\t%s\t%s\t%s\n",
			audit.OverallScore, audit.Platform, audit.AppName,
			audit.HealthStatus, audit.CreatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}

func runServe(port int) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if port == 0 {
		port = cfg.Server.Port
	}

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	srv := server.New(db, port)
	return srv.ListenAndServe()
}
