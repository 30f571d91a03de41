package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"go-linkedin-scout/internal/config"
	"go-linkedin-scout/internal/database"
	"go-linkedin-scout/internal/dedup"
	"go-linkedin-scout/internal/export"
	"go-linkedin-scout/internal/logger"
	"go-linkedin-scout/internal/models"
	"go-linkedin-scout/internal/scraper/linkedin"
	"go-linkedin-scout/internal/telegram"
)

func main() {
	var (
		skillsFlag   = flag.String("skills", "", "comma-separated skills to search for (required)")
		locationFlag = flag.String("location", "", "job location, e.g. 'San Francisco, CA'")
		expFlag      = flag.String("experience", "", "experience level: internship|entry|associate|mid_senior|director|executive")
		typeFlag     = flag.String("type", "", "job type: full_time|part_time|contract|temporary|volunteer|internship")
		companyFlag  = flag.String("company", "", "specific company filter")
		limitFlag    = flag.Int("limit", 0, "maximum number of jobs to return")
		jsonFlag     = flag.Bool("json", false, "print the result as JSON")
		verboseFlag  = flag.Bool("verbose", false, "include descriptions and requirements in text output")
		exportFlag   = flag.String("export", "json", "export format: json|csv|xlsx|all")
		noExportFlag = flag.Bool("no-export", false, "skip writing result files")
	)
	flag.Parse()

	cfg := config.Load()
	logger.Setup(cfg.LogLevel)

	req := models.SearchRequest{
		Skills:          splitSkills(*skillsFlag),
		Location:        *locationFlag,
		ExperienceLevel: models.ExperienceLevel(*expFlag),
		JobType:         models.JobType(*typeFlag),
		Company:         *companyFlag,
		Limit:           *limitFlag,
	}
	if len(req.Skills) == 0 && len(cfg.TargetSkills) > 0 {
		log.Printf("🎯 No -skills given, using configured target skills: %v", cfg.TargetSkills)
	}
	req.ApplyDefaultSkills(cfg.TargetSkills)
	req.Normalize(cfg.MaxJobsPerRequest)
	if err := req.Validate(); err != nil {
		flag.Usage()
		log.Fatalf("❌ Invalid search request: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Println("🚀 Starting LinkedIn job search...")
	sc := linkedin.New(cfg)
	result := sc.SearchJobs(ctx, req)
	if !result.Success {
		reportFailure(cfg, result.Message)
		log.Fatalf("❌ Search failed: %s", result.Message)
	}

	//only report jobs not seen in previous runs
	cache := dedup.NewJobCache(cfg.CachePath)
	unseen := cache.FilterUnseen(result.Jobs)
	log.Printf("🔍 Deduplication: %d total -> %d unseen jobs", len(result.Jobs), len(unseen))

	printResult(result, *jsonFlag, *verboseFlag)

	if !*noExportFlag {
		exportResult(cfg, result, *exportFlag)
	}

	failed := notifyTelegram(cfg, unseen)
	saveHistory(ctx, cfg, result)

	//remember only delivered jobs, so a failed send is retried next run
	cache.MarkSeen(deliveredURLs(unseen, failed))

	log.Println("🏁 Execution finished.")
}

func splitSkills(s string) []string {
	var skills []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}

func printResult(result models.SearchResult, asJSON, verbose bool) {
	if asJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatalf("❌ Failed to marshal result: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Printf("\n📊 Found %d jobs\n\n", result.TotalJobsFound)
	for i, job := range result.Jobs {
		fmt.Printf("%d. %s\n", i+1, job.Title)
		fmt.Printf("   🏢 %s\n", job.Company)
		fmt.Printf("   📍 %s\n", job.Location)
		if job.SalaryRange != "" {
			fmt.Printf("   💰 %s\n", job.SalaryRange)
		}
		if len(job.SkillsMatched) > 0 {
			fmt.Printf("   🛠  %s (%d%%)\n", strings.Join(job.SkillsMatched, ", "), job.MatchScore)
		}
		if job.SourceURL != "" {
			fmt.Printf("   🔗 %s\n", job.SourceURL)
		}
		if verbose {
			if len(job.Requirements) > 0 {
				fmt.Printf("   📋 %s\n", strings.Join(job.Requirements, "; "))
			}
			if job.Description != "" {
				fmt.Printf("   📄 %s\n", job.Description)
			}
		}
		fmt.Println()
	}
}

func exportResult(cfg *config.Config, result models.SearchResult, format string) {
	exp := export.New(cfg.OutputDir)

	formats := []export.Format{}
	if format == "all" {
		formats = append(formats, export.FormatJSON, export.FormatCSV, export.FormatXLSX)
	} else {
		f, err := export.ParseFormat(format)
		if err != nil {
			log.Printf("⚠️ %v, skipping export", err)
			return
		}
		formats = append(formats, f)
	}

	for _, f := range formats {
		path, err := exp.ExportJobs(result.Jobs, result.SearchQuery, f)
		if err != nil {
			//export failure is reported, the search itself still succeeded
			log.Printf("⚠️ Export failed: %v", err)
			continue
		}
		log.Printf("📁 Results saved to %s", path)
	}
}

// notifyTelegram pushes each new job to the configured chat and returns the
// source URLs whose delivery failed.
func notifyTelegram(cfg *config.Config, jobs []models.JobListing) map[string]bool {
	failed := make(map[string]bool)
	if cfg.TelegramToken == "" || len(jobs) == 0 {
		return failed
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Printf("⚠️ Failed to init Telegram bot: %v", err)
		for _, job := range jobs {
			failed[job.SourceURL] = true
		}
		return failed
	}

	log.Printf("📊 Sending %d new jobs to Telegram", len(jobs))
	for _, job := range jobs {
		if err := bot.SendJob(job); err != nil {
			log.Printf("⚠️ Failed to send job to Telegram: %v", err)
			failed[job.SourceURL] = true
		}
		//1 second delay to avoid 429
		time.Sleep(1 * time.Second)
	}
	if err := bot.SendStatus(fmt.Sprintf("Found %d new jobs.", len(jobs))); err != nil {
		log.Printf("⚠️ Failed to send status to Telegram: %v", err)
	}
	return failed
}

// deliveredURLs picks the source URLs safe to mark as seen: every unseen job
// except those whose Telegram delivery failed.
func deliveredURLs(jobs []models.JobListing, failed map[string]bool) []string {
	var urls []string
	for _, job := range jobs {
		if job.SourceURL == "" || failed[job.SourceURL] {
			continue
		}
		urls = append(urls, job.SourceURL)
	}
	return urls
}

func reportFailure(cfg *config.Config, message string) {
	if cfg.TelegramToken == "" {
		return
	}
	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Printf("⚠️ Failed to init Telegram bot: %v", err)
		return
	}
	if err := bot.SendError(errors.New(message)); err != nil {
		log.Printf("⚠️ Failed to send error to Telegram: %v", err)
	}
}

func saveHistory(ctx context.Context, cfg *config.Config, result models.SearchResult) {
	if cfg.DatabaseURL == "" {
		return
	}

	repo, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Printf("⚠️ Failed to connect to database: %v", err)
		return
	}
	defer repo.Close()

	id, err := repo.SaveSearch(ctx, result)
	if err != nil {
		log.Printf("⚠️ Failed to save search history: %v", err)
		return
	}

	total, err := repo.CountJobs(ctx)
	if err != nil {
		log.Printf("💾 Search history saved (run %s)", id)
		return
	}
	log.Printf("💾 Search history saved (run %s, %d jobs stored in total)", id, total)
}
