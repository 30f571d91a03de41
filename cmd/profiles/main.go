package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"go-linkedin-scout/internal/config"
	"go-linkedin-scout/internal/export"
	"go-linkedin-scout/internal/logger"
	"go-linkedin-scout/internal/models"
	"go-linkedin-scout/internal/scraper"
	"go-linkedin-scout/internal/scraper/linkedin"
)

func main() {
	var (
		skillsFlag   = flag.String("skills", "", "comma-separated skills to match against (required)")
		locationFlag = flag.String("location", "", "profile location filter")
		limitFlag    = flag.Int("limit", 0, "maximum number of profiles to scrape")
		jsonFlag     = flag.Bool("json", false, "print the result as JSON")
		exportFlag   = flag.String("export", "", "export format: json|csv|xlsx (empty = no export)")
	)
	flag.Parse()

	cfg := config.Load()
	logger.Setup(cfg.LogLevel)

	req := models.SearchRequest{
		Skills:   splitSkills(*skillsFlag),
		Location: *locationFlag,
		Limit:    *limitFlag,
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

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	log.Println("🚀 Starting LinkedIn profile search...")
	var searcher scraper.ProfileSearcher = linkedin.New(cfg)
	profiles, err := searcher.SearchProfiles(ctx, req)
	if err != nil {
		log.Fatalf("❌ Profile search failed: %v", err)
	}

	//best matches first
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].SkillMatchScore > profiles[j].SkillMatchScore
	})

	if *jsonFlag {
		data, err := json.MarshalIndent(profiles, "", "  ")
		if err != nil {
			log.Fatalf("❌ Failed to marshal profiles: %v", err)
		}
		fmt.Println(string(data))
	} else {
		fmt.Printf("\n📊 Found %d profiles\n\n", len(profiles))
		for i, p := range profiles {
			fmt.Printf("%d. %s (%d%%)\n", i+1, p.Name, p.SkillMatchScore)
			if p.Headline != "" {
				fmt.Printf("   💼 %s\n", p.Headline)
			}
			if p.Location != "" {
				fmt.Printf("   📍 %s\n", p.Location)
			}
			if len(p.SkillsMatched) > 0 {
				fmt.Printf("   🛠  %s\n", strings.Join(p.SkillsMatched, ", "))
			}
			if p.ProfileURL != "" {
				fmt.Printf("   🔗 %s\n", p.ProfileURL)
			}
			fmt.Println()
		}
	}

	if *exportFlag != "" {
		format, err := export.ParseFormat(*exportFlag)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		path, err := export.New(cfg.OutputDir).ExportProfiles(profiles, req, format)
		if err != nil {
			log.Fatalf("⚠️ Export failed: %v", err)
		}
		log.Printf("📁 Profiles saved to %s", path)
	}

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
