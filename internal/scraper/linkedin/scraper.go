package linkedin

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/playwright-community/playwright-go"
	log "github.com/sirupsen/logrus"

	"go-linkedin-scout/internal/browser"
	"go-linkedin-scout/internal/config"
	"go-linkedin-scout/internal/filter"
	"go-linkedin-scout/internal/models"
	"go-linkedin-scout/utils"
)

//detail pages are only fetched for the first few results to keep runs short
const detailFetchLimit = 3

const maxRecentErrors = 10

//f_TPR narrows results server-side, stale cards still slip through
const recencyDays = 30

// Scraper drives one browser-backed LinkedIn search per call. A mutex keeps
// operations strictly sequential: the browser resource is exclusively owned
// by the single in-flight operation.
type Scraper struct {
	cfg *config.Config

	mu              sync.Mutex
	jobsScraped     atomic.Int64
	profilesScraped atomic.Int64

	errMu      sync.Mutex
	recentErrs []string
}

func New(cfg *config.Config) *Scraper {
	return &Scraper{cfg: cfg}
}

func (s *Scraper) Status() models.ScrapingStatus {
	s.errMu.Lock()
	errs := append([]string(nil), s.recentErrs...)
	s.errMu.Unlock()
	return models.NewStatus(s.jobsScraped.Load(), s.profilesScraped.Load(), errs)
}

// SearchJobs runs one search start-to-finish: open browser, navigate,
// extract, match, close. Navigation and session failures come back as a
// failed SearchResult, never an error the caller has to classify.
func (s *Scraper) SearchJobs(ctx context.Context, req models.SearchRequest) models.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	req.Normalize(s.cfg.MaxJobsPerRequest)
	if err := req.Validate(); err != nil {
		return models.Failure(req, "invalid search request: "+err.Error())
	}

	log.Printf("💼 Searching LinkedIn jobs for skills: %v", req.Skills)

	page, mgr, err := s.openPage(ctx)
	if err != nil {
		s.recordError(err)
		return models.Failure(req, err.Error())
	}
	defer mgr.Close()

	searchURL := BuildJobSearchURL(req)
	log.Printf("🌐 Visiting job search: %s", searchURL)
	if _, err := page.Goto(searchURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		s.recordError(err)
		return models.Failure(req, fmt.Sprintf("failed to load job search page: %v", err))
	}

	//wait for the result list and fail fast when LinkedIn blocks us
	if _, err := page.WaitForSelector("ul.jobs-search__results-list, div.base-card", playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(s.cfg.RequestTimeout) * 1000),
	}); err != nil {
		utils.NewScreenshotDebugger().CaptureAndLog(page, "linkedin-no-results", "🚨 LinkedIn: job list did not load")
		s.recordError(err)
		return models.Failure(req, "Failed to load job listings - LinkedIn may be blocking requests")
	}

	browser.HumanScroll(page)
	browser.MouseJiggle(page)
	browser.RandomDelay(500, 1500)

	html, err := page.Content()
	if err != nil {
		s.recordError(err)
		return models.Failure(req, fmt.Sprintf("failed to read page content: %v", err))
	}

	jobs, err := ExtractJobCards(html)
	if err != nil {
		if errors.Is(err, ErrPageBlocked) {
			utils.NewScreenshotDebugger().CaptureAndLog(page, "linkedin-blocked", "🚨 LinkedIn: blocked page detected")
		}
		s.recordError(err)
		return models.Failure(req, fmt.Sprintf("extraction failed: %v", err))
	}
	log.Printf("📄 Found %d potential jobs", len(jobs))

	jobs = matchAndFilter(jobs, req.Skills, req.Limit)

	//enrich the first few listings with their detail pages
	for i := 0; i < len(jobs) && i < detailFetchLimit; i++ {
		if ctx.Err() != nil {
			break
		}
		if jobs[i].SourceURL == "" {
			continue
		}

		browser.PacedDelay(s.cfg.RequestDelay)
		cardText := matchText(jobs[i])
		if err := s.fetchJobDetail(page, &jobs[i]); err != nil {
			log.Printf("⚠️ Job detail error for %s: %v", jobs[i].SourceURL, err)
			continue
		}
		rematchWithDetail(&jobs[i], cardText, req.Skills)
	}

	s.jobsScraped.Add(int64(len(jobs)))
	log.Printf("✅ Successfully scraped %d jobs", len(jobs))
	return models.Success(req, jobs)
}

// SearchProfiles scrapes people-search results and ranks them against the
// requested skills.
func (s *Scraper) SearchProfiles(ctx context.Context, req models.SearchRequest) ([]models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req.Normalize(s.cfg.MaxJobsPerRequest)
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search request: %w", err)
	}

	log.Printf("👤 Searching LinkedIn profiles for skills: %v", req.Skills)

	page, mgr, err := s.openPage(ctx)
	if err != nil {
		s.recordError(err)
		return nil, err
	}
	defer mgr.Close()

	//people search requires a session; anonymous mode still tries and
	//surfaces the authwall as a blocked-page error
	if _, err := browser.Login(page, s.cfg.LinkedInEmail, s.cfg.LinkedInPassword); err != nil {
		log.Printf("⚠️ Login failed, continuing anonymously: %v", err)
	}

	searchURL := BuildProfileSearchURL(req)
	if _, err := page.Goto(searchURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		s.recordError(err)
		return nil, fmt.Errorf("failed to load profile search page: %w", err)
	}

	browser.HumanScroll(page)
	browser.MouseJiggle(page)
	browser.RandomDelay(1000, 2000)

	html, err := page.Content()
	if err != nil {
		s.recordError(err)
		return nil, fmt.Errorf("failed to read page content: %w", err)
	}

	profiles, err := ExtractProfileCards(html)
	if err != nil {
		if errors.Is(err, ErrPageBlocked) {
			utils.NewScreenshotDebugger().CaptureAndLog(page, "linkedin-profiles-blocked", "🚨 LinkedIn: profile search blocked")
		}
		s.recordError(err)
		return nil, err
	}

	if len(profiles) > req.Limit {
		profiles = profiles[:req.Limit]
	}

	now := time.Now().Format(time.RFC3339)
	for i := range profiles {
		//visit the profile itself for skills and experience
		if profiles[i].ProfileURL != "" && ctx.Err() == nil {
			browser.PacedDelay(s.cfg.RequestDelay)
			if err := s.fetchProfileDetail(page, &profiles[i]); err != nil {
				log.Printf("⚠️ Profile detail error for %s: %v", profiles[i].ProfileURL, err)
			}
		}

		matched, score := profileMatch(req.Skills, profiles[i])
		profiles[i].SkillsMatched = matched
		profiles[i].SkillMatchScore = score
		profiles[i].ScrapedAt = now
	}

	s.profilesScraped.Add(int64(len(profiles)))
	log.Printf("✅ Successfully scraped %d profiles", len(profiles))
	return profiles, nil
}

// openPage sets up the whole browser stack for one operation. The returned
// manager owns every resource; closing it tears the stack down.
func (s *Scraper) openPage(ctx context.Context) (playwright.Page, *browser.Manager, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	mgr, err := browser.NewManager(s.cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init browser: %w", err)
	}

	var cookies []playwright.OptionalCookie
	if loaded, err := browser.LoadCookies(s.cfg.CookiesPath + "/cookies-linkedin.json"); err == nil {
		log.Printf("🍪 Loaded %d LinkedIn cookies", len(loaded))
		cookies = loaded
	}

	browserCtx, err := mgr.NewContext(cookies)
	if err != nil {
		mgr.Close()
		return nil, nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		mgr.Close()
		return nil, nil, fmt.Errorf("failed to create page: %w", err)
	}

	return page, mgr, nil
}

func (s *Scraper) fetchJobDetail(page playwright.Page, job *models.JobListing) error {
	detailPage, err := page.Context().NewPage()
	if err != nil {
		return err
	}
	defer detailPage.Close()

	if _, err := detailPage.Goto(job.SourceURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return err
	}

	html, err := detailPage.Content()
	if err != nil {
		return err
	}
	return ExtractJobDetail(html, job)
}

func (s *Scraper) fetchProfileDetail(page playwright.Page, profile *models.Profile) error {
	detailPage, err := page.Context().NewPage()
	if err != nil {
		return err
	}
	defer detailPage.Close()

	if _, err := detailPage.Goto(profile.ProfileURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return err
	}

	html, err := detailPage.Content()
	if err != nil {
		return err
	}
	return ExtractProfileDetail(html, profile)
}

func (s *Scraper) recordError(err error) {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	s.recentErrs = append(s.recentErrs, err.Error())
	if len(s.recentErrs) > maxRecentErrors {
		s.recentErrs = s.recentErrs[len(s.recentErrs)-maxRecentErrors:]
	}
}

// matchAndFilter computes skill matches from the card-level text, drops
// stale listings and listings that match none of the target skills, and caps
// the result at limit. Extraction order is preserved.
func matchAndFilter(jobs []models.JobListing, skills []string, limit int) []models.JobListing {
	kept := make([]models.JobListing, 0, len(jobs))
	for _, job := range jobs {
		if !filter.IsRecent(job.PostedDate, recencyDays) {
			continue
		}
		matched, score := filter.MatchSkills(skills, matchText(job))
		if len(matched) == 0 {
			continue
		}
		job.SkillsMatched = matched
		job.MatchScore = score
		kept = append(kept, job)
		if limit > 0 && len(kept) >= limit {
			break
		}
	}
	return kept
}

// rematchWithDetail recomputes the skill match over the card snippet plus
// the detail-page text. Detail enrichment can only add matches, never lose
// the ones that kept the listing in the result.
func rematchWithDetail(job *models.JobListing, cardText string, skills []string) {
	matched, score := filter.MatchSkills(skills, cardText+" "+matchText(*job))
	job.SkillsMatched = matched
	job.MatchScore = score
}

func matchText(job models.JobListing) string {
	return job.Title + " " + job.Company + " " + job.Location + " " + job.Description
}

func profileMatch(skills []string, profile models.Profile) ([]string, int) {
	//prefer the explicit skill list when the detail page yielded one
	if len(profile.Skills) > 0 {
		return filter.MatchSkillLists(skills, profile.Skills)
	}
	text := profile.Name + " " + profile.Headline + " " + profile.Location + " " + profile.About
	return filter.MatchSkills(skills, text)
}
