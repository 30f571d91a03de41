// Pure HTML extraction layer. Everything here works on raw markup so it can
// be tested against fixtures without a browser.

package linkedin

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-linkedin-scout/internal/filter"
	"go-linkedin-scout/internal/models"
)

// ErrPageBlocked marks a page whose structure is unrecognizable: an
// authwall, a login form or an anti-bot challenge. Distinct from a page that
// simply contains zero results.
var ErrPageBlocked = errors.New("page blocked or unrecognized")

// ExtractJobCards parses a job-search results page into listings. Fields
// that cannot be located stay empty; only cards without a title are skipped.
func ExtractJobCards(html string) ([]models.JobListing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	if pageBlocked(doc) {
		return nil, ErrPageBlocked
	}

	var jobs []models.JobListing
	doc.Find("div.base-card").Each(func(_ int, card *goquery.Selection) {
		title := clean(card.Find("h3.base-search-card__title").First().Text())
		if title == "" {
			return
		}

		job := models.JobListing{
			Title:    title,
			Company:  clean(card.Find("h4.base-search-card__subtitle").First().Text()),
			Location: clean(card.Find("span.job-search-card__location").First().Text()),
		}

		if href, ok := card.Find("a.base-card__full-link").First().Attr("href"); ok {
			job.SourceURL = stripQuery(href)
		}
		if salary := clean(card.Find("span.job-search-card__salary-info").First().Text()); salary != "" {
			job.SalaryRange = salary
		}
		if snippet := clean(card.Find("p.job-search-card__snippet").First().Text()); snippet != "" {
			job.Description = snippet
		}

		timeEl := card.Find("time").First()
		if datetime, ok := timeEl.Attr("datetime"); ok {
			job.PostedDate = filter.NormalizePostedDate(datetime)
		} else {
			job.PostedDate = filter.NormalizePostedDate(clean(timeEl.Text()))
		}

		jobs = append(jobs, job)
	})

	return jobs, nil
}

// ExtractJobDetail enriches a listing with fields from its detail page.
func ExtractJobDetail(html string, job *models.JobListing) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return err
	}
	if pageBlocked(doc) {
		return ErrPageBlocked
	}

	if desc := clean(doc.Find("div.show-more-less-html__markup").First().Text()); desc != "" {
		job.Description = desc
	}
	if salary := clean(doc.Find("div.salary, div.compensation__salary").First().Text()); salary != "" {
		job.SalaryRange = salary
	}

	doc.Find("li.description__job-criteria-item").Each(func(_ int, item *goquery.Selection) {
		label := clean(item.Find("h3").First().Text())
		value := clean(item.Find("span").First().Text())
		if label == "" || value == "" {
			return
		}
		if strings.EqualFold(label, "Employment type") {
			if jt := parseJobType(value); jt != "" {
				job.JobType = jt
			}
		}
		job.Requirements = append(job.Requirements, label+": "+value)
	})

	return nil
}

// ExtractProfileCards parses a people-search results page.
func ExtractProfileCards(html string) ([]models.Profile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	if pageBlocked(doc) {
		return nil, ErrPageBlocked
	}

	var profiles []models.Profile
	doc.Find("li.reusable-search__result-container, div.entity-result").Each(func(_ int, card *goquery.Selection) {
		name := clean(card.Find("span[aria-hidden='true']").First().Text())
		if name == "" {
			name = clean(card.Find("span.entity-result__title-text").First().Text())
		}
		if name == "" {
			return
		}

		profile := models.Profile{
			Name:     name,
			Headline: clean(card.Find("div.entity-result__primary-subtitle").First().Text()),
			Location: clean(card.Find("div.entity-result__secondary-subtitle").First().Text()),
		}
		if href, ok := card.Find("a.app-aware-link").First().Attr("href"); ok {
			profile.ProfileURL = stripQuery(href)
		}

		profiles = append(profiles, profile)
	})

	return profiles, nil
}

// ExtractProfileDetail enriches a profile with fields from its own page.
func ExtractProfileDetail(html string, profile *models.Profile) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return err
	}
	if pageBlocked(doc) {
		return ErrPageBlocked
	}

	if headline := clean(doc.Find("div.text-body-medium.break-words").First().Text()); headline != "" {
		profile.Headline = headline
	}
	if location := clean(doc.Find("span.text-body-small.inline.t-black--light.break-words").First().Text()); location != "" {
		profile.Location = location
	}
	if company := clean(doc.Find("div[aria-label='Current company'] span").First().Text()); company != "" {
		profile.CurrentCompany = company
	}
	if about := clean(doc.Find("section[aria-label='About'] div.display-flex.ph5.pv3").First().Text()); about != "" {
		profile.About = about
	}
	if connections := clean(doc.Find("span.t-bold span").First().Text()); connections != "" {
		profile.Connections = connections
	}

	doc.Find("section[aria-label='Experience'] li.artdeco-list__item").EachWithBreak(func(i int, item *goquery.Selection) bool {
		if entry := clean(item.Find("span[aria-hidden='true']").First().Text()); entry != "" {
			profile.Experience = append(profile.Experience, entry)
		}
		return i < 2 //first three entries, as the profile page shows them
	})

	doc.Find("section[aria-label='Education'] li.artdeco-list__item").EachWithBreak(func(i int, item *goquery.Selection) bool {
		if entry := clean(item.Find("span[aria-hidden='true']").First().Text()); entry != "" {
			profile.Education = append(profile.Education, entry)
		}
		return i < 1
	})

	doc.Find("section[aria-label='Skills'] span[aria-hidden='true'], ul.skills-list li").Each(func(_ int, item *goquery.Selection) {
		if skill := clean(item.Text()); skill != "" {
			profile.Skills = append(profile.Skills, skill)
		}
	})

	return nil
}

func pageBlocked(doc *goquery.Document) bool {
	if doc.Find("form.login__form, div.authwall-join-form, #challenge-error-page").Length() > 0 {
		return true
	}

	title := strings.ToLower(doc.Find("title").First().Text())
	for _, marker := range []string{"security verification", "just a moment", "attention required", "sign up | linkedin"} {
		if strings.Contains(title, marker) {
			return true
		}
	}
	return false
}

func parseJobType(value string) models.JobType {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "full-time", "full time":
		return models.JobTypeFullTime
	case "part-time", "part time":
		return models.JobTypePartTime
	case "contract":
		return models.JobTypeContract
	case "temporary":
		return models.JobTypeTemporary
	case "volunteer":
		return models.JobTypeVolunteer
	case "internship":
		return models.JobTypeInternship
	}
	return ""
}

func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
