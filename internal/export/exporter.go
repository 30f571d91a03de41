// Serialize scraped entities to JSON, CSV or a spreadsheet. Filenames encode
// the search parameters plus a timestamp so runs never overwrite each other.

package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"go-linkedin-scout/internal/models"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

type Exporter struct {
	outputDir string
}

func New(outputDir string) *Exporter {
	return &Exporter{outputDir: outputDir}
}

var jobColumns = []string{
	"Title", "Company", "Location", "Job Type", "Salary Range", "Posted Date",
	"Skills Matched", "Match Score (%)", "Requirements", "Source URL", "Description",
}

var profileColumns = []string{
	"Name", "Headline", "Current Company", "Location", "Experience", "Education",
	"Skills Matched", "Match Score (%)", "All Skills", "About", "Connections", "Profile URL",
}

// ExportJobs writes the job listings in the given format and returns the
// file path. A failed write is reported once and never retried.
func (e *Exporter) ExportJobs(jobs []models.JobListing, req models.SearchRequest, format Format) (string, error) {
	path := e.buildPath("jobs", req, format)
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	switch format {
	case FormatJSON:
		return path, writeJSON(path, jobs)
	case FormatCSV:
		return path, writeCSV(path, jobColumns, jobRows(jobs))
	case FormatXLSX:
		return path, writeXLSX(path, "Jobs", jobColumns, jobRows(jobs))
	}
	return "", fmt.Errorf("unsupported export format %q", format)
}

// ExportProfiles writes the profiles in the given format.
func (e *Exporter) ExportProfiles(profiles []models.Profile, req models.SearchRequest, format Format) (string, error) {
	path := e.buildPath("profiles", req, format)
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	switch format {
	case FormatJSON:
		return path, writeJSON(path, profiles)
	case FormatCSV:
		return path, writeCSV(path, profileColumns, profileRows(profiles))
	case FormatXLSX:
		return path, writeXLSX(path, "Profiles", profileColumns, profileRows(profiles))
	}
	return "", fmt.Errorf("unsupported export format %q", format)
}

// LoadJobs reads back a JSON export.
func LoadJobs(path string) ([]models.JobListing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var jobs []models.JobListing
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return jobs, nil
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9]+`)

func sanitize(s string) string {
	s = unsafeChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "_")
	return strings.Trim(s, "_")
}

func (e *Exporter) buildPath(kind string, req models.SearchRequest, format Format) string {
	skills := sanitize(strings.Join(req.Skills, "_"))
	if skills == "" {
		skills = "all"
	}
	location := sanitize(req.Location)
	if location == "" {
		location = "any"
	}
	timestamp := time.Now().Format("20060102_150405")

	filename := fmt.Sprintf("linkedin_%s_%s_%s_%s.%s", kind, skills, location, timestamp, format)
	return filepath.Join(e.outputDir, filename)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeCSV(path string, columns []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func writeXLSX(path, sheet string, columns []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func jobRows(jobs []models.JobListing) [][]string {
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []string{
			j.Title,
			j.Company,
			j.Location,
			string(j.JobType),
			j.SalaryRange,
			j.PostedDate,
			strings.Join(j.SkillsMatched, ", "),
			strconv.Itoa(j.MatchScore),
			strings.Join(j.Requirements, ", "),
			j.SourceURL,
			j.Description,
		})
	}
	return rows
}

func profileRows(profiles []models.Profile) [][]string {
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			p.Name,
			p.Headline,
			p.CurrentCompany,
			p.Location,
			strings.Join(p.Experience, "; "),
			strings.Join(p.Education, "; "),
			strings.Join(p.SkillsMatched, ", "),
			strconv.Itoa(p.SkillMatchScore),
			strings.Join(p.Skills, ", "),
			p.About,
			p.Connections,
			p.ProfileURL,
		})
	}
	return rows
}
