// Optional search-history store. Only wired in when DATABASE_URL is set;
// the default lifecycle keeps entities in memory until export.

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-linkedin-scout/internal/models"
)

type Repository struct {
	db *pgxpool.Pool
}

func Connect(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	// Connection poolers in transaction mode (PgBouncer) don't support
	// prepared statements, so the statement cache must stay off.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	repo := &Repository{db: pool}
	if err := repo.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return repo, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

func (r *Repository) ensureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS searches (
			id UUID PRIMARY KEY,
			skills TEXT NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			experience_level TEXT NOT NULL DEFAULT '',
			job_type TEXT NOT NULL DEFAULT '',
			company TEXT NOT NULL DEFAULT '',
			job_limit INT NOT NULL,
			total_found INT NOT NULL,
			success BOOLEAN NOT NULL,
			message TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS jobs (
			source_url TEXT PRIMARY KEY,
			search_id UUID REFERENCES searches(id),
			title TEXT NOT NULL,
			company TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			salary_range TEXT NOT NULL DEFAULT '',
			job_type TEXT NOT NULL DEFAULT '',
			posted_date TEXT NOT NULL DEFAULT '',
			skills_matched TEXT NOT NULL DEFAULT '',
			match_score INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveSearch records one search run and upserts its jobs. Returns the run id.
func (r *Repository) SaveSearch(ctx context.Context, result models.SearchResult) (string, error) {
	id := uuid.NewString()
	req := result.SearchQuery

	_, err := r.db.Exec(ctx, `
		INSERT INTO searches (id, skills, location, experience_level, job_type, company, job_limit, total_found, success, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, strings.Join(req.Skills, ", "), req.Location, string(req.ExperienceLevel),
		string(req.JobType), req.Company, req.Limit, result.TotalJobsFound, result.Success, result.Message)
	if err != nil {
		return "", fmt.Errorf("failed to save search: %w", err)
	}

	for _, job := range result.Jobs {
		if job.SourceURL == "" {
			continue
		}
		if err := r.saveJob(ctx, id, job); err != nil {
			return id, err
		}
	}
	return id, nil
}

func (r *Repository) saveJob(ctx context.Context, searchID string, job models.JobListing) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO jobs (source_url, search_id, title, company, location, description, salary_range, job_type, posted_date, skills_matched, match_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (source_url)
		DO UPDATE SET title = EXCLUDED.title, company = EXCLUDED.company, description = EXCLUDED.description,
			skills_matched = EXCLUDED.skills_matched, match_score = EXCLUDED.match_score`,
		job.SourceURL, searchID, job.Title, job.Company, job.Location, job.Description,
		job.SalaryRange, string(job.JobType), job.PostedDate, strings.Join(job.SkillsMatched, ", "), job.MatchScore)
	if err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

// CountJobs reports the total number of stored jobs.
func (r *Repository) CountJobs(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM jobs").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}
