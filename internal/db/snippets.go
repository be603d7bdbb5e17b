package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/snippetly/song-snippetly/internal/snippet"
)

// SnippetRepository handles snippet database operations.
type SnippetRepository struct {
	pool *pgxpool.Pool
}

const snippetColumns = `
	id, title, artist, moods, lyric_lines, timings,
	audio_preview_url, spotify_url, cover_image,
	duration, genre, popularity, created_at
`

// All retrieves every snippet, ordered by popularity desc then creation
// time desc.
func (r *SnippetRepository) All(ctx context.Context) ([]snippet.Snippet, error) {
	query := `
		SELECT ` + snippetColumns + `
		FROM snippets
		ORDER BY popularity DESC, created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying snippets: %w", err)
	}
	defer rows.Close()

	var snippets []snippet.Snippet
	for rows.Next() {
		s, err := scanSnippet(rows)
		if err != nil {
			return nil, err
		}
		snippets = append(snippets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading snippets: %w", err)
	}
	return snippets, nil
}

// Get retrieves a snippet by ID.
func (r *SnippetRepository) Get(ctx context.Context, id string) (*snippet.Snippet, error) {
	query := `
		SELECT ` + snippetColumns + `
		FROM snippets
		WHERE id = $1
	`
	s, err := scanSnippet(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, snippet.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Insert stores one snippet.
func (r *SnippetRepository) Insert(ctx context.Context, s *snippet.Snippet) error {
	query := `
		INSERT INTO snippets (` + snippetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.pool.Exec(ctx, query, insertArgs(s)...)
	if err != nil {
		return fmt.Errorf("inserting snippet: %w", err)
	}
	return nil
}

// ReplaceAll atomically replaces the whole snippet collection inside a
// single transaction: readers of the table never observe a partial seed.
func (r *SnippetRepository) ReplaceAll(ctx context.Context, snippets []snippet.Snippet) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM snippets`); err != nil {
		return fmt.Errorf("clearing snippets: %w", err)
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO snippets (` + snippetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	for i := range snippets {
		batch.Queue(query, insertArgs(&snippets[i])...)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("batch inserting snippets: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}

// Count returns the number of stored snippets.
func (r *SnippetRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM snippets`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting snippets: %w", err)
	}
	return count, nil
}

func insertArgs(s *snippet.Snippet) []any {
	moods := make([]string, len(s.Mood))
	for i, m := range s.Mood {
		moods[i] = string(m)
	}
	return []any{
		s.ID, s.Title, s.Artist, moods, s.LyricLines, s.Timings,
		s.AudioPreviewURL, s.SpotifyURL, s.CoverImage,
		s.Duration, s.Genre, s.Popularity, s.CreatedAt,
	}
}

func scanSnippet(row pgx.Row) (snippet.Snippet, error) {
	var s snippet.Snippet
	var moods []string
	err := row.Scan(
		&s.ID, &s.Title, &s.Artist, &moods, &s.LyricLines, &s.Timings,
		&s.AudioPreviewURL, &s.SpotifyURL, &s.CoverImage,
		&s.Duration, &s.Genre, &s.Popularity, &s.CreatedAt,
	)
	if err != nil {
		return snippet.Snippet{}, err
	}
	s.Mood = make([]snippet.Mood, len(moods))
	for i, m := range moods {
		s.Mood[i] = snippet.Mood(m)
	}
	return s, nil
}
