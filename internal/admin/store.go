package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/flixstream/flix/internal/domain"
)

const connectTimeout = 10 * time.Second

// Store implements domain.AdminStore against the hosted Postgres database.
// The schema is owned by the hosted service; this client only reads and
// writes rows through plain SQL.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewStore opens a connection pool for the given DSN and verifies it
func NewStore(dsn string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close releases the connection pool
func (s *Store) Close() error { return s.db.Close() }

// GetProfile returns one user profile row
func (s *Store) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	var p domain.Profile
	var fullName sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, full_name, role, subscription_status, created_at
		 FROM profiles WHERE id = $1`, userID).
		Scan(&p.ID, &p.Email, &fullName, &p.Role, &p.SubscriptionStatus, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	p.FullName = fullName.String
	return &p, nil
}

// ListProfiles returns all profiles, newest first
func (s *Store) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, email, full_name, role, subscription_status, created_at
		 FROM profiles ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		var fullName sql.NullString
		if err := rows.Scan(&p.ID, &p.Email, &fullName, &p.Role, &p.SubscriptionStatus, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		p.FullName = fullName.String
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// UpdateProfileRole sets the role on one profile row
func (s *Store) UpdateProfileRole(ctx context.Context, userID string, role domain.Role) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE profiles SET role = $1 WHERE id = $2`, role, userID)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	s.logger.Info("updated profile role", "user", userID, "role", role)
	return nil
}

// ListContent returns all content rows, newest first
func (s *Store) ListContent(ctx context.Context) ([]domain.ContentRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content_type, title, overview, poster_path, backdrop_path,
		        release_date, runtime, status, vote_average, vote_count, featured,
		        video_url, created_at
		 FROM content ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	defer rows.Close()

	var records []domain.ContentRecord
	for rows.Next() {
		rec, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanContent(rows *sql.Rows) (domain.ContentRecord, error) {
	var rec domain.ContentRecord
	var contentType string
	var overview, posterPath, backdropPath, releaseDate, videoURL sql.NullString
	var runtime sql.NullInt64
	var rating sql.NullFloat64
	var voteCount sql.NullInt64

	err := rows.Scan(&rec.ID, &contentType, &rec.Title, &overview, &posterPath,
		&backdropPath, &releaseDate, &runtime, &rec.Status, &rating, &voteCount,
		&rec.Featured, &videoURL, &rec.CreatedAt)
	if err != nil {
		return rec, fmt.Errorf("failed to scan content: %w", err)
	}

	if contentType == "tv_show" {
		rec.Kind = domain.KindShow
	} else {
		rec.Kind = domain.KindMovie
	}
	rec.Overview = overview.String
	rec.PosterPath = posterPath.String
	rec.BackdropPath = backdropPath.String
	rec.ReleaseDate = releaseDate.String
	rec.Runtime = int(runtime.Int64)
	rec.Rating = rating.Float64
	rec.VoteCount = int(voteCount.Int64)
	rec.VideoURL = videoURL.String
	return rec, nil
}

// SetContentFeatured toggles the featured flag on a content row
func (s *Store) SetContentFeatured(ctx context.Context, contentID string, featured bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE content SET featured = $1 WHERE id = $2`, featured, contentID)
	if err != nil {
		return fmt.Errorf("failed to update featured flag: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListGenres returns the genres linked to a content row
func (s *Store) ListGenres(ctx context.Context, contentID string) ([]domain.Genre, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.id, g.name FROM genres g
		 JOIN content_genres cg ON cg.genre_id = g.id
		 WHERE cg.content_id = $1 ORDER BY g.name`, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	defer rows.Close()

	var genres []domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

// AddFavorite inserts a favorite join row; duplicates are ignored
func (s *Store) AddFavorite(ctx context.Context, userID, contentID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO favorites (user_id, content_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, content_id) DO NOTHING`, userID, contentID)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite deletes a favorite join row
func (s *Store) RemoveFavorite(ctx context.Context, userID, contentID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND content_id = $2`, userID, contentID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// ListFavorites returns a user's favorites, newest first
func (s *Store) ListFavorites(ctx context.Context, userID string) ([]domain.Favorite, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, content_id, created_at FROM favorites
		 WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.UserID, &f.ContentID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

// AddWatchlistEntry inserts a watchlist join row; duplicates are ignored
func (s *Store) AddWatchlistEntry(ctx context.Context, userID, contentID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO watchlist (user_id, content_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, content_id) DO NOTHING`, userID, contentID)
	if err != nil {
		return fmt.Errorf("failed to add watchlist entry: %w", err)
	}
	return nil
}

// RemoveWatchlistEntry deletes a watchlist join row
func (s *Store) RemoveWatchlistEntry(ctx context.Context, userID, contentID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM watchlist WHERE user_id = $1 AND content_id = $2`, userID, contentID)
	if err != nil {
		return fmt.Errorf("failed to remove watchlist entry: %w", err)
	}
	return nil
}

// ListWatchlist returns a user's watchlist, newest first
func (s *Store) ListWatchlist(ctx context.Context, userID string) ([]domain.WatchlistEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, content_id, created_at FROM watchlist
		 WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}
	defer rows.Close()

	var entries []domain.WatchlistEntry
	for rows.Next() {
		var e domain.WatchlistEntry
		if err := rows.Scan(&e.UserID, &e.ContentID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// RecordWatchProgress upserts the watch-history row for (user, content)
func (s *Store) RecordWatchProgress(ctx context.Context, userID, contentID string, progressSeconds int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO watch_history (user_id, content_id, progress_seconds, watched_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (user_id, content_id)
		 DO UPDATE SET progress_seconds = $3, watched_at = NOW()`,
		userID, contentID, progressSeconds)
	if err != nil {
		return fmt.Errorf("failed to record watch progress: %w", err)
	}
	return nil
}

// ListWatchHistory returns a user's watch history, most recent first
func (s *Store) ListWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, content_id, progress_seconds, watched_at FROM watch_history
		 WHERE user_id = $1 ORDER BY watched_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watch history: %w", err)
	}
	defer rows.Close()

	var entries []domain.WatchHistoryEntry
	for rows.Next() {
		var e domain.WatchHistoryEntry
		if err := rows.Scan(&e.UserID, &e.ContentID, &e.ProgressSeconds, &e.WatchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan watch history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
