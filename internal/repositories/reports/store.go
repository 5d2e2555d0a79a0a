// Package reports archives terminal combat outcomes in SQLite.
package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
	"github.com/KirkDiggler/dungeon-combat/internal/repositories/reports/migrations"
)

// Report is one archived outcome
type Report struct {
	ID              int64
	SessionID       string
	Kind            combat.OutcomeKind
	Winner          combat.Side
	Experience      int
	Gold            int
	DefeatedEnemies int
	Rounds          int
	WavesCleared    int
	Loot            []*combat.Item
	// Disconnected holds the IDs of combatants that escaped
	Disconnected []string
	Log          []string
	EndedAt      time.Time
}

// Store persists reports in SQLite
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the archive at path and applies the embedded schema
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, combaterr.InvalidArgument("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, combaterr.Wrap(err, "open sqlite db")
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, classify(err, "ping sqlite db")
	}
	if err := applyMigrations(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func applyMigrations(sqlDB *sql.DB) error {
	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return combaterr.Wrap(err, "read migrations dir")
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := fs.ReadFile(migrations.FS, file)
		if err != nil {
			return combaterr.Wrapf(err, "read migration %s", file)
		}
		if _, err := sqlDB.Exec(string(content)); err != nil {
			return classify(err, "apply migration "+file)
		}
	}
	return nil
}

// Save archives an outcome and returns the new report ID
func (s *Store) Save(ctx context.Context, outcome *combat.Outcome, endedAt time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if outcome == nil {
		return 0, combaterr.InvalidArgument("outcome is required")
	}
	if strings.TrimSpace(outcome.SessionID) == "" {
		return 0, combaterr.InvalidArgument("session id is required")
	}

	rewards := outcome.Rewards
	if rewards == nil {
		rewards = &combat.Rewards{}
	}
	loot := rewards.Loot
	if loot == nil {
		loot = []*combat.Item{}
	}
	disconnected := make([]string, 0, len(outcome.Disconnected))
	for _, c := range outcome.Disconnected {
		disconnected = append(disconnected, c.ID)
	}
	entries := outcome.Log
	if entries == nil {
		entries = []string{}
	}

	lootJSON, err := json.Marshal(loot)
	if err != nil {
		return 0, combaterr.Wrap(err, "marshal loot")
	}
	disconnectedJSON, err := json.Marshal(disconnected)
	if err != nil {
		return 0, combaterr.Wrap(err, "marshal disconnected")
	}
	logJSON, err := json.Marshal(entries)
	if err != nil {
		return 0, combaterr.Wrap(err, "marshal log")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO combat_reports (
		   session_id,
		   kind,
		   winner,
		   experience,
		   gold,
		   defeated_enemies,
		   rounds,
		   waves_cleared,
		   loot_json,
		   disconnected_json,
		   log_json,
		   ended_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		outcome.SessionID,
		string(outcome.Kind),
		string(outcome.Winner),
		rewards.Experience,
		rewards.Gold,
		rewards.DefeatedEnemies,
		outcome.Rounds,
		outcome.WavesCleared,
		string(lootJSON),
		string(disconnectedJSON),
		string(logJSON),
		toMillis(endedAt),
	)
	if err != nil {
		return 0, classify(err, "insert combat report")
	}
	return result.LastInsertId()
}

const selectColumns = `id, session_id, kind, winner, experience, gold, defeated_enemies,
	rounds, waves_cleared, loot_json, disconnected_json, log_json, ended_at`

// Get loads one report
func (s *Store) Get(ctx context.Context, id int64) (*Report, error) {
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM combat_reports WHERE id = ?`, id)
	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, combaterr.NotFoundf("report %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// ListBySession returns a session's reports, oldest first
func (s *Store) ListBySession(ctx context.Context, sessionID string) ([]*Report, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM combat_reports WHERE session_id = ? ORDER BY id`, sessionID)
	if err != nil {
		return nil, classify(err, "list combat reports")
	}
	defer rows.Close()

	var out []*Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate combat reports")
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (*Report, error) {
	var (
		report           Report
		kind, winner     string
		lootJSON         string
		disconnectedJSON string
		logJSON          string
		endedAt          int64
	)
	err := row.Scan(
		&report.ID,
		&report.SessionID,
		&kind,
		&winner,
		&report.Experience,
		&report.Gold,
		&report.DefeatedEnemies,
		&report.Rounds,
		&report.WavesCleared,
		&lootJSON,
		&disconnectedJSON,
		&logJSON,
		&endedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, classify(err, "scan combat report")
	}

	report.Kind = combat.OutcomeKind(kind)
	report.Winner = combat.Side(winner)
	report.EndedAt = fromMillis(endedAt)
	if err := json.Unmarshal([]byte(lootJSON), &report.Loot); err != nil {
		return nil, combaterr.Wrap(err, "unmarshal loot")
	}
	if err := json.Unmarshal([]byte(disconnectedJSON), &report.Disconnected); err != nil {
		return nil, combaterr.Wrap(err, "unmarshal disconnected")
	}
	if err := json.Unmarshal([]byte(logJSON), &report.Log); err != nil {
		return nil, combaterr.Wrap(err, "unmarshal log")
	}
	return &report, nil
}

// classify maps a locked database to unavailable so callers can retry
func classify(err error, message string) error {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
			return combaterr.WrapWithCode(err, combaterr.CodeUnavailable, message)
		}
	}
	return combaterr.WrapWithCode(err, combaterr.CodeInternal, message)
}
