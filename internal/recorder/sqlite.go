package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/jungbyungkil/aistockcomment/internal/model"
)

// SQLiteRecorder persists advice records to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and ensures the
// stock_advice table exists. Safe to call on every process start.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so the dashboard process can read while the advisor writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS stock_advice (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp        TEXT NOT NULL,
		stock_name       TEXT NOT NULL,
		ticker           TEXT NOT NULL,
		decision         TEXT,
		confidence       TEXT,
		analysis_summary TEXT,
		action_plan      TEXT,
		current_price    REAL,
		created_at       TEXT DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

func (r *SQLiteRecorder) RecordAdvice(rec *model.AdviceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO stock_advice
		(timestamp, stock_name, ticker, decision, confidence, analysis_summary, action_plan, current_price)
		VALUES (?,?,?,?,?,?,?,?)`,
		rec.Timestamp, rec.StockName, rec.Ticker,
		rec.Decision, rec.Confidence, rec.AnalysisSummary, rec.ActionPlan,
		rec.CurrentPrice,
	)
	return err
}

func (r *SQLiteRecorder) ListAdvice(stockName string, limit int) ([]model.AdviceRecord, error) {
	query := `SELECT id, timestamp, stock_name, ticker,
		COALESCE(decision, ''), COALESCE(confidence, ''),
		COALESCE(analysis_summary, ''), COALESCE(action_plan, ''),
		current_price, created_at
		FROM stock_advice`
	args := []any{}
	if stockName != "" {
		query += " WHERE stock_name = ?"
		args = append(args, stockName)
	}
	query += " ORDER BY timestamp DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query advice: %w", err)
	}
	defer rows.Close()

	var records []model.AdviceRecord
	for rows.Next() {
		var rec model.AdviceRecord
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.StockName, &rec.Ticker,
			&rec.Decision, &rec.Confidence, &rec.AnalysisSummary, &rec.ActionPlan,
			&rec.CurrentPrice, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan advice: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *SQLiteRecorder) StockNames() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT stock_name FROM stock_advice ORDER BY stock_name`)
	if err != nil {
		return nil, fmt.Errorf("query stock names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
