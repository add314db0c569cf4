package recorder

import "github.com/jungbyungkil/aistockcomment/internal/model"

// Recorder persists advice records and serves the dashboard's read path.
type Recorder interface {
	// RecordAdvice appends one advice row. Rows are never updated or deleted.
	RecordAdvice(rec *model.AdviceRecord) error
	// ListAdvice returns records ordered by timestamp descending, filtered
	// by stock name when stockName is non-empty. limit <= 0 means no limit.
	ListAdvice(stockName string, limit int) ([]model.AdviceRecord, error)
	// StockNames returns the distinct stock names present in the store.
	StockNames() ([]string, error)
	Close() error
}
