package recorder

import "github.com/jungbyungkil/aistockcomment/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAdvice(_ *model.AdviceRecord) error { return nil }
func (n *NoopRecorder) ListAdvice(_ string, _ int) ([]model.AdviceRecord, error) {
	return nil, nil
}
func (n *NoopRecorder) StockNames() ([]string, error) { return nil, nil }
func (n *NoopRecorder) Close() error                  { return nil }
