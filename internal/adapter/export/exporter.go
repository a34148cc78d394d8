package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
	"github.com/rl1809/inventory-tracker/internal/port"
)

type StateSource interface {
	Snapshot() domain.State
}

// Exporter renders the current state as CSV files and hands them to a sink.
type Exporter struct {
	source StateSource
	sink   port.ExportSink
	now    func() time.Time
}

func NewExporter(source StateSource, sink port.ExportSink) *Exporter {
	return &Exporter{source: source, sink: sink, now: time.Now}
}

// WithClock replaces the clock used for file names.
func (e *Exporter) WithClock(now func() time.Time) *Exporter {
	e.now = now
	return e
}

func (e *Exporter) ExportInventory(ctx context.Context) (string, error) {
	var buf bytes.Buffer
	if err := WriteInventoryCSV(&buf, e.source.Snapshot().Items); err != nil {
		return "", fmt.Errorf("render inventory: %w", err)
	}
	return e.put(ctx, InventoryFileName(e.now()), &buf)
}

func (e *Exporter) ExportTransactions(ctx context.Context) (string, error) {
	var buf bytes.Buffer
	if err := WriteTransactionsCSV(&buf, e.source.Snapshot().Transactions); err != nil {
		return "", fmt.Errorf("render transactions: %w", err)
	}
	return e.put(ctx, TransactionsFileName(e.now()), &buf)
}

func (e *Exporter) put(ctx context.Context, name string, buf *bytes.Buffer) (string, error) {
	location, err := e.sink.Put(ctx, name, ContentTypeCSV, bytes.NewReader(buf.Bytes()))
	if err != nil {
		return "", fmt.Errorf("store %s: %w", name, err)
	}
	return location, nil
}
