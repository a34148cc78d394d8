package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

const ContentTypeCSV = "text/csv"

var (
	inventoryHeader    = []string{"SKU", "Name", "Department", "Unit", "Quantity", "Reorder Point", "Condition", "Description", "Bill Name", "Bill Number"}
	transactionsHeader = []string{"ID", "SKU", "Item Name", "Quantity", "Type", "User", "Date", "Notes"}
)

func InventoryFileName(now time.Time) string {
	return fmt.Sprintf("inventory-%s.csv", now.UTC().Format(time.DateOnly))
}

func TransactionsFileName(now time.Time) string {
	return fmt.Sprintf("transactions-%s.csv", now.UTC().Format(time.DateOnly))
}

// WriteInventoryCSV writes one row per item in catalog order.
func WriteInventoryCSV(w io.Writer, items []domain.InventoryItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(inventoryHeader); err != nil {
		return err
	}
	for _, it := range items {
		row := []string{
			it.SKU, it.Name, it.Department, it.Unit,
			strconv.Itoa(it.Quantity), strconv.Itoa(it.ReorderPoint),
			string(it.Condition), it.Description, it.BillName, it.BillNumber,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTransactionsCSV writes one row per ledger entry, newest first.
func WriteTransactionsCSV(w io.Writer, txs []domain.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(transactionsHeader); err != nil {
		return err
	}
	for _, tx := range txs {
		row := []string{
			tx.ID, tx.SKU, tx.ItemName, strconv.Itoa(tx.Quantity),
			string(tx.Type), tx.User, tx.Date, tx.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
