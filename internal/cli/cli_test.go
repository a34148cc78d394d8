package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testChdir(t, dir)
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "inventory.db"))
	t.Setenv("EXPORT_DIR", filepath.Join(dir, "exports"))
	t.Setenv("EXPORT_S3_BUCKET", "")
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err, "inventoryctl %s", strings.Join(args, " "))
	return out
}

func decodeItem(t *testing.T, out string) domain.InventoryItem {
	t.Helper()
	var item domain.InventoryItem
	require.NoError(t, json.Unmarshal([]byte(out), &item))
	return item
}

func TestItemsList_SeedsOnFirstRun(t *testing.T) {
	setupEnv(t)

	var items []domain.InventoryItem
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "items", "list")), &items))
	require.Len(t, items, 3)
	assert.Equal(t, "ELEC001", items[0].SKU)
}

func TestTransactionCommit_PersistsAcrossInvocations(t *testing.T) {
	setupEnv(t)

	out := mustRun(t, "tx", "commit", "--sku", "ELEC001", "--quantity", "5", "--type", "check-out")
	assert.Equal(t, "Transaction processed: Removed 5 items\n", out)

	item := decodeItem(t, mustRun(t, "items", "get", "ELEC001"))
	assert.Equal(t, 10, item.Quantity)

	var txs []domain.Transaction
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "tx", "list")), &txs))
	require.Len(t, txs, 1)
	assert.Equal(t, "Admin", txs[0].User)
	assert.Equal(t, "Arduino Uno", txs[0].ItemName)
}

func TestTransactionCommit_Rejected(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "tx", "commit", "--sku", "TOOL001", "--quantity", "4")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	item := decodeItem(t, mustRun(t, "items", "get", "TOOL001"))
	assert.Equal(t, 3, item.Quantity)
}

func TestItemsAddUpdateDelete(t *testing.T) {
	setupEnv(t)

	item := decodeItem(t, mustRun(t, "items", "add",
		"--sku", "TOOL002", "--name", "Hammer", "--department", "3", "--unit", "pcs",
		"--quantity", "12 pcs", "--reorder-point", "-1"))
	assert.Equal(t, 12, item.Quantity)
	assert.Equal(t, 0, item.ReorderPoint)
	assert.Equal(t, "Tools", item.Department)

	item = decodeItem(t, mustRun(t, "items", "update", "TOOL002", "--condition", "Fair", "--reorder-point", "20"))
	assert.Equal(t, domain.ConditionFair, item.Condition)
	assert.Equal(t, 20, item.ReorderPoint)
	assert.Equal(t, "Hammer", item.Name)

	var low []domain.InventoryItem
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "items", "low-stock")), &low))
	skus := []string{}
	for _, it := range low {
		skus = append(skus, it.SKU)
	}
	assert.Contains(t, skus, "TOOL002")

	mustRun(t, "items", "delete", "TOOL002")
	_, err := run(t, "items", "get", "TOOL002")
	assert.Error(t, err)
}

func TestItemsAdd_MissingFields(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "items", "add", "--sku", "X1")
	require.Error(t, err)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
}

func TestDepartments(t *testing.T) {
	setupEnv(t)

	mustRun(t, "departments", "update", "2", "--name", "Stationery")
	mustRun(t, "departments", "delete", "1")

	var depts []domain.Department
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "departments", "list")), &depts))
	require.Len(t, depts, 2)
	assert.Equal(t, "Stationery", depts[0].Name)

	var items []domain.InventoryItem
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "items", "list", "--all")), &items))
	assert.Len(t, items, 2)
	// item keeps the name captured at creation
	assert.Equal(t, "Office Supplies", items[0].Department)
}

func TestFiltersSet_AppliesToList(t *testing.T) {
	setupEnv(t)

	mustRun(t, "filters", "set", "--search", "screw")

	var items []domain.InventoryItem
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "items", "list")), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "TOOL001", items[0].SKU)

	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "items", "list", "--all")), &items))
	assert.Len(t, items, 3)
}

func TestExport(t *testing.T) {
	dir := setupEnv(t)

	out := strings.TrimSpace(mustRun(t, "export", "inventory"))
	assert.Equal(t, filepath.Join(dir, "exports"), filepath.Dir(out))
	assert.FileExists(t, out)

	out = strings.TrimSpace(mustRun(t, "export", "transactions"))
	assert.FileExists(t, out)
}
