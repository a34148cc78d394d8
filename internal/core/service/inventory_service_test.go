package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

func TestFilters(t *testing.T) {
	rec := &recorder{}
	svc := newSeededService(rec)

	assert.Len(t, svc.FilteredItems(), 3)

	svc.SetSearchTerm("paper")
	assert.Equal(t, "paper", svc.Snapshot().SearchTerm)
	require.Len(t, svc.FilteredItems(), 1)
	assert.Equal(t, "OFF001", svc.FilteredItems()[0].SKU)

	svc.SetSearchTerm("")
	svc.SetDepartmentFilter("3")
	require.Len(t, svc.FilteredItems(), 1)
	assert.Equal(t, "TOOL001", svc.FilteredItems()[0].SKU)

	assert.Equal(t, 3, rec.count())
}

func TestLowStockItems_FollowsLedger(t *testing.T) {
	svc := newSeededService()
	require.Len(t, svc.LowStockItems(), 2)

	_, err := svc.CommitTransaction(domain.TransactionRequest{SKU: "ELEC001", Quantity: 5, Type: domain.TransactionCheckOut})
	require.NoError(t, err)

	assert.Len(t, svc.LowStockItems(), 3)
}

func TestRefresh_NotifiesWithoutChange(t *testing.T) {
	rec := &recorder{}
	svc := newSeededService(rec)
	before := svc.Snapshot()

	svc.Refresh()

	require.Equal(t, 1, rec.count())
	assert.Equal(t, before, rec.states[0])
}

func TestSnapshot_IsolatedFromCaller(t *testing.T) {
	svc := newSeededService()

	snap := svc.Snapshot()
	snap.Items[0].Quantity = -50
	snap.Departments = nil

	item, _ := svc.Item("ELEC001")
	assert.Equal(t, 15, item.Quantity)
	assert.Len(t, svc.Departments(), 3)
}

func TestCommittedStatesAreNotMutatedLater(t *testing.T) {
	rec := &recorder{}
	svc := newSeededService(rec)

	svc.SetSearchTerm("a")
	_, err := svc.CommitTransaction(domain.TransactionRequest{SKU: "ELEC001", Quantity: 1, Type: domain.TransactionCheckIn})
	require.NoError(t, err)

	assert.Equal(t, 15, rec.states[0].Items[0].Quantity)
	assert.Empty(t, rec.states[0].Transactions)
	assert.Equal(t, 16, rec.states[1].Items[0].Quantity)
}

func TestNewInventoryService_NormalizesInitialState(t *testing.T) {
	svc := NewInventoryService(domain.State{Items: []domain.InventoryItem{{SKU: "X", Quantity: -4}}}, &seqIDs{})

	state := svc.Snapshot()
	assert.Equal(t, 0, state.Items[0].Quantity)
	assert.NotNil(t, state.Departments)
	assert.NotNil(t, state.Transactions)
}
