package storage

import (
	"errors"
	"reflect"
	"testing"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

func sampleState() domain.State {
	s := domain.SeedState()
	s.Transactions = []domain.Transaction{
		{ID: "t2", SKU: "OFF001", ItemName: "A4 Paper", Quantity: 3, Type: domain.TransactionCheckOut, User: "Admin", Date: "2024-03-09T14:30:00Z"},
		{ID: "t1", SKU: "OFF001", ItemName: "A4 Paper", Quantity: 10, Type: domain.TransactionCheckIn, User: "Admin", Date: "2024-03-08T09:00:00Z", Notes: "restock, pallet 4"},
	}
	s.SearchTerm = "paper"
	s.DepartmentFilter = "2"
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	orig := sampleState()

	data, err := EncodeSnapshot(orig)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !reflect.DeepEqual(orig, *got) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", *got, orig)
	}
}

func TestDecodeSnapshot_UnversionedLayout(t *testing.T) {
	// layout written by the first release, before the version was bumped
	data := []byte(`{"state":{"items":[{"sku":"ELEC001","name":"Arduino Uno","departmentId":"1","department":"Electronics","unit":"pcs","quantity":15,"reorderPoint":10,"condition":"Needs Repair"}],"departments":[{"id":"1","name":"Electronics"}],"transactions":[{"id":"k3j9x","sku":"ELEC001","itemName":"Arduino Uno","quantity":2,"type":"check-out","user":"Admin","date":"3/9/2024, 2:30:00 PM"}],"searchTerm":"","departmentFilter":""},"version":0}`)

	got, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].Condition != domain.ConditionNeedsRepair {
		t.Errorf("unexpected items: %+v", got.Items)
	}
	if got.Transactions[0].Type != domain.TransactionCheckOut {
		t.Errorf("unexpected transaction type %q", got.Transactions[0].Type)
	}
}

func TestDecodeSnapshot_Corrupt(t *testing.T) {
	inputs := map[string]string{
		"not json":       `{{{`,
		"future version": `{"state":{"items":[]},"version":99}`,
		"missing state":  `{"version":1}`,
		"null state":     `{"state":null,"version":1}`,
		"wrong shape":    `{"state":{"items":"lots"},"version":1}`,
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeSnapshot([]byte(in))
			if !errors.Is(err, domain.ErrCorruptSnapshot) {
				t.Errorf("expected ErrCorruptSnapshot, got %v", err)
			}
		})
	}
}
