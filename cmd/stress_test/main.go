package main

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rl1809/inventory-tracker/internal/adapter/idgen"
	"github.com/rl1809/inventory-tracker/internal/core/domain"
	"github.com/rl1809/inventory-tracker/internal/core/service"
	"github.com/rl1809/inventory-tracker/internal/logging"
)

const (
	itemSKU       = "STRESS001"
	initialStock  = 20
	totalRequests = 50
	perRequest    = 1
)

func main() {
	logger := logging.Setup("info", false)

	state := domain.SeedState()
	inventory := service.NewInventoryService(state, idgen.NewUUID())
	if _, err := inventory.AddItem(domain.ItemDraft{
		SKU:          itemSKU,
		Name:         "Stress Item",
		DepartmentID: "1",
		Unit:         "pcs",
		Quantity:     initialStock,
		ReorderPoint: 5,
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to add stress item")
	}
	baseline := len(inventory.Transactions())

	// Counters
	var successCount atomic.Int32
	var failCount atomic.Int32
	var unexpected atomic.Int32

	// Spawn concurrent check-outs
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()

			_, err := inventory.CommitTransaction(domain.TransactionRequest{
				SKU:      itemSKU,
				Quantity: perRequest,
				Type:     domain.TransactionCheckOut,
				User:     fmt.Sprintf("user-%d", userID),
			})
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, domain.ErrInsufficientStock):
				failCount.Add(1)
			default:
				unexpected.Add(1)
				logger.Error().Err(err).Int("user", userID).Msg("unexpected error")
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	// Results
	success := int(successCount.Load())
	fail := int(failCount.Load())
	item, _ := inventory.Item(itemSKU)
	ledger := len(inventory.Transactions()) - baseline

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Initial Stock:    %d\n", initialStock)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Rejected:         %d\n", fail)
	fmt.Printf("Unexpected:       %d\n", unexpected.Load())
	fmt.Printf("Final Quantity:   %d\n", item.Quantity)
	fmt.Printf("Ledger Entries:   %d\n", ledger)
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	failed := false
	check := func(ok bool, pass, failure string) {
		if ok {
			fmt.Println("PASS:", pass)
			return
		}
		fmt.Println("FAIL:", failure)
		failed = true
	}

	check(item.Quantity >= 0, "quantity never negative", fmt.Sprintf("quantity is %d", item.Quantity))
	check(success*perRequest == initialStock-item.Quantity,
		"accepted check-outs match consumed stock",
		fmt.Sprintf("%d accepted but stock dropped by %d", success, initialStock-item.Quantity))
	check(ledger == success, "one ledger entry per accepted check-out",
		fmt.Sprintf("%d entries for %d accepted", ledger, success))
	check(success == initialStock && fail == totalRequests-initialStock,
		fmt.Sprintf("exactly %d check-outs succeeded, %d rejected", initialStock, totalRequests-initialStock),
		fmt.Sprintf("expected %d/%d, got %d/%d", initialStock, totalRequests-initialStock, success, fail))

	if failed {
		os.Exit(1)
	}
}
