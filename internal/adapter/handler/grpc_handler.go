package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
	"github.com/rl1809/inventory-tracker/internal/core/query"
	"github.com/rl1809/inventory-tracker/internal/core/service"
)

type GRPCHandler struct {
	inventory *service.InventoryService
	logger    zerolog.Logger
}

func NewGRPCHandler(inventory *service.InventoryService, logger zerolog.Logger) *GRPCHandler {
	return &GRPCHandler{
		inventory: inventory,
		logger:    logger.With().Str("component", "grpc").Logger(),
	}
}

func (h *GRPCHandler) AddItem(ctx context.Context, req *ItemRequest) (*ItemResponse, error) {
	item, err := h.inventory.AddItem(req.Draft())
	if err != nil {
		return nil, h.rpcError(err)
	}
	return &ItemResponse{Item: item}, nil
}

// ListItems filters with the request's own criteria, leaving the stored
// view filters alone.
func (h *GRPCHandler) ListItems(ctx context.Context, req *ListItemsRequest) (*ItemsResponse, error) {
	state := h.inventory.Snapshot()
	state.SearchTerm = req.SearchTerm
	state.DepartmentFilter = req.DepartmentID
	return &ItemsResponse{Items: query.FilteredItems(state)}, nil
}

func (h *GRPCHandler) LowStockItems(ctx context.Context, _ *LowStockRequest) (*ItemsResponse, error) {
	return &ItemsResponse{Items: h.inventory.LowStockItems()}, nil
}

func (h *GRPCHandler) AddDepartment(ctx context.Context, req *DepartmentRequest) (*DepartmentResponse, error) {
	dept, err := h.inventory.AddDepartment(req.Name, req.Notes)
	if err != nil {
		return nil, h.rpcError(err)
	}
	return &DepartmentResponse{Department: dept}, nil
}

func (h *GRPCHandler) DeleteDepartment(ctx context.Context, req *DeleteDepartmentRequest) (*DeleteDepartmentResponse, error) {
	if err := h.inventory.DeleteDepartment(req.ID); err != nil {
		return nil, h.rpcError(err)
	}
	return &DeleteDepartmentResponse{}, nil
}

func (h *GRPCHandler) CommitTransaction(ctx context.Context, req *TransactionHTTPRequest) (*TransactionResponse, error) {
	tx, err := h.inventory.CommitTransaction(req.Request())
	if err != nil {
		return nil, h.rpcError(err)
	}

	verb := "Added"
	if tx.Type == domain.TransactionCheckOut {
		verb = "Removed"
	}
	return &TransactionResponse{
		Transaction: tx,
		Message:     fmt.Sprintf("Transaction processed: %s %d items", verb, tx.Quantity),
	}, nil
}

func (h *GRPCHandler) rpcError(err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return status.Error(codes.InvalidArgument, verr.Error())
	}
	h.logger.Error().Err(err).Msg("rpc failed")
	return status.Error(codes.Internal, "internal error")
}
