package handler

import (
	"context"
	"net"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/rl1809/inventory-tracker/internal/adapter/idgen"
	"github.com/rl1809/inventory-tracker/internal/core/domain"
	"github.com/rl1809/inventory-tracker/internal/core/service"
)

func newGRPCClient(t *testing.T) (*InventoryClient, *service.InventoryService) {
	t.Helper()
	inventory := service.NewInventoryService(domain.SeedState(), idgen.NewUUID())

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	RegisterInventoryServer(server, NewGRPCHandler(inventory, zerolog.Nop()))
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewInventoryClient(conn), inventory
}

func TestGRPC_AddItem(t *testing.T) {
	client, inventory := newGRPCClient(t)
	ctx := context.Background()

	resp, err := client.AddItem(ctx, &ItemRequest{
		SKU: "TOOL002", Name: "Hammer", DepartmentID: "3", Unit: "pcs", Quantity: 4, ReorderPoint: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tools", resp.Item.Department)

	_, ok := inventory.Item("TOOL002")
	assert.True(t, ok)
}

func TestGRPC_AddItem_InvalidArgument(t *testing.T) {
	client, _ := newGRPCClient(t)

	_, err := client.AddItem(context.Background(), &ItemRequest{SKU: "ELEC001", Name: "Dup", DepartmentID: "1", Unit: "pcs"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGRPC_ListItems(t *testing.T) {
	client, inventory := newGRPCClient(t)
	ctx := context.Background()

	all, err := client.ListItems(ctx, &ListItemsRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 3)

	tools, err := client.ListItems(ctx, &ListItemsRequest{DepartmentID: "3"})
	require.NoError(t, err)
	require.Len(t, tools.Items, 1)
	assert.Equal(t, "TOOL001", tools.Items[0].SKU)

	// request filters are not stored
	assert.Empty(t, inventory.Snapshot().DepartmentFilter)
}

func TestGRPC_LowStockItems(t *testing.T) {
	client, _ := newGRPCClient(t)

	resp, err := client.LowStockItems(context.Background(), &LowStockRequest{})
	require.NoError(t, err)
	skus := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		skus = append(skus, item.SKU)
	}
	assert.Equal(t, []string{"OFF001", "TOOL001"}, skus)
}

func TestGRPC_Departments(t *testing.T) {
	client, inventory := newGRPCClient(t)
	ctx := context.Background()

	resp, err := client.AddDepartment(ctx, &DepartmentRequest{Name: "Garden"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Department.ID)

	_, err = client.DeleteDepartment(ctx, &DeleteDepartmentRequest{ID: "2"})
	require.NoError(t, err)
	_, ok := inventory.Item("OFF001")
	assert.False(t, ok)
	assert.Len(t, inventory.Departments(), 3)
}

func TestGRPC_CommitTransaction(t *testing.T) {
	client, inventory := newGRPCClient(t)
	ctx := context.Background()

	resp, err := client.CommitTransaction(ctx, &TransactionHTTPRequest{
		SKU: "OFF001", Quantity: 1000, Type: domain.TransactionCheckIn, User: "Dana",
	})
	require.NoError(t, err)
	assert.Equal(t, "Transaction processed: Added 1000 items", resp.Message)
	assert.Equal(t, "A4 Paper", resp.Transaction.ItemName)

	item, _ := inventory.Item("OFF001")
	assert.Equal(t, 1005, item.Quantity)

	_, err = client.CommitTransaction(ctx, &TransactionHTTPRequest{
		SKU: "OFF001", Quantity: 2000, Type: domain.TransactionCheckOut,
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
