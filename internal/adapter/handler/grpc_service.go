package handler

import (
	"context"

	"google.golang.org/grpc"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

const InventoryServiceName = "inventory.v1.InventoryService"

type ListItemsRequest struct {
	SearchTerm   string `json:"searchTerm,omitempty"`
	DepartmentID string `json:"departmentId,omitempty"`
}

type LowStockRequest struct{}

type ItemResponse struct {
	Item domain.InventoryItem `json:"item"`
}

type ItemsResponse struct {
	Items []domain.InventoryItem `json:"items"`
}

type DepartmentResponse struct {
	Department domain.Department `json:"department"`
}

type DeleteDepartmentRequest struct {
	ID string `json:"id"`
}

type DeleteDepartmentResponse struct{}

type TransactionResponse struct {
	Transaction domain.Transaction `json:"transaction"`
	Message     string             `json:"message"`
}

// InventoryServer is the server API for inventory.v1.InventoryService.
type InventoryServer interface {
	AddItem(context.Context, *ItemRequest) (*ItemResponse, error)
	ListItems(context.Context, *ListItemsRequest) (*ItemsResponse, error)
	LowStockItems(context.Context, *LowStockRequest) (*ItemsResponse, error)
	AddDepartment(context.Context, *DepartmentRequest) (*DepartmentResponse, error)
	DeleteDepartment(context.Context, *DeleteDepartmentRequest) (*DeleteDepartmentResponse, error)
	CommitTransaction(context.Context, *TransactionHTTPRequest) (*TransactionResponse, error)
}

var InventoryServiceDesc = grpc.ServiceDesc{
	ServiceName: InventoryServiceName,
	HandlerType: (*InventoryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddItem", Handler: unary("AddItem", InventoryServer.AddItem)},
		{MethodName: "ListItems", Handler: unary("ListItems", InventoryServer.ListItems)},
		{MethodName: "LowStockItems", Handler: unary("LowStockItems", InventoryServer.LowStockItems)},
		{MethodName: "AddDepartment", Handler: unary("AddDepartment", InventoryServer.AddDepartment)},
		{MethodName: "DeleteDepartment", Handler: unary("DeleteDepartment", InventoryServer.DeleteDepartment)},
		{MethodName: "CommitTransaction", Handler: unary("CommitTransaction", InventoryServer.CommitTransaction)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "inventory/v1/inventory.proto",
}

func RegisterInventoryServer(s grpc.ServiceRegistrar, srv InventoryServer) {
	s.RegisterService(&InventoryServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + InventoryServiceName + "/" + method
}

func unary[Req, Resp any](method string, call func(InventoryServer, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(InventoryServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(InventoryServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// InventoryClient calls inventory.v1.InventoryService using the JSON codec.
type InventoryClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryClient(cc grpc.ClientConnInterface) *InventoryClient {
	return &InventoryClient{cc: cc}
}

func (c *InventoryClient) AddItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*ItemResponse, error) {
	return invoke[ItemResponse](ctx, c.cc, "AddItem", in, opts)
}

func (c *InventoryClient) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ItemsResponse, error) {
	return invoke[ItemsResponse](ctx, c.cc, "ListItems", in, opts)
}

func (c *InventoryClient) LowStockItems(ctx context.Context, in *LowStockRequest, opts ...grpc.CallOption) (*ItemsResponse, error) {
	return invoke[ItemsResponse](ctx, c.cc, "LowStockItems", in, opts)
}

func (c *InventoryClient) AddDepartment(ctx context.Context, in *DepartmentRequest, opts ...grpc.CallOption) (*DepartmentResponse, error) {
	return invoke[DepartmentResponse](ctx, c.cc, "AddDepartment", in, opts)
}

func (c *InventoryClient) DeleteDepartment(ctx context.Context, in *DeleteDepartmentRequest, opts ...grpc.CallOption) (*DeleteDepartmentResponse, error) {
	return invoke[DeleteDepartmentResponse](ctx, c.cc, "DeleteDepartment", in, opts)
}

func (c *InventoryClient) CommitTransaction(ctx context.Context, in *TransactionHTTPRequest, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invoke[TransactionResponse](ctx, c.cc, "CommitTransaction", in, opts)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
