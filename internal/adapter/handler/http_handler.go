package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rl1809/inventory-tracker/internal/adapter/export"
	"github.com/rl1809/inventory-tracker/internal/core/domain"
	"github.com/rl1809/inventory-tracker/internal/core/service"
)

type HTTPHandler struct {
	inventory *service.InventoryService
	exporter  *export.Exporter
	logger    zerolog.Logger
	now       func() time.Time
}

type APIResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	Data    any               `json:"data,omitempty"`
}

func NewHTTPHandler(inventory *service.InventoryService, exporter *export.Exporter, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		inventory: inventory,
		exporter:  exporter,
		logger:    logger.With().Str("component", "http").Logger(),
		now:       time.Now,
	}
}

// NewRouter builds the echo instance serving the API, health and metrics.
func NewRouter(h *HTTPHandler, gatherer prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.logger.Debug().Str("method", v.Method).Str("uri", v.URI).Int("status", v.Status).Msg("request")
			return nil
		},
	}))

	e.GET("/health", h.HealthCheck)
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	h.Register(e.Group("/api"))
	return e
}

func (h *HTTPHandler) Register(g *echo.Group) {
	g.GET("/items", h.ListItems)
	g.GET("/items/low-stock", h.LowStockItems)
	g.GET("/items/:sku", h.GetItem)
	g.POST("/items", h.AddItem)
	g.PATCH("/items/:sku", h.UpdateItem)
	g.DELETE("/items/:sku", h.DeleteItem)

	g.GET("/departments", h.ListDepartments)
	g.POST("/departments", h.AddDepartment)
	g.PATCH("/departments/:id", h.UpdateDepartment)
	g.DELETE("/departments/:id", h.DeleteDepartment)

	g.GET("/transactions", h.ListTransactions)
	g.POST("/transactions", h.CommitTransaction)

	g.PUT("/filters", h.SetFilters)
	g.POST("/refresh", h.Refresh)

	g.GET("/export/inventory", h.DownloadInventory)
	g.GET("/export/transactions", h.DownloadTransactions)
	g.POST("/export", h.Export)
}

func (h *HTTPHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) ListItems(c echo.Context) error {
	return ok(c, h.inventory.FilteredItems())
}

func (h *HTTPHandler) LowStockItems(c echo.Context) error {
	return ok(c, h.inventory.LowStockItems())
}

func (h *HTTPHandler) GetItem(c echo.Context) error {
	item, found := h.inventory.Item(c.Param("sku"))
	if !found {
		return c.JSON(http.StatusNotFound, APIResponse{Success: false, Message: "item not found"})
	}
	return ok(c, item)
}

func (h *HTTPHandler) AddItem(c echo.Context) error {
	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	item, err := h.inventory.AddItem(req.Draft())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, APIResponse{Success: true, Message: "item added", Data: item})
}

func (h *HTTPHandler) UpdateItem(c echo.Context) error {
	var req ItemUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	if err := h.inventory.UpdateItem(c.Param("sku"), req.Update()); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, APIResponse{Success: true, Message: "item updated"})
}

func (h *HTTPHandler) DeleteItem(c echo.Context) error {
	if err := h.inventory.DeleteItem(c.Param("sku")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, APIResponse{Success: true, Message: "item deleted"})
}

func (h *HTTPHandler) ListDepartments(c echo.Context) error {
	return ok(c, h.inventory.Departments())
}

func (h *HTTPHandler) AddDepartment(c echo.Context) error {
	var req DepartmentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	dept, err := h.inventory.AddDepartment(req.Name, req.Notes)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, APIResponse{Success: true, Message: "department added", Data: dept})
}

func (h *HTTPHandler) UpdateDepartment(c echo.Context) error {
	var req domain.DepartmentUpdate
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	if err := h.inventory.UpdateDepartment(c.Param("id"), req); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, APIResponse{Success: true, Message: "department updated"})
}

func (h *HTTPHandler) DeleteDepartment(c echo.Context) error {
	if err := h.inventory.DeleteDepartment(c.Param("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, APIResponse{Success: true, Message: "department deleted"})
}

func (h *HTTPHandler) ListTransactions(c echo.Context) error {
	return ok(c, h.inventory.Transactions())
}

func (h *HTTPHandler) CommitTransaction(c echo.Context) error {
	var req TransactionHTTPRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	tx, err := h.inventory.CommitTransaction(req.Request())
	if err != nil {
		return h.fail(c, err)
	}

	verb := "Added"
	if tx.Type == domain.TransactionCheckOut {
		verb = "Removed"
	}
	return c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: fmt.Sprintf("Transaction processed: %s %d items", verb, tx.Quantity),
		Data:    tx,
	})
}

func (h *HTTPHandler) SetFilters(c echo.Context) error {
	var req FiltersRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	if req.SearchTerm != nil {
		h.inventory.SetSearchTerm(*req.SearchTerm)
	}
	if req.DepartmentFilter != nil {
		h.inventory.SetDepartmentFilter(*req.DepartmentFilter)
	}
	return ok(c, h.inventory.FilteredItems())
}

func (h *HTTPHandler) Refresh(c echo.Context) error {
	h.inventory.Refresh()
	return c.JSON(http.StatusOK, APIResponse{Success: true, Message: "refreshed"})
}

func (h *HTTPHandler) DownloadInventory(c echo.Context) error {
	var buf bytes.Buffer
	if err := export.WriteInventoryCSV(&buf, h.inventory.Snapshot().Items); err != nil {
		return h.fail(c, err)
	}
	return attachment(c, export.InventoryFileName(h.now()), buf.Bytes())
}

func (h *HTTPHandler) DownloadTransactions(c echo.Context) error {
	var buf bytes.Buffer
	if err := export.WriteTransactionsCSV(&buf, h.inventory.Snapshot().Transactions); err != nil {
		return h.fail(c, err)
	}
	return attachment(c, export.TransactionsFileName(h.now()), buf.Bytes())
}

func (h *HTTPHandler) Export(c echo.Context) error {
	ctx := c.Request().Context()

	inventory, err := h.exporter.ExportInventory(ctx)
	if err != nil {
		return h.fail(c, err)
	}
	transactions, err := h.exporter.ExportTransactions(ctx)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, map[string]string{"inventory": inventory, "transactions": transactions})
}

func (h *HTTPHandler) fail(c echo.Context, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: verr.Error(),
			Fields:  verr.Fields,
		})
	}

	h.logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return c.JSON(http.StatusInternalServerError, APIResponse{Success: false, Message: "internal error"})
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

func badRequest(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "invalid request body"})
}

func attachment(c echo.Context, name string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, export.ContentTypeCSV, data)
}
