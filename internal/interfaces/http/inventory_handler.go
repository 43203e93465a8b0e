package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del libro de inventario:
// registro de transacciones, traslados, saldos y reconteos.
type InventoryHandler struct {
	ledger  *inventory.LedgerUseCase
	reports *inventory.ReportUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.LedgerUseCase, reports *inventory.ReportUseCase) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, reports: reports}
}

// mapDomainError traduce errores de dominio a respuestas HTTP.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrInvalidTransactionType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TRANSACTION_TYPE", Message: "tipo de transacción desconocido"})
	case errors.Is(err, domain.ErrReferential):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o ubicación no encontrado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro duplicado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// parseID lee un parámetro de ruta como id positivo.
func parseID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryID lee un query param opcional como *int64.
func queryID(c *fiber.Ctx, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, false
	}
	return &id, true
}

// queryTime lee un query param opcional RFC3339 como *time.Time.
func queryTime(c *fiber.Ctx, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// RecordTransaction godoc
// @Summary      Registrar transacción de inventario
// @Description  Apendiza un asiento al libro y actualiza el saldo proyectado en
//
//	la misma transacción. La cantidad es siempre positiva; la dirección
//	la fija el signo del tipo de transacción.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordTransactionRequest  true  "product_id, location_id, transaction_type_id, quantity"
// @Success      201   {object}  dto.RecordTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/transactions [post]
func (h *InventoryHandler) RecordTransaction(c *fiber.Ctx) error {
	var in dto.RecordTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	txID, err := h.ledger.RecordTransaction(c.Context(), inventory.TransactionInput{
		ProductID:         in.ProductID,
		LocationID:        in.LocationID,
		TransactionTypeID: in.TransactionTypeID,
		Quantity:          in.Quantity,
		ReferenceNumber:   in.ReferenceNumber,
		Notes:             in.Notes,
		CreatedBy:         in.CreatedBy,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordTransactionResponse{TransactionID: txID})
}

// RecordTransfer godoc
// @Summary      Trasladar stock entre ubicaciones
// @Description  Registra Transfer Out en origen y Transfer In en destino como
//
//	unidad atómica, con una referencia común que enlaza ambos asientos.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "product_id, from_location_id, to_location_id, quantity"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers [post]
func (h *InventoryHandler) RecordTransfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.ledger.RecordTransfer(c.Context(), inventory.TransferInput{
		ProductID:       in.ProductID,
		FromLocationID:  in.FromLocationID,
		ToLocationID:    in.ToLocationID,
		Quantity:        in.Quantity,
		ReferenceNumber: in.ReferenceNumber,
		Notes:           in.Notes,
		CreatedBy:       in.CreatedBy,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransferResponse{
		OutTransactionID: result.OutTransactionID,
		InTransactionID:  result.InTransactionID,
		ReferenceNumber:  result.ReferenceNumber,
	})
}

// GetQuantity godoc
// @Summary      Saldo actual de un producto en una ubicación
// @Tags         inventory
// @Produce      json
// @Param        product_id   path  int  true  "ID del producto"
// @Param        location_id  path  int  true  "ID de la ubicación"
// @Success      200  {object}  dto.QuantityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/levels/{product_id}/{location_id} [get]
func (h *InventoryHandler) GetQuantity(c *fiber.Ctx) error {
	productID, ok := parseID(c, "product_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id inválido"})
	}
	locationID, ok := parseID(c, "location_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id inválido"})
	}
	qty, err := h.ledger.GetQuantity(productID, locationID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.QuantityResponse{ProductID: productID, LocationID: locationID, Quantity: qty})
}

// Recount godoc
// @Summary      Reconteo manual de stock
// @Description  Sobrescribe el saldo proyectado con la cantidad contada
//
//	físicamente, sin pasar por el libro de transacciones.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        product_id   path  int  true  "ID del producto"
// @Param        location_id  path  int  true  "ID de la ubicación"
// @Param        body  body  dto.RecountRequest  true  "quantity, counted_at (opcional)"
// @Success      200  {object}  dto.QuantityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/levels/{product_id}/{location_id} [put]
func (h *InventoryHandler) Recount(c *fiber.Ctx) error {
	productID, ok := parseID(c, "product_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id inválido"})
	}
	locationID, ok := parseID(c, "location_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id inválido"})
	}
	var in dto.RecountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.ledger.SetQuantity(productID, locationID, in.Quantity, in.CountedAt); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.QuantityResponse{ProductID: productID, LocationID: locationID, Quantity: in.Quantity})
}

// Levels godoc
// @Summary      Niveles actuales de inventario
// @Tags         inventory
// @Produce      json
// @Param        product_id   query  int  false  "Filtrar por producto"
// @Param        location_id  query  int  false  "Filtrar por ubicación"
// @Success      200  {array}   dto.LevelDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/levels [get]
func (h *InventoryHandler) Levels(c *fiber.Ctx) error {
	productID, ok := queryID(c, "product_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id inválido"})
	}
	locationID, ok := queryID(c, "location_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id inválido"})
	}
	list, err := h.reports.Levels(c.Context(), productID, locationID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}

// History godoc
// @Summary      Historial de transacciones
// @Description  Más reciente primero. Filtros opcionales por producto,
//
//	ubicación y rango de fechas (RFC3339); limit por defecto 100.
//
// @Tags         inventory
// @Produce      json
// @Param        product_id   query  int     false  "Filtrar por producto"
// @Param        location_id  query  int     false  "Filtrar por ubicación"
// @Param        from         query  string  false  "Fecha desde (RFC3339)"
// @Param        to           query  string  false  "Fecha hasta (RFC3339)"
// @Param        limit        query  int     false  "Máximo de filas (default 100)"
// @Success      200  {array}   dto.TransactionHistoryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/transactions [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	productID, ok := queryID(c, "product_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id inválido"})
	}
	locationID, ok := queryID(c, "location_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id inválido"})
	}
	from, ok := queryTime(c, "from")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339)"})
	}
	to, ok := queryTime(c, "to")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339)"})
	}
	list, err := h.reports.History(c.Context(), inventory.HistoryInput{
		ProductID:  productID,
		LocationID: locationID,
		From:       from,
		To:         to,
		Limit:      c.QueryInt("limit"),
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}

// LowStock godoc
// @Summary      Lista de reposición
// @Description  Productos activos con stock agregado bajo su mínimo, con la
//
//	cantidad sugerida de pedido, orden descendente por cantidad a pedir.
//
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   dto.ReorderItemDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.reports.LowStock(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}

// TransactionTypes godoc
// @Summary      Registro de tipos de transacción
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   dto.TransactionTypeDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/transaction-types [get]
func (h *InventoryHandler) TransactionTypes(c *fiber.Ctx) error {
	list, err := h.reports.TransactionTypes(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}
