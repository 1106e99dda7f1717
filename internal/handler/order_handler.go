package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ゲスト向けの注文API。認証なし（テーブルのQRから直接叩かれる）。
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderItemOptionRequest struct {
	Label      string `json:"label" validate:"required"`
	PriceDelta int64  `json:"price_delta"`
}

type OrderItemRequest struct {
	ProductID int64                    `json:"product_id" validate:"required,gt=0"`
	Name      string                   `json:"name" validate:"required"`
	Price     int64                    `json:"price" validate:"gte=0"`
	Quantity  int64                    `json:"quantity" validate:"required,gte=1"`
	Options   []OrderItemOptionRequest `json:"options" validate:"dive"`
}

type OrderCreateRequest struct {
	TableNo         int                `json:"table_no" validate:"required,gt=0"`
	CustomerName    string             `json:"customer_name" validate:"required"`
	CustomerContact string             `json:"customer_contact" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount     int64              `json:"total_amount" validate:"gte=0"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", h.create)
	//ゲストの注文トラッカーがポーリングで叩く
	e.GET("/orders/:id", h.detail)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
	}

	items := make([]usecase.PlaceOrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		opts := make([]usecase.PlaceOrderItemOptionInput, 0, len(it.Options))
		for _, o := range it.Options {
			opts = append(opts, usecase.PlaceOrderItemOptionInput{Label: o.Label, PriceDelta: o.PriceDelta})
		}
		items = append(items, usecase.PlaceOrderItemInput{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Options:   opts,
		})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		TableNo:         req.TableNo,
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		Items:           items,
		TotalAmount:     req.TotalAmount,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
