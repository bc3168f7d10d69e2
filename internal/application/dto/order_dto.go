package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderItemRequest línea de pedido por código de producto y tamaño.
type CreateOrderItemRequest struct {
	ProductCode            string  `json:"productCode" validate:"required"`
	Size                   string  `json:"size" validate:"required"`
	Quantity               int     `json:"quantity" validate:"required,min=1"`
	Flavor                 string  `json:"flavor"`
	CustomizationOptionIDs []int64 `json:"customizationOptionIds"`
}

// CreateOrderRequest entrada para crear un pedido completo.
type CreateOrderRequest struct {
	CustomerName     string                   `json:"customerName" validate:"required,min=1,max=200"`
	CustomerPhone    string                   `json:"customerPhone" validate:"required"`
	CustomerWhatsApp string                   `json:"customerWhatsApp"`
	DeliveryAddress  string                   `json:"deliveryAddress"`
	PaymentMethod    string                   `json:"paymentMethod"`
	TaxAmount        decimal.Decimal          `json:"taxAmount"`
	Notes            string                   `json:"notes"`
	Items            []CreateOrderItemRequest `json:"items" validate:"required,min=1"`
}

// UpdateOrderStatusRequest cambio de estado de un pedido.
type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus" validate:"required"`
}

// OrderItemResponse línea de pedido con los datos del producto congelados
// al momento de la compra.
type OrderItemResponse struct {
	OrderItemID        int64           `json:"orderItemId"`
	ProductID          int64           `json:"productId"`
	ProductCode        string          `json:"productCode"`
	ProductNameEn      string          `json:"productNameEn"`
	ProductNameAr      string          `json:"productNameAr"`
	Size               string          `json:"size"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	Quantity           int             `json:"quantity"`
	CustomizationTotal decimal.Decimal `json:"customizationTotal"`
	ItemTotal          decimal.Decimal `json:"itemTotal"`
	Flavor             string          `json:"flavor,omitempty"`
}

// OrderResponse pedido completo con sus líneas.
type OrderResponse struct {
	OrderID          int64               `json:"orderId"`
	OrderNumber      string              `json:"orderNumber"`
	CustomerName     string              `json:"customerName"`
	CustomerPhone    string              `json:"customerPhone"`
	CustomerWhatsApp string              `json:"customerWhatsApp,omitempty"`
	DeliveryAddress  string              `json:"deliveryAddress,omitempty"`
	OrderStatus      string              `json:"orderStatus"`
	PaymentStatus    string              `json:"paymentStatus"`
	PaymentMethod    string              `json:"paymentMethod,omitempty"`
	SubTotal         decimal.Decimal     `json:"subTotal"`
	TaxAmount        decimal.Decimal     `json:"taxAmount"`
	TotalAmount      decimal.Decimal     `json:"totalAmount"`
	Notes            string              `json:"notes,omitempty"`
	OrderDate        time.Time           `json:"orderDate"`
	Items            []OrderItemResponse `json:"items"`
}

// OrderSummaryResponse fila liviana para listados.
type OrderSummaryResponse struct {
	OrderID       int64           `json:"orderId"`
	OrderNumber   string          `json:"orderNumber"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	OrderStatus   string          `json:"orderStatus"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	ItemCount     int             `json:"itemCount"`
	OrderDate     time.Time       `json:"orderDate"`
}
