package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido. Flujo nominal: Pending → Confirmed → Preparing → Ready →
// Completed, con Cancelled alcanzable desde cualquier estado no terminal.
// La máquina de estados NO impone adyacencia: cualquier literal reconocido se
// acepta desde cualquier estado actual, incluidos los terminales. Endurecer
// esto cambiaría el comportamiento observable del sistema original.
const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusPreparing = "Preparing"
	OrderStatusReady     = "Ready"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

// OrderStatuses el conjunto cerrado de literales válidos, en orden nominal.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// IsValidOrderStatus comparación exacta contra el conjunto cerrado; cualquier
// otra cadena (mayúsculas distintas incluidas) se rechaza.
func IsValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Estados de pago.
const (
	PaymentStatusPending  = "Pending"
	PaymentStatusPaid     = "Paid"
	PaymentStatusRefunded = "Refunded"
)

// Order pedido con snapshot denormalizado del cliente. Los campos Customer*
// son copias al momento del pedido, no una referencia viva.
// Invariante por construcción: TotalAmount = SubTotal + TaxAmount (no se
// revalida en lecturas; ver DESIGN.md).
type Order struct {
	ID               int64
	OrderNumber      string // único, visible externamente
	CustomerName     string
	CustomerPhone    string
	CustomerWhatsApp string
	CustomerAddress  string
	OrderStatus      string
	PaymentStatus    string
	PaymentMethod    string // Cash, Card, Online
	SubTotal         decimal.Decimal
	TaxAmount        decimal.Decimal
	TotalAmount      decimal.Decimal
	Notes            string
	OrderDate        time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Items []OrderItem
}

// OrderItem línea de pedido con snapshot del producto al momento de ordenar.
// Copia por valor deliberada: los pedidos históricos no mutan aunque el menú
// cambie después. Nunca se resuelve con un join al producto vivo.
type OrderItem struct {
	ID                 int64
	OrderID            int64
	ProductID          int64
	ProductCode        string
	ProductNameEn      string
	ProductNameAr      string
	Size               string
	UnitPrice          decimal.Decimal
	Quantity           int
	CustomizationTotal decimal.Decimal
	ItemTotal          decimal.Decimal
	Flavor             string
	CreatedAt          time.Time
}

// OrderSummary vista resumida para listados de administración.
type OrderSummary struct {
	ID            int64
	OrderNumber   string
	CustomerName  string
	CustomerPhone string
	OrderStatus   string
	TotalAmount   decimal.Decimal
	ItemCount     int
	OrderDate     time.Time
}
