package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gitcsdev/drcoffee-api/internal/application/dto"
	"github.com/gitcsdev/drcoffee-api/internal/domain"
	"github.com/gitcsdev/drcoffee-api/internal/domain/entity"
	"github.com/gitcsdev/drcoffee-api/internal/domain/repository"
	"github.com/gitcsdev/drcoffee-api/pkg/logger"
)

// OrderUseCase casos de uso de pedidos: alta pública con snapshot de precios,
// consulta administrativa y cambio de estado.
type OrderUseCase struct {
	orderRepo  repository.OrderRepository
	optionRepo repository.CustomizationOptionRepository
	txRunner   OrderTxRunner
	log        *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, optionRepo repository.CustomizationOptionRepository, txRunner OrderTxRunner, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, optionRepo: optionRepo, txRunner: txRunner, log: log}
}

// Create crea un pedido completo dentro de una transacción. Cada línea congela
// código, nombres y precio unitario del producto al momento del pedido; los
// pedidos históricos no cambian aunque el menú cambie después.
// Totales por construcción: itemTotal = unitPrice×qty + customizationTotal,
// subTotal = Σ itemTotal, totalAmount = subTotal + taxAmount.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.CustomerPhone) == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.TaxAmount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Order
	err := uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) error {
		now := time.Now()
		order := &entity.Order{
			CustomerName:     strings.TrimSpace(in.CustomerName),
			CustomerPhone:    strings.TrimSpace(in.CustomerPhone),
			CustomerWhatsApp: in.CustomerWhatsApp,
			CustomerAddress:  in.DeliveryAddress,
			OrderStatus:      entity.OrderStatusPending,
			PaymentStatus:    entity.PaymentStatusPending,
			PaymentMethod:    in.PaymentMethod,
			TaxAmount:        in.TaxAmount,
			Notes:            in.Notes,
			OrderDate:        now,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		subTotal := decimal.Zero
		for _, it := range in.Items {
			if it.Quantity < 1 {
				return domain.ErrInvalidInput
			}
			product, err := productRepo.GetByCode(it.ProductCode)
			if err != nil {
				return err
			}
			if product == nil || !product.IsActive {
				return domain.ErrInvalidInput
			}
			price := product.PriceForSize(it.Size)
			if price == nil || !price.IsActive {
				return domain.ErrInvalidInput
			}
			qty := decimal.NewFromInt(int64(it.Quantity))
			customizationTotal, err := uc.sumCustomizations(product, it.CustomizationOptionIDs, qty)
			if err != nil {
				return err
			}
			itemTotal := price.Price.Mul(qty).Add(customizationTotal)
			order.Items = append(order.Items, entity.OrderItem{
				ProductID:          product.ID,
				ProductCode:        product.ProductCode,
				ProductNameEn:      product.NameEn,
				ProductNameAr:      product.NameAr,
				Size:               it.Size,
				UnitPrice:          price.Price,
				Quantity:           it.Quantity,
				CustomizationTotal: customizationTotal,
				ItemTotal:          itemTotal,
				Flavor:             it.Flavor,
				CreatedAt:          now,
			})
			subTotal = subTotal.Add(itemTotal)
		}
		order.SubTotal = subTotal
		order.TotalAmount = subTotal.Add(order.TaxAmount)

		number, err := uc.newOrderNumber(orderRepo, now)
		if err != nil {
			return err
		}
		order.OrderNumber = number

		if err := orderRepo.Create(order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("order_number", created.OrderNumber).Int("items", len(created.Items)).Msg("pedido creado")
	return toOrderResponse(created), nil
}

// GetByID obtiene un pedido con sus líneas. (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(id int64) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// GetByNumber obtiene un pedido por su número visible. (nil, nil) si no existe.
func (uc *OrderUseCase) GetByNumber(orderNumber string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List resúmenes de pedidos; status vacío lista todos.
func (uc *OrderUseCase) List(status string) ([]*dto.OrderSummaryResponse, error) {
	var (
		summaries []*entity.OrderSummary
		err       error
	)
	if status == "" {
		summaries, err = uc.orderRepo.ListSummaries()
	} else {
		if !entity.IsValidOrderStatus(status) {
			return nil, domain.ErrInvalidInput
		}
		summaries, err = uc.orderRepo.ListSummariesByStatus(status)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, &dto.OrderSummaryResponse{
			OrderID:       s.ID,
			OrderNumber:   s.OrderNumber,
			CustomerName:  s.CustomerName,
			CustomerPhone: s.CustomerPhone,
			OrderStatus:   s.OrderStatus,
			TotalAmount:   s.TotalAmount,
			ItemCount:     s.ItemCount,
			OrderDate:     s.OrderDate,
		})
	}
	return out, nil
}

// UpdateStatus cambia el estado de un pedido. Cualquier literal del conjunto
// cerrado se acepta desde cualquier estado actual, incluidos los terminales.
// Un literal desconocido y un id inexistente producen el mismo ErrNotFound:
// el cliente no distingue entre "pedido no existe" y "estado inválido".
func (uc *OrderUseCase) UpdateStatus(id int64, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if !entity.IsValidOrderStatus(in.OrderStatus) {
		return nil, domain.ErrNotFound
	}
	found, err := uc.orderRepo.UpdateStatus(id, in.OrderStatus)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	uc.log.Info().Int64("order_id", id).Str("status", in.OrderStatus).Msg("estado de pedido actualizado")
	return uc.GetByID(id)
}

// sumCustomizations total de personalizaciones de una línea: Σ precio de
// opción × cantidad de la línea. Las opciones deben existir, estar activas y
// estar vinculadas a un producto personalizable.
func (uc *OrderUseCase) sumCustomizations(product *entity.Product, optionIDs []int64, qty decimal.Decimal) (decimal.Decimal, error) {
	total := decimal.Zero
	if len(optionIDs) == 0 {
		return total, nil
	}
	if !product.IsCustomizable {
		return decimal.Zero, domain.ErrInvalidInput
	}
	for _, id := range optionIDs {
		option, err := uc.optionRepo.GetByID(id)
		if err != nil {
			return decimal.Zero, err
		}
		if option == nil || !option.IsActive {
			return decimal.Zero, domain.ErrInvalidInput
		}
		total = total.Add(option.Price.Mul(qty))
	}
	return total, nil
}

// newOrderNumber genera un número visible único: ORD-fecha-sufijo aleatorio.
// Reintenta ante colisión (improbable) contra la tabla.
func (uc *OrderUseCase) newOrderNumber(orderRepo repository.OrderRepository, now time.Time) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
		number := fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
		exists, err := orderRepo.NumberExists(number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", fmt.Errorf("no se pudo generar un número de pedido único")
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			OrderItemID:        it.ID,
			ProductID:          it.ProductID,
			ProductCode:        it.ProductCode,
			ProductNameEn:      it.ProductNameEn,
			ProductNameAr:      it.ProductNameAr,
			Size:               it.Size,
			UnitPrice:          it.UnitPrice,
			Quantity:           it.Quantity,
			CustomizationTotal: it.CustomizationTotal,
			ItemTotal:          it.ItemTotal,
			Flavor:             it.Flavor,
		})
	}
	return &dto.OrderResponse{
		OrderID:          o.ID,
		OrderNumber:      o.OrderNumber,
		CustomerName:     o.CustomerName,
		CustomerPhone:    o.CustomerPhone,
		CustomerWhatsApp: o.CustomerWhatsApp,
		DeliveryAddress:  o.CustomerAddress,
		OrderStatus:      o.OrderStatus,
		PaymentStatus:    o.PaymentStatus,
		PaymentMethod:    o.PaymentMethod,
		SubTotal:         o.SubTotal,
		TaxAmount:        o.TaxAmount,
		TotalAmount:      o.TotalAmount,
		Notes:            o.Notes,
		OrderDate:        o.OrderDate,
		Items:            items,
	}
}
