package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"checkout/internal/observability"
	"checkout/internal/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// --- DTOs ---

type PurchaseRequest struct {
	ProductID        int64  `json:"product"`
	TaxNumber        string `json:"taxNumber"`
	PaymentProcessor string `json:"paymentProcessor"`
	CouponCode       string `json:"couponCode"`
}

type PurchaseResponse struct {
	Success   bool        `json:"success"`
	Price     json.Number `json:"price"`
	Message   string      `json:"message"`
	Reference string      `json:"reference"`
}

// PurchaseResult describes a completed purchase.
type PurchaseResult struct {
	Reference uuid.UUID
	Price     decimal.Decimal
	Processor string
}

// PurchaseEvent is published once a payment has gone through.
type PurchaseEvent struct {
	Type        string      `json:"type"`
	Reference   string      `json:"reference"`
	ProductID   int64       `json:"product_id"`
	CountryCode string      `json:"country_code"`
	Processor   string      `json:"processor"`
	CouponCode  string      `json:"coupon_code,omitempty"`
	Price       json.Number `json:"price"`
	CompletedAt string      `json:"completed_at"`
}

const EventPurchaseCompleted = "purchase.completed"

// --- Interface ---

// ProcessorRegistry resolves a payment method name to its processor.
type ProcessorRegistry interface {
	Get(name string) (payment.Processor, error)
}

// PurchaseNotifier receives completed purchases. Implementations must not block.
type PurchaseNotifier interface {
	PurchaseCompleted(ctx context.Context, event PurchaseEvent)
}

type PurchaseService interface {
	Purchase(ctx context.Context, req PurchaseRequest) (PurchaseResult, error)
}

type purchaseService struct {
	calculator PriceCalculator
	processors ProcessorRegistry
	notifier   PurchaseNotifier
	now        func() time.Time
}

// NewPurchaseService wires the orchestrator. notifier may be nil.
func NewPurchaseService(calculator PriceCalculator, processors ProcessorRegistry, notifier PurchaseNotifier) PurchaseService {
	return &purchaseService{
		calculator: calculator,
		processors: processors,
		notifier:   notifier,
		now:        time.Now,
	}
}

// --- Implementation ---

// Purchase prices the product, rejects non-positive prices, then charges the
// price through the requested processor. Nothing is charged when any earlier
// step fails.
func (s *purchaseService) Purchase(ctx context.Context, req PurchaseRequest) (PurchaseResult, error) {
	log := observability.FromContext(ctx).With(
		zap.Int64("product_id", req.ProductID),
		zap.String("processor", req.PaymentProcessor))

	price, err := s.calculator.Calculate(ctx, CalculatePriceRequest{
		ProductID:  req.ProductID,
		TaxNumber:  req.TaxNumber,
		CouponCode: req.CouponCode,
	})
	if err != nil {
		return PurchaseResult{}, err
	}

	if !price.IsPositive() {
		log.Warn("purchase rejected", zap.String("price", price.StringFixed(MoneyScale)))
		return PurchaseResult{}, &InvalidPurchaseError{Price: price}
	}

	processor, err := s.processors.Get(req.PaymentProcessor)
	if err != nil {
		return PurchaseResult{}, err
	}

	if err := processor.Process(ctx, price); err != nil {
		var failed *payment.PaymentFailedError
		if errors.As(err, &failed) {
			log.Warn("payment failed", zap.String("reason", failed.Reason))
		}
		return PurchaseResult{}, err
	}

	result := PurchaseResult{
		Reference: uuid.New(),
		Price:     price,
		Processor: processor.Name(),
	}
	log.Info("purchase completed",
		zap.String("reference", result.Reference.String()),
		zap.String("price", price.StringFixed(MoneyScale)))

	if s.notifier != nil {
		countryCode, _ := ExtractCountryCode(req.TaxNumber)
		s.notifier.PurchaseCompleted(ctx, PurchaseEvent{
			Type:        EventPurchaseCompleted,
			Reference:   result.Reference.String(),
			ProductID:   req.ProductID,
			CountryCode: countryCode,
			Processor:   result.Processor,
			CouponCode:  strings.TrimSpace(req.CouponCode),
			Price:       MoneyJSON(price),
			CompletedAt: s.now().UTC().Format(time.RFC3339),
		})
	}

	return result, nil
}
