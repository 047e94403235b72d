package orderControllers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mariam168/smart-shop-sub001/logger"
	"github.com/mariam168/smart-shop-sub001/middleware"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/pricing"
	"github.com/mariam168/smart-shop-sub001/response"
	"github.com/mariam168/smart-shop-sub001/store"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cart is empty")

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	List(ctx context.Context) ([]models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	Find(ctx context.Context, key string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id uint, status models.PaymentStatus) error
	Delete(ctx context.Context, id uint) error
}

type CartStore interface {
	FindByUser(ctx context.Context, userID string) (*models.Cart, error)
	Clear(ctx context.Context, userID string) error
}

type ProductStore interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
}

type Repricer interface {
	Reprice(ctx context.Context, submitted []pricing.SubmittedItem, now time.Time) ([]models.CartItem, error)
}

// Broadcaster is notified of every placed order.
type Broadcaster interface {
	Broadcast(order models.Order)
}

// -------- Request Structs --------

type PlaceOrderRequest struct {
	PaymentMethod string `json:"payment_method"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// -------- Helpers --------

// Generate unique order reference, e.g. 20250908130500-<uuid4>
func generateOrderRef(now time.Time) string {
	return now.Format("20060102150405") + "-" + uuid.NewString()
}

// ShippingCost charges 30 per started 30 units of weight above the first.
func ShippingCost(totalWeight float64) float64 {
	if totalWeight <= 0 {
		return 0
	}
	return float64(int(math.Ceil((totalWeight-1)/30.0))) * 30.0
}

// BuildOrder turns repriced cart items into an order. Weights come from the
// current product documents; a product missing from weights weighs nothing.
func BuildOrder(userID string, items []models.CartItem, products map[primitive.ObjectID]models.Product, now time.Time) models.Order {
	subtotal, total, weight := decimal.Zero, decimal.Zero, decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(items))

	for _, it := range items {
		qty := decimal.NewFromInt(int64(it.Quantity))
		subtotal = subtotal.Add(decimal.NewFromFloat(it.OriginalPrice).Mul(qty))
		total = total.Add(decimal.NewFromFloat(it.FinalPrice).Mul(qty))

		p := products[it.Product]
		weight = weight.Add(decimal.NewFromFloat(p.Weight).Mul(qty))

		var variantID string
		if it.SelectedVariant != nil {
			variantID = it.SelectedVariant.Hex()
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID:      it.Product.Hex(),
			VariantID:      variantID,
			ProductEName:   it.Name.EN,
			ProductArName:  it.Name.AR,
			ProductImage:   it.Image,
			VariantDetails: it.VariantDetailsText,
			OriginalPrice:  it.OriginalPrice,
			FinalPrice:     it.FinalPrice,
			Weight:         p.Weight,
			Quantity:       it.Quantity,
		})
	}

	w, _ := weight.Float64()
	shipping := decimal.NewFromFloat(ShippingCost(w))
	sub, _ := subtotal.Round(2).Float64()
	disc, _ := subtotal.Sub(total).Round(2).Float64()
	amount, _ := total.Add(shipping).Round(2).Float64()
	ship, _ := shipping.Float64()

	return models.Order{
		OrderRef:      generateOrderRef(now),
		UserID:        userID,
		Items:         orderItems,
		Subtotal:      sub,
		Discount:      disc,
		ShippingCost:  ship,
		TotalAmount:   amount,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		CreatedAt:     now,
	}
}

// -------- Handlers --------

// POST /user/orders/checkout
// Places an order from the user's stored cart. Prices are recomputed against
// the promotions effective now; the client's totals are never trusted.
func PlaceOrderHandler(orders OrderStore, carts CartStore, products ProductStore, repricer Repricer, hub Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		if req.PaymentMethod == "" {
			req.PaymentMethod = "cod"
		}

		ctx := c.Request.Context()
		userID := middleware.UserID(c)
		now := time.Now()

		cart, err := carts.FindByUser(ctx, userID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			response.Error(c, err, "Failed to fetch cart")
			return
		}
		if cart == nil || len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": ErrEmptyCart.Error()})
			return
		}

		items, err := repricer.Reprice(ctx, pricing.Submitted(cart.Items), now)
		if err != nil {
			response.Error(c, err, "Failed to price cart")
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": ErrEmptyCart.Error()})
			return
		}

		ids := make([]primitive.ObjectID, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.Product)
		}
		found, err := products.FindByIDs(ctx, ids)
		if err != nil {
			response.Error(c, err, "Failed to fetch products")
			return
		}
		byID := make(map[primitive.ObjectID]models.Product, len(found))
		for _, p := range found {
			byID[p.ID] = p
		}

		order := BuildOrder(userID, items, byID, now)
		order.PaymentMethod = req.PaymentMethod
		if err := orders.Create(ctx, &order); err != nil {
			response.Error(c, err, "Failed to place order")
			return
		}
		if err := carts.Clear(ctx, userID); err != nil {
			logger.From(c).Warn("cart not cleared after order", zap.String("order_ref", order.OrderRef), zap.Error(err))
		}
		hub.Broadcast(order)

		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetMyOrdersHandler(orders OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListByUser(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			response.Error(c, err, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, nonNil(list))
	}
}

// GET /admin/orders
func GetAllOrdersHandler(orders OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.List(c.Request.Context())
		if err != nil {
			response.Error(c, err, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, nonNil(list))
	}
}

// GET /admin/orders/user/:userID
func GetUserOrdersHandler(orders OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListByUser(c.Request.Context(), c.Param("userID"))
		if err != nil {
			response.Error(c, err, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, nonNil(list))
	}
}

// GET /admin/orders/:orderID
// orderID may be the numeric id or the order reference.
func GetOrderHandler(orders OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := orders.Find(c.Request.Context(), c.Param("orderID"))
		if err != nil {
			response.Error(c, err, "Failed to fetch order")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(orders OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			response.Error(c, err, "Invalid status")
			return
		}
		if err := orders.UpdateStatus(c.Request.Context(), id, status); err != nil {
			response.Error(c, err, "Failed to update order status")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "status": status})
	}
}

// PUT /admin/orders/:orderID/payment-status
func UpdatePaymentStatusHandler(orders OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := models.ParsePaymentStatus(req.PaymentStatus)
		if err != nil {
			response.Error(c, err, "Invalid payment status")
			return
		}
		if err := orders.UpdatePaymentStatus(c.Request.Context(), id, status); err != nil {
			response.Error(c, err, "Failed to update payment status")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated", "payment_status": status})
	}
}

// DELETE /admin/orders/:orderID
func DeleteOrderHandler(orders OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		if err := orders.Delete(c.Request.Context(), id); err != nil {
			response.Error(c, err, "Failed to delete order")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}

// orderIDParam reads the numeric :orderID. Anything else is a 400.
func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("orderID"), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return 0, false
	}
	return uint(id), true
}

func nonNil(list []models.Order) []models.Order {
	if list == nil {
		return []models.Order{}
	}
	return list
}
