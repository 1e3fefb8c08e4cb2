package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"freshmart/db"
	"freshmart/models"
	"freshmart/mq"
	"freshmart/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderInput is the order placement request body.
type OrderInput struct {
	Items []struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	} `json:"items"`
	DeliveryStreet       string `json:"delivery_street"`
	DeliveryCity         string `json:"delivery_city"`
	DeliveryState        string `json:"delivery_state"`
	DeliveryPostalCode   string `json:"delivery_postal_code"`
	DeliveryCountry      string `json:"delivery_country"`
	DeliveryInstructions string `json:"delivery_instructions"`
	PaymentMethod        string `json:"payment_method"`
}

// ValidateOrderInput checks the request shape; storage-dependent checks
// (existence, stock) happen inside the placement transaction.
func ValidateOrderInput(in OrderInput) string {
	if len(in.Items) == 0 {
		return "Order must contain at least one item"
	}
	for _, item := range in.Items {
		if item.ProductID == "" {
			return "Every item needs a productId"
		}
		if item.Quantity <= 0 {
			return "Item quantity must be positive"
		}
	}
	if in.DeliveryStreet == "" || in.DeliveryCity == "" || in.DeliveryState == "" || in.DeliveryPostalCode == "" {
		return "Delivery street, city, state and postal code are required"
	}
	return ""
}

// requestError maps a domain failure onto the HTTP surface. Returning one
// from inside the transaction callback aborts the whole transaction.
type requestError struct {
	status int
	code   string
	msg    string
}

func (e *requestError) Error() string { return e.msg }

// PlaceOrder validates every cart line, snapshots product data onto the
// order, computes totals and decrements stock — all inside one transaction,
// so either the whole order lands or nothing does. The conditional stock
// filter means two concurrent orders cannot both drain the same units.
func PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var input OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid_input", "Invalid order payload")
		return
	}
	if msg := ValidateOrderInput(input); msg != "" {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid_input", msg)
		return
	}
	if input.DeliveryCountry == "" {
		input.DeliveryCountry = "India"
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = "card"
	}

	result, err := db.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		items := make([]models.OrderItem, 0, len(input.Items))
		subtotal := 0.0

		for _, line := range input.Items {
			var product models.Product
			err := db.ProductCollection.FindOne(sc, bson.M{"productid": line.ProductID}).Decode(&product)
			if err == mongo.ErrNoDocuments {
				return nil, &requestError{http.StatusNotFound, "product_not_found",
					fmt.Sprintf("Product %s not found", line.ProductID)}
			}
			if err != nil {
				return nil, err
			}
			if !product.IsActive {
				return nil, &requestError{http.StatusBadRequest, "product_unavailable",
					fmt.Sprintf("Product %s is not available", product.Name)}
			}
			if product.Stock < line.Quantity {
				return nil, &requestError{http.StatusBadRequest, "insufficient_stock",
					fmt.Sprintf("Insufficient stock for %s", product.Name)}
			}

			// Conditional decrement: the $gte guard prevents oversell when
			// a concurrent order drained the stock after the read above.
			res, err := db.ProductCollection.UpdateOne(sc,
				bson.M{"productid": line.ProductID, "stock": bson.M{"$gte": line.Quantity}},
				bson.M{
					"$inc": bson.M{"stock": -line.Quantity},
					"$set": bson.M{"updated_at": time.Now()},
				},
			)
			if err != nil {
				return nil, err
			}
			if res.ModifiedCount == 0 {
				return nil, &requestError{http.StatusBadRequest, "insufficient_stock",
					fmt.Sprintf("Insufficient stock for %s", product.Name)}
			}

			lineSubtotal := Round2(product.Price * float64(line.Quantity))
			subtotal += lineSubtotal
			items = append(items, models.OrderItem{
				ProductID:    product.ProductID,
				ProductName:  product.Name,
				ProductPrice: product.Price,
				Quantity:     line.Quantity,
				Subtotal:     lineSubtotal,
			})
		}

		subtotal = Round2(subtotal)
		deliveryFee, tax, total := ComputeTotals(subtotal)

		now := time.Now()
		order := models.Order{
			OrderID:              "ORD" + utils.GenerateRandomDigitString(10),
			UserID:               userID,
			DeliveryStreet:       input.DeliveryStreet,
			DeliveryCity:         input.DeliveryCity,
			DeliveryState:        input.DeliveryState,
			DeliveryPostalCode:   input.DeliveryPostalCode,
			DeliveryCountry:      input.DeliveryCountry,
			DeliveryInstructions: input.DeliveryInstructions,
			Items:                items,
			Subtotal:             subtotal,
			DeliveryFee:          deliveryFee,
			Tax:                  tax,
			Total:                total,
			Status:               models.OrderPending,
			PaymentMethod:        input.PaymentMethod,
			PaymentStatus:        models.PaymentPending,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if _, err := db.OrderCollection.InsertOne(sc, order); err != nil {
			return nil, err
		}
		return order, nil
	})
	if err != nil {
		var reqErr *requestError
		if errors.As(err, &reqErr) {
			utils.RespondWithError(w, reqErr.status, reqErr.code, reqErr.msg)
			return
		}
		log.Println("PlaceOrder transaction error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Order creation failed")
		return
	}

	order := result.(models.Order)
	mq.Emit(ctx, "order-placed", mq.Event{
		UserID:     userID,
		EntityID:   order.OrderID,
		ProductIDs: productIDs(order.Items),
	})

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetOrders returns the caller's orders, newest first.
func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := db.OrderCollection.Find(ctx, bson.M{"userid": userID}, opts)
	if err != nil {
		log.Println("GetOrders Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Could not retrieve orders")
		return
	}
	defer cursor.Close(ctx)

	var list []models.Order
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetOrders cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Error reading orders")
		return
	}
	if len(list) == 0 {
		list = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetOrder returns one owned order or 404.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{
		"orderid": ps.ByName("id"),
		"userid":  userID,
	}).Decode(&order)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "order_not_found", "Order not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

// CancelOrder flips a pending order to cancelled and restores every line's
// quantity onto its product, atomically. Any other status is rejected.
func CancelOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}
	orderID := ps.ByName("id")

	result, err := db.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var order models.Order
		err := db.OrderCollection.FindOne(sc, bson.M{"orderid": orderID, "userid": userID}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			return nil, &requestError{http.StatusNotFound, "order_not_found", "Order not found"}
		}
		if err != nil {
			return nil, err
		}
		if order.Status != models.OrderPending {
			return nil, &requestError{http.StatusBadRequest, "invalid_state", "Can only cancel pending orders"}
		}

		now := time.Now()
		res, err := db.OrderCollection.UpdateOne(sc,
			bson.M{"orderid": orderID, "userid": userID, "status": models.OrderPending},
			bson.M{"$set": bson.M{"status": models.OrderCancelled, "updated_at": now}},
		)
		if err != nil {
			return nil, err
		}
		if res.ModifiedCount == 0 {
			return nil, &requestError{http.StatusBadRequest, "invalid_state", "Can only cancel pending orders"}
		}

		for _, item := range order.Items {
			if _, err := db.ProductCollection.UpdateOne(sc,
				bson.M{"productid": item.ProductID},
				bson.M{
					"$inc": bson.M{"stock": item.Quantity},
					"$set": bson.M{"updated_at": now},
				},
			); err != nil {
				return nil, err
			}
		}

		order.Status = models.OrderCancelled
		order.UpdatedAt = now
		return order, nil
	})
	if err != nil {
		var reqErr *requestError
		if errors.As(err, &reqErr) {
			utils.RespondWithError(w, reqErr.status, reqErr.code, reqErr.msg)
			return
		}
		log.Println("CancelOrder transaction error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Order cancellation failed")
		return
	}

	order := result.(models.Order)
	mq.Emit(ctx, "order-cancelled", mq.Event{
		UserID:     userID,
		EntityID:   order.OrderID,
		ProductIDs: productIDs(order.Items),
	})

	utils.RespondWithJSON(w, http.StatusOK, order)
}

func productIDs(items []models.OrderItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	return ids
}
