package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"freshmart/db"
	"freshmart/models"
	"freshmart/mq"
	"freshmart/rdx"
	"freshmart/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productCacheTTL = 5 * time.Minute

// BuildProductFilter translates catalog query options into a Mongo filter.
// Only active products are ever listed. categoryID is empty when no
// category filter applies.
func BuildProductFilter(opts utils.QueryOptions, categoryID string) bson.M {
	filter := bson.M{"is_active": true}
	if categoryID != "" {
		filter["categoryid"] = categoryID
	}
	if opts.Search != "" {
		regex := primitive.Regex{Pattern: opts.Search, Options: "i"}
		filter["$or"] = []bson.M{
			{"name": regex},
			{"description": regex},
		}
	}
	return filter
}

// GetProducts lists active products with optional category/search filters
// and skip/limit pagination.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := utils.ParseQueryOptions(r)

	categoryID := ""
	if opts.Category != "" {
		var cat models.Category
		if err := db.CategoryCollection.FindOne(ctx, bson.M{"name": opts.Category}).Decode(&cat); err == nil {
			categoryID = cat.CategoryID
		}
	}

	findOpts := options.Find().
		SetSkip(int64(opts.Skip)).
		SetLimit(int64(opts.Limit)).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := db.ProductCollection.Find(ctx, BuildProductFilter(opts, categoryID), findOpts)
	if err != nil {
		log.Println("GetProducts Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Could not retrieve products")
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetProducts cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Error reading products")
		return
	}
	if len(list) == 0 {
		list = []models.Product{}
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetProduct returns one active product. Hot reads come from the Redis
// cache; order placement invalidates it through the event worker.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("id")

	if cached, err := rdx.RdxGet(mq.ProductCacheKey(productID)); err == nil && cached != "" {
		var product models.Product
		if err := json.Unmarshal([]byte(cached), &product); err == nil {
			utils.RespondWithJSON(w, http.StatusOK, product)
			return
		}
	}

	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{
		"productid": productID,
		"is_active": true,
	}).Decode(&product)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "product_not_found", "Product not found")
		return
	}

	if data, err := json.Marshal(product); err == nil {
		if err := rdx.SetWithExpiry(mq.ProductCacheKey(productID), string(data), productCacheTTL); err != nil {
			log.Println("GetProduct cache write failed:", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// GetProductsByCategory lists a category's active products, 404 when the
// category itself is unknown.
func GetProductsByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var cat models.Category
	if err := db.CategoryCollection.FindOne(ctx, bson.M{"name": ps.ByName("name")}).Decode(&cat); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "category_not_found", "Category not found")
		return
	}

	cursor, err := db.ProductCollection.Find(ctx, bson.M{
		"categoryid": cat.CategoryID,
		"is_active":  true,
	})
	if err != nil {
		log.Println("GetProductsByCategory Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Could not retrieve products")
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetProductsByCategory cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Error reading products")
		return
	}
	if len(list) == 0 {
		list = []models.Product{}
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}
