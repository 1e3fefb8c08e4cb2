package products

import (
	"context"
	"log"
	"net/http"
	"time"

	"freshmart/db"
	"freshmart/models"
	"freshmart/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetCategories lists every category, alphabetically.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := db.CategoryCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("GetCategories Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Could not retrieve categories")
		return
	}
	defer cursor.Close(ctx)

	var cats []models.Category
	if err := cursor.All(ctx, &cats); err != nil {
		log.Println("GetCategories cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Error reading categories")
		return
	}
	if len(cats) == 0 {
		cats = []models.Category{}
	}

	utils.RespondWithJSON(w, http.StatusOK, cats)
}
