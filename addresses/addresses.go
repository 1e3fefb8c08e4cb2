package addresses

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"freshmart/db"
	"freshmart/models"
	"freshmart/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAddresses returns the caller's address book, default first.
func GetAddresses(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "is_default", Value: -1}, {Key: "created_at", Value: -1}})
	cursor, err := db.AddressCollection.Find(ctx, bson.M{"userid": userID}, opts)
	if err != nil {
		log.Println("GetAddresses Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Could not retrieve addresses")
		return
	}
	defer cursor.Close(ctx)

	var addrs []models.Address
	if err := cursor.All(ctx, &addrs); err != nil {
		log.Println("GetAddresses cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Error reading addresses")
		return
	}
	if len(addrs) == 0 {
		addrs = []models.Address{}
	}

	utils.RespondWithJSON(w, http.StatusOK, addrs)
}

// GetAddress returns one owned address or 404.
func GetAddress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var addr models.Address
	err := db.AddressCollection.FindOne(ctx, bson.M{
		"addressid": ps.ByName("id"),
		"userid":    userID,
	}).Decode(&addr)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "address_not_found", "Address not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, addr)
}

// CreateAddress inserts a new address. Setting is_default clears the flag
// on every sibling in the same transaction, keeping the single-default
// invariant.
func CreateAddress(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var addr models.Address
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid_input", "Invalid JSON payload")
		return
	}

	if addr.Label == "" || addr.Street == "" || addr.City == "" || addr.State == "" || addr.PostalCode == "" {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid_input", "Label, street, city, state and postal code are required")
		return
	}
	if addr.Country == "" {
		addr.Country = "India"
	}

	now := time.Now()
	addr.AddressID = "a" + utils.GenerateRandomString(10)
	addr.UserID = userID
	addr.CreatedAt = now
	addr.UpdatedAt = now

	_, err := db.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if addr.IsDefault {
			if _, err := db.AddressCollection.UpdateMany(sc,
				bson.M{"userid": userID},
				bson.M{"$set": bson.M{"is_default": false}},
			); err != nil {
				return nil, err
			}
		}
		return db.AddressCollection.InsertOne(sc, addr)
	})
	if err != nil {
		log.Println("CreateAddress transaction error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to create address")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, addr)
}

// AddressUpdate carries a partial update; nil fields stay untouched.
type AddressUpdate struct {
	Label                *string `json:"label"`
	Street               *string `json:"street"`
	City                 *string `json:"city"`
	State                *string `json:"state"`
	PostalCode           *string `json:"postal_code"`
	Country              *string `json:"country"`
	IsDefault            *bool   `json:"is_default"`
	DeliveryInstructions *string `json:"delivery_instructions"`
}

// BuildUpdateDoc turns the set fields into a $set document.
func BuildUpdateDoc(in AddressUpdate, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if in.Label != nil {
		set["label"] = *in.Label
	}
	if in.Street != nil {
		set["street"] = *in.Street
	}
	if in.City != nil {
		set["city"] = *in.City
	}
	if in.State != nil {
		set["state"] = *in.State
	}
	if in.PostalCode != nil {
		set["postal_code"] = *in.PostalCode
	}
	if in.Country != nil {
		set["country"] = *in.Country
	}
	if in.IsDefault != nil {
		set["is_default"] = *in.IsDefault
	}
	if in.DeliveryInstructions != nil {
		set["delivery_instructions"] = *in.DeliveryInstructions
	}
	return set
}

// UpdateAddress applies a partial update to an owned address.
func UpdateAddress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}
	addressID := ps.ByName("id")

	var input AddressUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid_input", "Invalid JSON payload")
		return
	}

	filter := bson.M{"addressid": addressID, "userid": userID}
	set := BuildUpdateDoc(input, time.Now())

	_, err := db.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if input.IsDefault != nil && *input.IsDefault {
			if _, err := db.AddressCollection.UpdateMany(sc,
				bson.M{"userid": userID, "addressid": bson.M{"$ne": addressID}},
				bson.M{"$set": bson.M{"is_default": false}},
			); err != nil {
				return nil, err
			}
		}
		res, err := db.AddressCollection.UpdateOne(sc, filter, bson.M{"$set": set})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}
		return res, nil
	})
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "address_not_found", "Address not found")
		return
	}
	if err != nil {
		log.Println("UpdateAddress transaction error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to update address")
		return
	}

	var addr models.Address
	if err := db.AddressCollection.FindOne(ctx, filter).Decode(&addr); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to load address")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, addr)
}

// DeleteAddress removes an owned address.
func DeleteAddress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	res, err := db.AddressCollection.DeleteOne(ctx, bson.M{
		"addressid": ps.ByName("id"),
		"userid":    userID,
	})
	if err != nil {
		log.Println("DeleteAddress error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to delete address")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "address_not_found", "Address not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetDefaultAddress flips the default flag onto one owned address and off
// every other, atomically.
func SetDefaultAddress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}
	addressID := ps.ByName("id")
	filter := bson.M{"addressid": addressID, "userid": userID}

	_, err := db.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := db.AddressCollection.UpdateOne(sc, filter,
			bson.M{"$set": bson.M{"is_default": true, "updated_at": time.Now()}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}
		_, err = db.AddressCollection.UpdateMany(sc,
			bson.M{"userid": userID, "addressid": bson.M{"$ne": addressID}},
			bson.M{"$set": bson.M{"is_default": false}})
		return nil, err
	})
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "address_not_found", "Address not found")
		return
	}
	if err != nil {
		log.Println("SetDefaultAddress transaction error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to set default address")
		return
	}

	var addr models.Address
	if err := db.AddressCollection.FindOne(ctx, filter).Decode(&addr); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to load address")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, addr)
}
