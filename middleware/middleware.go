package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"freshmart/db"
	"freshmart/globals"
	"freshmart/models"
	"freshmart/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// JWT claims
type Claims struct {
	Username string `json:"username"`
	UserID   string `json:"userId"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate verifies the bearer token and re-checks the embedded account
// against current storage state, so a deactivated or deleted account
// invalidates a still-unexpired token. Fails closed on any parse error.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := ValidateJWT(r.Header.Get("Authorization"))
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var user models.User
		err = db.UserCollection.FindOne(ctx, bson.M{"userid": claims.UserID}).Decode(&user)
		if err != nil || !user.IsActive {
			utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
			return
		}

		rctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		rctx = context.WithValue(rctx, globals.RoleKey, user.Role)
		next(w, r.WithContext(rctx), ps)
	}
}

// ValidateJWT parses an "Authorization: Bearer <token>" header value.
func ValidateJWT(header string) (*Claims, error) {
	if len(header) < 8 || header[:7] != "Bearer " {
		return nil, fmt.Errorf("invalid token")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(header[7:], claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return globals.JwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
