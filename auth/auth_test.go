package auth

import (
	"strings"
	"testing"
	"time"

	"freshmart/globals"
	"freshmart/middleware"
	"freshmart/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func TestValidateRegisterInput(t *testing.T) {
	valid := registerInput{
		Username:  "john_doe",
		Email:     "john@example.com",
		Password:  "password123",
		FirstName: "John",
		LastName:  "Doe",
	}
	if msg := validateRegisterInput(valid); msg != "" {
		t.Fatalf("valid input rejected: %q", msg)
	}

	cases := []struct {
		name   string
		mutate func(*registerInput)
	}{
		{"short username", func(in *registerInput) { in.Username = "jo" }},
		{"long username", func(in *registerInput) { in.Username = strings.Repeat("a", 51) }},
		{"bad email", func(in *registerInput) { in.Email = "not-an-email" }},
		{"short password", func(in *registerInput) { in.Password = "short" }},
		{"missing first name", func(in *registerInput) { in.FirstName = "" }},
		{"missing last name", func(in *registerInput) { in.LastName = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			if msg := validateRegisterInput(in); msg == "" {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	user := models.User{
		UserID:   "u0000000001",
		Username: "john_doe",
		Role:     "customer",
	}

	token, err := GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := middleware.ValidateJWT("Bearer " + token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != user.UserID || claims.Username != user.Username || claims.Role != user.Role {
		t.Errorf("claims = %+v", claims)
	}
	if claims.ID == "" {
		t.Error("token missing jti")
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) <= 0 {
		t.Error("token already expired")
	}
}

func TestValidateJWTRejections(t *testing.T) {
	if _, err := middleware.ValidateJWT(""); err == nil {
		t.Error("empty header accepted")
	}
	if _, err := middleware.ValidateJWT("Bearer not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}

	// token signed with a different key must not validate
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, &middleware.Claims{
		UserID: "u0000000001",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	forged, err := other.SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := middleware.ValidateJWT("Bearer " + forged); err == nil {
		t.Error("token with wrong signature accepted")
	}

	// expired token must not validate
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &middleware.Claims{
		UserID: "u0000000001",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	stale, err := expired.SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := middleware.ValidateJWT("Bearer " + stale); err == nil {
		t.Error("expired token accepted")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte("password123")); err != nil {
		t.Error("correct password rejected")
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte("wrong-password")); err == nil {
		t.Error("wrong password accepted")
	}
}
