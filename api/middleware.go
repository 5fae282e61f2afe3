package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type contextKey string

// AdminEmailKey is the request context key holding the authenticated admin's email
const AdminEmailKey contextKey = "adminEmail"

// AdminMiddleware validates the Bearer JWT issued by the admin login endpoint and
// requires the "admin" scope before passing the request through
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			zap.S().Errorw("unauthorized", "url", r.URL)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success": false, "error": "unauthorized"}`))
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		secret := []byte(os.Getenv("JWT_SECRET"))
		if len(secret) == 0 {
			zap.S().Error("JWT_SECRET not set")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success": false, "error": "server misconfigured"}`))
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			zap.S().Errorw("unauthorized", "url", r.URL, "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success": false, "error": "unauthorized"}`))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["scope"] != "admin" {
			zap.S().Errorw("token missing admin scope", "url", r.URL)
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"success": false, "error": "forbidden"}`))
			return
		}

		email, _ := claims["email"].(string)
		zap.S().Debugf("Admin %s authenticated\n", email)
		ctx := context.WithValue(r.Context(), AdminEmailKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
