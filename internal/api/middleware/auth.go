package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// userIDContextKey は認証済みユーザーIDを格納するコンテキストキー
const userIDContextKey = "user_id"

// JWTAuth はBearerトークンを検証し、subクレームのユーザーIDを
// コンテキストに格納するミドルウェア
// HS256以外の署名アルゴリズムは拒否する
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "認証トークンが必要です")
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "認証トークンが無効です")
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "認証トークンが無効です")
			}
			userID, ok := subjectUserID(claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "認証トークンが無効です")
			}

			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}

// subjectUserID はsubクレームからユーザーIDを取り出す
// JSONの数値はfloat64でデコードされるため両方の型を受け付ける
func subjectUserID(claims jwt.MapClaims) (int64, bool) {
	switch v := claims["sub"].(type) {
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return 0, false
		}
		return id, true
	case float64:
		if v <= 0 {
			return 0, false
		}
		return int64(v), true
	default:
		return 0, false
	}
}

// UserIDFrom はコンテキストから認証済みユーザーIDを取り出す
func UserIDFrom(c echo.Context) (int64, bool) {
	id, ok := c.Get(userIDContextKey).(int64)
	return id, ok
}

// SetUserID はテストなどでコンテキストにユーザーIDを設定する
func SetUserID(c echo.Context, userID int64) {
	c.Set(userIDContextKey, userID)
}
