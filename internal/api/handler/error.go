package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-hotel-booking/internal/api"
	"github.com/sanosuguru/go-event-hotel-booking/internal/api/middleware"
)

// toHTTPError はドメインエラーをHTTPエラーに変換する
// 種別のないエラーは詳細を隠して500を返す
func toHTTPError(err error) *echo.HTTPError {
	status := api.StatusOf(err)
	if status == http.StatusInternalServerError {
		return echo.NewHTTPError(http.StatusInternalServerError, "内部サーバーエラー").SetInternal(err)
	}
	return echo.NewHTTPError(status, err.Error())
}

// authedUserID は認証ミドルウェアが設定したユーザーIDを取り出す
func authedUserID(c echo.Context) (int64, error) {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "認証が必要です")
	}
	return userID, nil
}
