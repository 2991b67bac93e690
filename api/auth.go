package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/travel-record/backend-sub002/app"
	"github.com/travel-record/backend-sub002/model"
)

// validateUser checks the request's JWT and the matching live session in the
// cache. Login and token issuance happen elsewhere; here only validity and
// session liveness are enforced.
func (a *API) validateUser(ctx *app.Context, r *http.Request) model.AuthResponse {
	token := r.Header.Get(a.Config.AuthCookieName)
	if token == "" {
		c, err := r.Cookie(a.Config.AuthCookieName)
		if err != nil || c.Value == "" {
			return model.AuthResponse{
				User: nil, ErrCode: http.StatusUnauthorized,
				ErrMsg: "Token is not present", Error: errors.New("token is not present"),
			}
		}
		token = c.Value
	}

	claims, err := a.App.JWTService.FetchJWTToken(token)
	if err != nil {
		return model.AuthResponse{
			User: nil, ErrCode: http.StatusUnauthorized,
			ErrMsg: "invalid jwt token", Error: ctx.AuthorizationError(true),
		}
	}

	sessionKey := fmt.Sprintf("session:%d", claims.UserID)
	cached, err := a.Cache.GetValue(sessionKey)
	if err != nil || cached != token {
		return model.AuthResponse{
			User: nil, ErrCode: http.StatusUnauthorized,
			ErrMsg: "session has expired", Error: ctx.AuthorizationError(true),
		}
	}

	return model.AuthResponse{User: &model.Account{
		ID:       claims.UserID,
		Nickname: claims.Nickname,
	}, ErrCode: 0, ErrMsg: "", Error: nil}
}
