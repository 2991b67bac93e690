package jwtauth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// Claims - a struct that will be encoded to JWT
type Claims struct {
	UserID   int64  `json:"userID"`
	Nickname string `json:"nickname"`
	jwt.StandardClaims
}

// JWTToken - JWT Token
type JWTToken struct {
	Value     string
	ExpiresAt time.Time
}

func fetchJWTToken(tokenStr string, jwtKey string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtKey), nil
	})

	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("the JWT Token is invalid")
	}

	return claims, nil
}

func createJWTToken(userID int64, nickname string, tokenExpiration time.Duration, jwtKey string) (*JWTToken, error) {
	expirationTime := time.Now().Add(tokenExpiration)
	claims := &Claims{
		UserID:   userID,
		Nickname: nickname,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtKey))
	if err != nil {
		return nil, err
	}
	return &JWTToken{
		Value:     tokenString,
		ExpiresAt: expirationTime,
	}, nil
}
