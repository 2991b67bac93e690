package jwtauth

import (
	"time"

	"github.com/travel-record/backend-sub002/app/config"
	"github.com/travel-record/backend-sub002/cache"
	repo "github.com/travel-record/backend-sub002/model"
)

// Service validates and issues the JWT tokens the API endpoints carry.
type Service interface {
	FetchJWTToken(token string) (*Claims, error)
	CreateJWTToken(userID int64, nickname string, tokenExpiration time.Duration) (*JWTToken, error)
}

type service struct {
	config *config.Config
	cache  *cache.Cache
}

// NewService create new jwtauth Service
func NewService(repos *repo.Repos, conf *config.Config) Service {
	svc := &service{
		config: conf,
		cache:  repos.Cache,
	}
	return svc
}

func (s *service) FetchJWTToken(token string) (*Claims, error) {
	claims, err := fetchJWTToken(token, s.config.JWTKey)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *service) CreateJWTToken(userID int64, nickname string, tokenExpiration time.Duration) (*JWTToken, error) {
	return createJWTToken(userID, nickname, tokenExpiration, s.config.JWTKey)
}
