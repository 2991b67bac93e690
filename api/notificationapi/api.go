package notificationapi

import (
	"github.com/travel-record/backend-sub002/api/common"
	"github.com/travel-record/backend-sub002/app"
	"github.com/travel-record/backend-sub002/cache"
	repo "github.com/travel-record/backend-sub002/model"
)

// API notification api
type api struct {
	config *common.Config
	cache  *cache.Cache
	App    *app.App
}

// New creates a new api
func New(conf *common.Config, repos *repo.Repos, app *app.App) *api {
	return &api{
		config: conf,
		cache:  repos.Cache,
		App:    app,
	}
}
