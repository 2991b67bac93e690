package model

import (
	"github.com/travel-record/backend-sub002/cache"
	"github.com/travel-record/backend-sub002/database"
	"github.com/travel-record/backend-sub002/mongodatabase"
)

// Repos container to hold handles for cache / db repos
type Repos struct {
	MasterDB  *database.Database
	ReplicaDB *database.Database
	Cache     *cache.Cache
	MongoDB   *mongodatabase.DBConfig
}
