package app

import (
	"github.com/sirupsen/logrus"

	"github.com/travel-record/backend-sub002/app/config"
	"github.com/travel-record/backend-sub002/app/event"
	"github.com/travel-record/backend-sub002/app/feed"
	"github.com/travel-record/backend-sub002/app/jwtauth"
	"github.com/travel-record/backend-sub002/app/notification"
	"github.com/travel-record/backend-sub002/app/realtime"
	"github.com/travel-record/backend-sub002/cache"
	"github.com/travel-record/backend-sub002/database"
	"github.com/travel-record/backend-sub002/model"
	"github.com/travel-record/backend-sub002/mongodatabase"
)

// App our application. Process-wide state (services, the connection registry,
// the dispatcher pool) lives here and is constructed once at startup.
type App struct {
	Config *config.Config
	Repos  *model.Repos

	Registry   *realtime.Registry
	Dispatcher *event.Dispatcher

	NotificationService notification.Service
	FeedService         feed.Service
	JWTService          jwtauth.Service
}

// NewContext create new request context
func (a *App) NewContext() *Context {
	return &Context{
		Logger: logrus.StandardLogger(),
	}
}

// New create a new app
func New() (app *App, err error) {
	appConf, err := config.InitConfig()
	if err != nil {
		return nil, err
	}

	dbConf, err := database.InitConfig()
	if err != nil {
		return nil, err
	}

	cacheConf, err := cache.InitConfig()
	if err != nil {
		return nil, err
	}

	masterDB, err := database.New(dbConf.Master)
	if err != nil {
		return nil, err
	}

	replicaDB, err := database.New(dbConf.Replica)
	if err != nil {
		return nil, err
	}

	mongoDBConf, err := mongodatabase.InitConfig()
	if err != nil {
		return nil, err
	}

	repos := &model.Repos{
		MasterDB:  masterDB,
		ReplicaDB: replicaDB,
		Cache:     cache.New(cacheConf),
		MongoDB:   mongoDBConf,
	}

	notificationService := notification.NewService(repos, appConf)
	registry := realtime.NewRegistry()
	dispatcher := event.NewDispatcher(notificationService, registry,
		appConf.DispatchWorkers, appConf.DispatchQueueSize)

	return &App{
		Config:              appConf,
		Repos:               repos,
		Registry:            registry,
		Dispatcher:          dispatcher,
		NotificationService: notificationService,
		FeedService:         feed.NewService(repos, dispatcher),
		JWTService:          jwtauth.NewService(repos, appConf),
	}, nil
}

// Close closes application handles and connections
func (a *App) Close() {
	logrus.Info("Stopping event dispatcher")
	a.Dispatcher.Stop()

	logrus.Info("Closing Connection to database")

	err := a.Repos.MasterDB.Close()
	if err != nil {
		logrus.Error("unable to close connection to master database", err)
	}
	err = a.Repos.ReplicaDB.Close()
	if err != nil {
		logrus.Error("unable to close connection to replica database", err)
	}
	err = a.Repos.Cache.Close()
	if err != nil {
		logrus.Error("unable to close connection to cache", err)
	}
	err = mongodatabase.Disconnect()
	if err != nil {
		logrus.Error("unable to close connection to mongo database", err)
	}
}

// ValidationError error when inputs are invalid
type ValidationError struct {
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UserError when user is disallowed from resource
type UserError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *UserError) Error() string {
	return e.Message
}
