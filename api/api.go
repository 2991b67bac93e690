package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/travel-record/backend-sub002/api/common"
	feedApipk "github.com/travel-record/backend-sub002/api/feedapi"
	notificationApipk "github.com/travel-record/backend-sub002/api/notificationapi"
	"github.com/travel-record/backend-sub002/app"
	"github.com/travel-record/backend-sub002/cache"

	"github.com/gorilla/mux"
)

// API travel-record api
type API struct {
	App    *app.App
	Config *common.Config
	Cache  *cache.Cache
}

// New creates a new api
func New(a *app.App) (api *API, err error) {
	api = &API{App: a}
	api.Config, err = common.InitConfig()
	if err != nil {
		return nil, err
	}
	api.Cache = a.Repos.Cache
	return api, nil
}

func (a *API) Init(r *mux.Router) {

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"OK","timestamp":"%s"}`, time.Now().Format(time.RFC3339))
	})

	/* ****************** NOTIFICATION ****************** */
	notificationAPI := notificationApipk.New(a.Config, a.App.Repos, a.App)
	r.Handle("/notification/subscribe", a.handler(notificationAPI.Subscribe, true)).Methods(http.MethodGet)
	r.Handle("/notification/unread", a.handler(notificationAPI.HasUnread, true)).Methods(http.MethodGet)
	r.Handle("/notification/list", a.handler(notificationAPI.NotificationListing, true)).Methods(http.MethodGet)
	r.Handle("/notification/list/{type}", a.handler(notificationAPI.NotificationListingByType, true)).Methods(http.MethodGet)

	/* ****************** FEED ****************** */
	feedAPI := feedApipk.New(a.Config, a.App.Repos, a.App)
	r.Handle("/record/{recordID}/comment", a.handler(feedAPI.CreateComment, true)).Methods(http.MethodPost)
	r.Handle("/record/{recordID}/like", a.handler(feedAPI.LikeRecord, true)).Methods(http.MethodPost)
	r.Handle("/record/{recordID}/like", a.handler(feedAPI.UnlikeRecord, true)).Methods(http.MethodDelete)
	r.Handle("/feed/{feedID}/invite", a.handler(feedAPI.InviteToFeed, true)).Methods(http.MethodPost)
}
