package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	analyticsHTTP "banquetpro/internal/analytics/delivery/http"
	analyticsUC "banquetpro/internal/analytics/usecase"
	clientHTTP "banquetpro/internal/client/delivery/http"
	clientStore "banquetpro/internal/client/repository/storeapi"
	clientUC "banquetpro/internal/client/usecase"
	"banquetpro/internal/event"
	eventHTTP "banquetpro/internal/event/delivery/http"
	eventRepo "banquetpro/internal/event/repository"
	eventStore "banquetpro/internal/event/repository/storeapi"
	eventUC "banquetpro/internal/event/usecase"
	inventoryHTTP "banquetpro/internal/inventory/delivery/http"
	inventoryRepo "banquetpro/internal/inventory/repository"
	inventoryStore "banquetpro/internal/inventory/repository/storeapi"
	inventoryUC "banquetpro/internal/inventory/usecase"
	"banquetpro/internal/middleware"
	staffHTTP "banquetpro/internal/staff/delivery/http"
	staffStore "banquetpro/internal/staff/repository/storeapi"
	staffUC "banquetpro/internal/staff/usecase"
	"banquetpro/internal/stock"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.mutationsPerMin)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.CORS())
	srv.gin.Use(mw.RequestID())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires every domain end to end: store repository,
// cache, use case, HTTP handler, routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainStore.New(srv.store, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	stockSvc := stock.New()

	// Repositories. Events and inventory sit behind a read-through cache;
	// clients and staff are cheap lookups and go straight to the store.
	invRepo := inventoryRepo.NewCached(inventoryStore.New(srv.store, srv.l), srv.cacheTTL)
	evRepo := eventRepo.NewCached(eventStore.New(srv.store, srv.l), srv.cacheTTL)
	clRepo := clientStore.New(srv.store, srv.l)
	stRepo := staffStore.New(srv.store, srv.l)

	// A nil *gcalendar.Client must not reach the interface, or the nil
	// check inside the use case stops working.
	var cal event.Calendar
	if srv.calendar != nil {
		cal = srv.calendar
	}

	// Inventory
	invHandler := inventoryHTTP.New(srv.l, inventoryUC.New(srv.l, invRepo, stockSvc, time.Now))
	inventoryHTTP.RegisterRoutes(api, invHandler, mw)

	// Clients
	clHandler := clientHTTP.New(srv.l, clientUC.New(srv.l, clRepo, evRepo))
	clientHTTP.RegisterRoutes(api, clHandler, mw)

	// Staff
	stHandler := staffHTTP.New(srv.l, staffUC.New(srv.l, stRepo))
	staffHTTP.RegisterRoutes(api, stHandler, mw)

	// Events
	evHandler := eventHTTP.New(srv.l, eventUC.New(
		srv.l, evRepo, clRepo, stRepo, invRepo, stockSvc, cal, srv.calCfg, time.Now,
	))
	eventHTTP.RegisterRoutes(api, evHandler, mw)

	// Analytics
	anHandler := analyticsHTTP.New(srv.l, analyticsUC.New(
		srv.l, evRepo, stRepo, invRepo, stockSvc, srv.analyticsCfg, time.Now,
	))
	analyticsHTTP.RegisterRoutes(api, anHandler, mw)

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")
}
