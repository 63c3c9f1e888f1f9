package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"listkeeper/internal/core/auth"
	"listkeeper/internal/transport/http/handler"
	mdw "listkeeper/internal/transport/http/middleware"
	"listkeeper/internal/usecase"
)

// Deps are the constructed usecases the engine routes into. Repositories are
// injected into usecases upstream, so tests can mount the same engine over
// in-memory stores.
type Deps struct {
	Auth  *usecase.AuthService
	Users *usecase.UserService
	Items *usecase.ItemService
	Lists *usecase.ListService
}

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, deps Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.Ginzap(l, time.RFC3339, true),
		mdw.Recovery(l),
		mdw.Metrics(),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authH := handler.NewAuthHandler(deps.Auth)
	userH := handler.NewUserHandler(deps.Users)
	itemH := handler.NewItemHandler(deps.Items)
	listH := handler.NewListHandler(deps.Lists)

	ar := r.Group("/auth")
	{
		ar.POST("/register", authH.Register)
		ar.POST("/login", authH.Login)
	}

	me := r.Group("/me", mdw.AuthJWT(jwter))
	{
		me.GET("", userH.Me)
		me.PUT("", userH.UpdateMe)
		me.DELETE("", userH.DeleteMe)
	}

	items := r.Group("/items", mdw.AuthJWT(jwter))
	{
		items.POST("", itemH.Create)
		items.GET("", itemH.List)
		items.GET("/search", itemH.Search)
		items.GET("/list/:uuid", itemH.ByList)
		items.GET("/:uuid", itemH.Get)
		items.PUT("/:uuid", itemH.Update)
		items.DELETE("/:uuid", itemH.Delete)
	}

	lists := r.Group("/lists", mdw.AuthJWT(jwter))
	{
		lists.POST("", listH.Create)
		lists.GET("", listH.List)
		lists.GET("/:uuid", listH.Get)
		lists.PUT("/:uuid", listH.Update)
		lists.DELETE("/:uuid", listH.Delete)
		lists.POST("/:uuid/items", listH.AddItem)
		lists.DELETE("/:uuid/items", listH.RemoveItem)
	}

	return r
}
