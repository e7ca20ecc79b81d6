package router

import (
	"net/http"
	"net/url"
	"os"

	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	docs "github.com/staffable/backend/api"
	"github.com/staffable/backend/internal/capacity"
	"github.com/staffable/backend/internal/controllers/healthz"
	v1 "github.com/staffable/backend/internal/controllers/v1"
	"github.com/staffable/backend/internal/httputil"
	"github.com/staffable/backend/internal/metrics"
	"github.com/staffable/backend/internal/models"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config sets up the router and middlewares. Routes are attached separately
// with AttachRoutes so that tests can mount the API under arbitrary paths.
//
// The teardown function returned must be called when the router is discarded,
// it deregisters the prometheus collectors Config registered.
func Config(url *url.URL) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(LoggerMiddleware())

	if corsMiddleware, ok := CorsMiddleware(); ok {
		r.Use(corsMiddleware)
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Staffable"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for Staffable, a resource capacity planning solution."

	teardown := metrics.RegisterDatabaseMetrics()

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows us to attach the API to different
// paths for different use cases.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	group.GET("/metrics", gin.WrapH(metrics.Handler()))

	healthz.RegisterRoutes(group.Group("/healthz"))

	engine := capacity.NewEngine(models.DB)

	// API v1 setup
	api := group.Group("/v1")
	{
		api.GET("", GetV1)
		api.DELETE("", v1.Cleanup)
		api.OPTIONS("", OptionsV1)
	}

	v1.RegisterOrganizationRoutes(api.Group("/organizations"))
	v1.RegisterUserRoutes(api.Group("/users"))
	v1.RegisterProjectRoutes(api.Group("/projects"))
	v1.RegisterAllocationRoutes(api.Group("/allocations"), engine)
	v1.RegisterCapacityRoutes(api.Group("/capacity"), engine)
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Healthz endpoint
	Version string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the backend
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // List endpoint for all v1 endpoints
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			V1:      httputil.RequestPathV1(c),
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the Staffable backend
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Organizations string `json:"organizations" example:"https://example.com/api/v1/organizations"` // URL of organization list endpoint
	Users         string `json:"users" example:"https://example.com/api/v1/users"`                 // URL of user list endpoint
	Projects      string `json:"projects" example:"https://example.com/api/v1/projects"`           // URL of project list endpoint
	Allocations   string `json:"allocations" example:"https://example.com/api/v1/allocations"`     // URL of allocation list endpoint
	Capacity      string `json:"capacity" example:"https://example.com/api/v1/capacity"`           // URL of capacity ledger endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Organizations: httputil.RequestPathV1(c) + "/organizations",
			Users:         httputil.RequestPathV1(c) + "/users",
			Projects:      httputil.RequestPathV1(c) + "/projects",
			Allocations:   httputil.RequestPathV1(c) + "/allocations",
			Capacity:      httputil.RequestPathV1(c) + "/capacity",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
