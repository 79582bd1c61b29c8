package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/altitude-guard/pkg/altitude"
	"liyu1981.xyz/altitude-guard/pkg/common"
	"liyu1981.xyz/altitude-guard/pkg/location"
)

type RestfulServer struct {
	Server *gin.Engine
	Engine *altitude.Engine
	// Location is nil when fixes come from somewhere other than the phone.
	Location         *location.Latest
	RateLimiterStore *altitude.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(clientID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientID)
	}
}

func (rs *RestfulServer) CheckClientLimiter(clientID string) bool {
	limiter := rs.GetLimiter(clientID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(clientID string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientID, rate.Limit(clientRate), clientBurst)
}

// limited rejects callers over their per client budget.
func (rs *RestfulServer) limited(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		common.GetLoggerWith(common.LoggerNameRestfulServer).
			Debug("Request throttled", zap.String("client", c.ClientIP()), zap.String("path", c.FullPath()))
		c.AbortWithStatus(http.StatusTooManyRequests)
		return
	}
	c.Next()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.POST("/limiter", rs.PostLimiter)

	api := rs.Server.Group("/", rs.limited)
	{
		api.POST("/tracking/start", rs.StartTracking)
		api.POST("/tracking/stop", rs.StopTracking)

		api.GET("/altitude/current", rs.GetCurrentAltitude)
		api.GET("/altitude/history", rs.GetAltitudeHistory)
		api.GET("/altitude/summary", rs.GetTrackSummary)

		api.POST("/location", rs.PostLocation)
		api.POST("/location/permission", rs.PostLocationPermission)

		api.GET("/events", rs.GetEvents)
		api.POST("/events/:event_id/resolve", rs.ResolveEvent)

		api.POST("/symptoms", rs.PostSymptoms)
		api.GET("/symptoms", rs.GetSymptoms)

		api.GET("/recommendation", rs.GetRecommendation)
		api.GET("/ams-info", rs.GetAMSInfo)

		api.GET("/settings", rs.GetSettings)
		api.PATCH("/settings", rs.UpdateSettings)
		api.GET("/profile", rs.GetProfile)
		api.PATCH("/profile", rs.UpdateProfile)
	}
}
