package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/altitude-guard/pkg/altitude"
	"liyu1981.xyz/altitude-guard/pkg/common"
	"liyu1981.xyz/altitude-guard/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

func errorBody(err error) gin.H {
	return gin.H{"error": err.Error()}
}

func internalError(c *gin.Context, err error) {
	common.GetLoggerWith(common.LoggerNameRestfulServer).
		Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, errorBody(err))
}

func (rs *RestfulServer) StartTracking(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": rs.Engine.StartTracking(c.Request.Context())})
}

func (rs *RestfulServer) StopTracking(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": rs.Engine.StopTracking(c.Request.Context())})
}

type CurrentAltitudeResponse struct {
	Altitude float64  `json:"altitude"`
	Previous *float64 `json:"previous,omitempty"`
}

func (rs *RestfulServer) GetCurrentAltitude(c *gin.Context) {
	current, ok := rs.Engine.GetCurrentAltitude()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no altitude recorded yet"})
		return
	}

	resp := CurrentAltitudeResponse{Altitude: current}
	if prev, ok := rs.Engine.GetPreviousAltitude(); ok {
		resp.Previous = &prev
	}
	c.JSON(http.StatusOK, resp)
}

type HoursQuery struct {
	Hours float64 `form:"hours" binding:"gte=0"`
}

func (rs *RestfulServer) GetAltitudeHistory(c *gin.Context) {
	var q HoursQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}
	c.JSON(http.StatusOK, rs.Engine.GetAltitudeHistory(q.Hours))
}

func (rs *RestfulServer) GetTrackSummary(c *gin.Context) {
	var q HoursQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}
	c.JSON(http.StatusOK, rs.Engine.GetTrackSummary(q.Hours))
}

type FixRequest struct {
	Altitude  *float64 `json:"altitude"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy"`
	Timestamp int64    `json:"timestamp"`
}

// Ranges are checked by models.ValidateFix on push, 0 is a valid coordinate.
var fixRequestSchema = z.Struct(z.Shape{
	"Altitude":  z.Ptr(z.Float64()),
	"Latitude":  z.Float64(),
	"Longitude": z.Float64(),
	"Accuracy":  z.Ptr(z.Float64()),
	"Timestamp": z.Int64(),
})

func (rs *RestfulServer) PostLocation(c *gin.Context) {
	if rs.Location == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "location push is not enabled"})
		return
	}

	var req FixRequest
	if err := fixRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Location.Push(models.Fix{
		Altitude:  req.Altitude,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Accuracy:  req.Accuracy,
		Timestamp: req.Timestamp,
	}); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}

	c.Status(http.StatusAccepted)
}

type PermissionRequest struct {
	Granted *bool `json:"granted" binding:"required"`
}

func (rs *RestfulServer) PostLocationPermission(c *gin.Context) {
	if rs.Location == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "location push is not enabled"})
		return
	}

	var req PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}
	rs.Location.SetPermission(*req.Granted)
	c.Status(http.StatusOK)
}

type EventsQuery struct {
	IncludeResolved bool `form:"include_resolved"`
}

func (rs *RestfulServer) GetEvents(c *gin.Context) {
	var q EventsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}
	c.JSON(http.StatusOK, rs.Engine.GetAltitudeEvents(q.IncludeResolved))
}

func (rs *RestfulServer) ResolveEvent(c *gin.Context) {
	eventID := c.Param("event_id")

	ok, err := rs.Engine.ResolveEvent(c.Request.Context(), eventID)
	if err != nil {
		internalError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type SymptomsRequest struct {
	Symptoms map[models.SymptomKind]int `json:"symptoms" binding:"required"`
	Notes    string                     `json:"notes"`
}

func (rs *RestfulServer) PostSymptoms(c *gin.Context) {
	var req SymptomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}

	entry, err := rs.Engine.LogSymptoms(c.Request.Context(), req.Symptoms, req.Notes)
	if errors.Is(err, models.ErrInvalidSymptoms) {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (rs *RestfulServer) GetSymptoms(c *gin.Context) {
	var q HoursQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}
	c.JSON(http.StatusOK, rs.Engine.GetSymptomLogs(q.Hours))
}

func (rs *RestfulServer) GetRecommendation(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Engine.GetRecommendation())
}

type AMSInfoQuery struct {
	Altitude *float64 `form:"altitude" binding:"required"`
}

func (rs *RestfulServer) GetAMSInfo(c *gin.Context) {
	var q AMSInfoQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}
	c.JSON(http.StatusOK, altitude.GetAMSInfo(*q.Altitude))
}

func (rs *RestfulServer) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Engine.Settings())
}

func (rs *RestfulServer) UpdateSettings(c *gin.Context) {
	var patch models.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}

	settings, err := rs.Engine.UpdateSettings(c.Request.Context(), patch)
	if errors.Is(err, models.ErrInvalidSettings) {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (rs *RestfulServer) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Engine.GetProfile())
}

func (rs *RestfulServer) UpdateProfile(c *gin.Context) {
	var patch models.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}

	profile, err := rs.Engine.UpdateProfile(c.Request.Context(), patch)
	if errors.Is(err, models.ErrInvalidProfile) {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type LimiterRequest struct {
	Client string  `json:"client,omitempty"`
	Rate   float64 `json:"rate"`
	Burst  int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"client": z.String(),
	"rate":   z.Float64().Required(),
	"burst":  z.Int().Required(),
})

// PostLimiter replaces the request budget of client, the caller itself when
// client is empty. Clients are keyed by host as the limiter middleware sees
// them.
func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	client := strings.TrimSpace(req.Client)
	if client == "" {
		client = c.ClientIP()
	}
	rs.SetLimiter(client, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "tracking": rs.Engine.Tracker().Running()})
}
