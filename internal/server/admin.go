package server

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/andyli/portfolio/internal/analytics"
	"github.com/andyli/portfolio/internal/config"
	"github.com/andyli/portfolio/internal/logger"
)

const (
	adminCookie       = "admin_token"
	adminCookieMaxAge = 24 * 60 * 60
	recentVisitsLimit = 200
)

func getAdminLog() *zerolog.Logger {
	l := logger.GetAdminLogger()
	return &l
}

// admin is the privacy-conscious stats area behind a cookie login.
type admin struct {
	username  string
	password  string
	token     string
	retention time.Duration
	stats     *analytics.Store
}

func newAdmin(cfg config.AdminConfig, retention time.Duration, stats *analytics.Store) (*admin, error) {
	token, err := analytics.NewToken()
	if err != nil {
		return nil, err
	}

	if cfg.Password == "" {
		getAdminLog().Warn().Msg("Admin password not set, admin login is disabled")
	} else {
		getAdminLog().Info().Msg("Admin access available at /admin/login")
	}
	if gin.Mode() == gin.DebugMode {
		getAdminLog().Debug().Str("token", token).Msg("Admin token (dev only)")
	}

	return &admin{
		username:  cfg.Username,
		password:  cfg.Password,
		token:     token,
		retention: retention,
		stats:     stats,
	}, nil
}

func (a *admin) routes(r *gin.Engine) {
	r.GET("/admin/login", a.loginPage)
	r.POST("/admin/login", a.login)
	r.GET("/admin/logout", a.logout)

	g := r.Group("/admin")
	g.Use(a.requireAuth())
	g.GET("/dashboard", a.dashboard)
	g.GET("/api/stats", a.apiStats)
	g.GET("/api/visitors", a.apiVisitors)
	g.GET("/export/stats", a.exportStats)
	g.POST("/privacy/cleanup", a.cleanup)
}

func (a *admin) enabled() bool {
	return a.password != ""
}

func (a *admin) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return a.enabled() && userOK && passOK
}

// requireAuth redirects browsers to the login page; API calls get 401.
func (a *admin) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err == nil && a.enabled() && subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) == 1 {
			c.Next()
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/admin/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Redirect(http.StatusFound, "/admin/login")
		c.Abort()
	}
}

func (a *admin) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin-login.html", gin.H{
		"Disabled": !a.enabled(),
	})
}

func (a *admin) login(c *gin.Context) {
	visitor := a.stats.HashIP(c.ClientIP())

	if !a.enabled() {
		c.HTML(http.StatusForbidden, "admin-login.html", gin.H{
			"Disabled": true,
		})
		return
	}

	if !a.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
		getAdminLog().Warn().Str("visitor", visitor).Msg("Failed admin login attempt")
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"Error": "Invalid credentials",
		})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, a.token, adminCookieMaxAge, "/admin", "", c.Request.TLS != nil, true)
	getAdminLog().Info().Str("visitor", visitor).Msg("Admin login successful")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (a *admin) logout(c *gin.Context) {
	c.SetCookie(adminCookie, "", -1, "/admin", "", c.Request.TLS != nil, true)
	getAdminLog().Info().Str("visitor", a.stats.HashIP(c.ClientIP())).Msg("Admin logout")
	c.Redirect(http.StatusFound, "/admin/login")
}

func (a *admin) dashboard(c *gin.Context) {
	stats, err := a.stats.Stats(c.Request.Context())
	if err != nil {
		getAdminLog().Error().Err(err).Msg("Failed to load admin stats")
		c.HTML(http.StatusInternalServerError, "admin-dashboard.html", gin.H{
			"Error":     "Failed to load statistics",
			"Retention": a.retention,
		})
		return
	}
	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
		"Stats":     stats,
		"Retention": a.retention,
	})
}

func (a *admin) apiStats(c *gin.Context) {
	stats, err := a.stats.Stats(c.Request.Context())
	if err != nil {
		getAdminLog().Error().Err(err).Msg("Failed to load admin stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// apiVisitors lists recent visits, newest first. ?limit= caps the result.
func (a *admin) apiVisitors(c *gin.Context) {
	limit := recentVisitsLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = min(n, recentVisitsLimit)
	}

	visits, err := a.stats.Recent(c.Request.Context(), limit)
	if err != nil {
		getAdminLog().Error().Err(err).Msg("Failed to load visitors")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load visitors"})
		return
	}
	c.JSON(http.StatusOK, visits)
}

func (a *admin) exportStats(c *gin.Context) {
	stats, err := a.stats.Stats(c.Request.Context())
	if err != nil {
		getAdminLog().Error().Err(err).Msg("Failed to export admin stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	getAdminLog().Info().Str("visitor", a.stats.HashIP(c.ClientIP())).Msg("Admin stats exported")
	c.JSON(http.StatusOK, stats)
}

// cleanup applies the retention window now instead of waiting for restart.
func (a *admin) cleanup(c *gin.Context) {
	removed, err := a.stats.Cleanup(c.Request.Context(), a.retention)
	if err != nil {
		getAdminLog().Error().Err(err).Msg("Privacy cleanup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
		return
	}
	getAdminLog().Info().Int64("removed", removed).Msg("Privacy cleanup")
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
