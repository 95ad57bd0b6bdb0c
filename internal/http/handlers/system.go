package handlers

import (
	"database/sql"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	intconfig "rentaldesk/internal/config"
	intdb "rentaldesk/internal/db"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "rental desk backend is running"})
}

// DBCheck pings the store and reports any missing table. Without an injected
// pool it checks the shared connection.
func (h Handler) DBCheck(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		conn *sql.DB
		err  error
	)
	if h.DB != nil {
		conn = h.DB
		err = conn.PingContext(ctx)
	} else {
		conn = intconfig.DB
		err = intconfig.PingDB(ctx)
	}
	if err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database is not reachable", err.Error())
		return
	}
	missing := intdb.MissingTables(ctx, conn)
	if len(missing) > 0 {
		respondError(c, http.StatusServiceUnavailable, "schema_incomplete", "database schema is incomplete", gin.H{"missing_tables": missing})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "tables": intdb.Tables})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		respondError(c, http.StatusServiceUnavailable, "", "router is not ready", nil)
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
