package status

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kitaptakip/bot-telegram/service/watch"
	"github.com/kitaptakip/bot-telegram/storage"
)

// Handler exposes the liveness and the aggregate state of the bot process.
type Handler struct {
	SvcWatch   watch.Service
	StorAdmins storage.Admins
	LastTick   func() time.Time
}

func (h Handler) Healthz(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
}

func (h Handler) Status(ctx *gin.Context) {
	ts, err := h.SvcWatch.Totals(ctx)
	var admins []string
	if err == nil {
		admins, err = h.StorAdmins.List(ctx)
	}
	if err != nil {
		ctx.String(http.StatusInternalServerError, err.Error())
		return
	}
	var lastTick string
	if t := h.LastTick(); !t.IsZero() {
		lastTick = t.Format(time.RFC3339)
	}
	ctx.JSON(http.StatusOK, gin.H{
		"users":       ts.Users,
		"activeUsers": ts.ActiveUsers,
		"watches":     ts.Watches,
		"admins":      len(admins),
		"lastTick":    lastTick,
	})
}
