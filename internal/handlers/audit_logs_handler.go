package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	"github.com/BruksfildServices01/flatmate-finder/internal/dto"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/httpresp"
	"github.com/BruksfildServices01/flatmate-finder/internal/middleware"
	ucAuditLog "github.com/BruksfildServices01/flatmate-finder/internal/usecase/auditlog"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	loc  *time.Location
	list *ucAuditLog.List
}

func NewAuditLogsHandler(loc *time.Location, list *ucAuditLog.List) *AuditLogsHandler {
	return &AuditLogsHandler{
		loc:  loc,
		list: list,
	}
}

type auditLogQuery struct {
	Action string  `form:"action" json:"action"`
	Entity string  `form:"entity" json:"entity"`
	UserID string  `form:"user" json:"user" binding:"omitempty,uuid"`
	From   *string `form:"from" json:"from" binding:"omitempty,isodate"`
	To     *string `form:"to" json:"to" binding:"omitempty,isodate"`
}

// List serves the admin audit trail, newest first. "to" is inclusive of
// the whole day.
func (h *AuditLogsHandler) List(c *gin.Context) {
	var q auditLogQuery
	if !bindQuery(c, &q) {
		return
	}

	dates := newDateParser(h.loc)
	from := dates.parseOptional("from", q.From)
	to := dates.parseOptional("to", q.To)
	if err := dates.err(); err != nil {
		httperr.Respond(c, err)
		return
	}
	if to != nil {
		end := to.Add(24 * time.Hour)
		to = &end
	}

	out, err := h.list.Execute(c.Request.Context(), ucAuditLog.ListInput{
		Caller: middleware.Caller(c),
		Filter: audit.Filter{
			Action: q.Action,
			Entity: q.Entity,
			UserID: q.UserID,
			From:   from,
			To:     to,
		},
		Page: pageFrom(c),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Paginated(c, out.Logs, dto.NewPagination(out.Page, out.Total))
}
