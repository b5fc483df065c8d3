package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"divron.com/attendance/core"
	"divron.com/attendance/web/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportReport streams the filtered attendance report as a file download.
// Period is daily, monthly or yearly, evaluated against the server clock.
func (h *Handler) ExportReport(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	period, err := core.ParsePeriod(c.Param("period"))
	if errors.Is(err, core.ErrUnknownPeriod) {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}

	records, err := h.Store.Attendance(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	now := time.Now()
	filtered := core.FilterByPeriod(records, period, now)

	format := c.DefaultQuery("format", "csv")
	switch format {
	case "csv":
		name := core.ReportFileName(period, now, "csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		c.Header("Content-Type", "text/csv")
		err = core.WriteCSV(c.Writer, filtered)
	case "xlsx":
		name := core.ReportFileName(period, now, "xlsx")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		c.Header("Content-Type", xlsxContentType)
		err = core.WriteXLSX(c.Writer, filtered)
	default:
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("format must be csv or xlsx"))
		return
	}

	if err != nil {
		// headers are already out; nothing left to do but log
		h.Log.Error("report export failed", zap.Error(err))
		return
	}

	h.Log.Info("report exported",
		zap.String("period", string(period)),
		zap.String("format", format),
		zap.Int("records", len(filtered)))
}
