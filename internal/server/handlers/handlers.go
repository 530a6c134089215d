package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vincfleurette/agenda-spv/internal/config"
	"github.com/vincfleurette/agenda-spv/internal/model"
	"github.com/vincfleurette/agenda-spv/internal/service/excel"
	"github.com/vincfleurette/agenda-spv/internal/service/ics"
	"github.com/vincfleurette/agenda-spv/internal/service/schedule"
	"github.com/vincfleurette/agenda-spv/internal/service/store"
)

// unknownShiftLabel is shown when an event matched a name but no assignment
// cell resolved a shift type.
const unknownShiftLabel = "Unknown"

// Handlers carries the API dependencies.
type Handlers struct {
	cfg     *config.AppConfig
	uploads *store.UploadStore

	extractor *schedule.Extractor
	indexer   *schedule.NameIndexer
}

// NewHandlers wires the handlers with the default fill-color classifier.
func NewHandlers(cfg *config.AppConfig, uploads *store.UploadStore) *Handlers {
	classifier := schedule.NewColorClassifier()
	return &Handlers{
		cfg:       cfg,
		uploads:   uploads,
		extractor: schedule.NewExtractor(classifier),
		indexer:   schedule.NewNameIndexer(classifier),
	}
}

// Response is the common JSON envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// Health reports liveness.
func (h *Handlers) Health(c *gin.Context) {
	success(c, gin.H{"status": "ok"})
}

// Upload receives a planning workbook and registers it in memory.
func (h *Handlers) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		errorResponse(c, 1001, "Veuillez joindre un fichier")
		return
	}
	defer file.Close()

	if header.Size > h.cfg.MaxUploadBytes() {
		errorResponse(c, 1003, fmt.Sprintf("Fichier trop volumineux (max %d Mo)", h.cfg.Upload.MaxSizeMB))
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".xlsm" {
		errorResponse(c, 1002, "Seuls les fichiers .xlsx et .xlsm sont acceptés")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		errorResponse(c, 1002, "Lecture du fichier impossible")
		return
	}

	workbook, err := excel.Open(content)
	if err != nil {
		errorResponse(c, 1002, "Analyse du fichier impossible: "+err.Error())
		return
	}

	fileID := h.uploads.Put(&store.Upload{
		FileName: header.Filename,
		Workbook: workbook,
	})

	success(c, gin.H{
		"fileId":   fileID,
		"fileName": header.Filename,
		"sheets":   workbook.Sheets(),
	})
}

// Sheets lists the sheets of an uploaded workbook.
func (h *Handlers) Sheets(c *gin.Context) {
	up, err := h.uploads.Get(c.Param("fileId"))
	if err != nil {
		errorResponse(c, 2001, "Fichier introuvable ou expiré")
		return
	}
	success(c, gin.H{"sheets": up.Workbook.Sheets()})
}

// Names lists the selectable person names of a sheet.
func (h *Handlers) Names(c *gin.Context) {
	rows, ok := h.sheetRows(c)
	if !ok {
		return
	}
	success(c, gin.H{"names": h.indexer.Names(rows)})
}

// EventPreview is one row of the on-screen preview.
type EventPreview struct {
	Date      string          `json:"date"`
	Team      string          `json:"team"`
	ShiftType string          `json:"shiftType"`
	Start     *model.DateTime `json:"start,omitempty"`
	End       *model.DateTime `json:"end,omitempty"`
}

// Events previews the filtered shifts of a name, with resolved windows.
func (h *Handlers) Events(c *gin.Context) {
	rows, ok := h.sheetRows(c)
	if !ok {
		return
	}
	name := c.Query("name")

	events := h.extractor.Extract(rows)
	filtered := schedule.Filter(events, name)

	previews := make([]EventPreview, 0, len(filtered))
	for _, ev := range filtered {
		preview := EventPreview{
			Date:      ev.Date,
			Team:      ev.Team,
			ShiftType: unknownShiftLabel,
		}
		if st, found := schedule.ResolveShiftType(ev, name); found {
			preview.ShiftType = string(st)
			if window, err := schedule.ResolveWindow(ev.Date, st); err == nil {
				preview.Start = &window.Start
				preview.End = &window.End
			}
		}
		previews = append(previews, preview)
	}

	success(c, gin.H{"events": previews})
}

// Calendar builds and streams the ICS download for a name.
func (h *Handlers) Calendar(c *gin.Context) {
	rows, ok := h.sheetRows(c)
	if !ok {
		return
	}
	name := c.Query("name")
	if strings.TrimSpace(name) == "" {
		errorResponse(c, 1001, "Veuillez choisir un nom")
		return
	}

	events, err := schedule.BuildForName(h.extractor.Extract(rows), name)
	if err != nil {
		var dateErr *schedule.InvalidDateError
		if errors.As(err, &dateErr) {
			errorResponse(c, 3001, "Date illisible dans le planning: "+dateErr.Input)
			return
		}
		errorResponse(c, 3002, "Génération du calendrier impossible: "+err.Error())
		return
	}
	if len(events) == 0 {
		errorResponse(c, 3003, "Aucune garde trouvée pour ce nom")
		return
	}

	payload, err := ics.Write(events)
	if err != nil {
		errorResponse(c, 3002, "Génération du calendrier impossible: "+err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", h.cfg.CalendarFilename()))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", payload)
}

// Delete drops an upload.
func (h *Handlers) Delete(c *gin.Context) {
	if err := h.uploads.Remove(c.Param("fileId")); err != nil {
		errorResponse(c, 2001, "Fichier introuvable ou expiré")
		return
	}
	success(c, gin.H{"deleted": true})
}

// sheetRows loads the rows of the requested sheet, writing the error
// response itself when the lookup fails.
func (h *Handlers) sheetRows(c *gin.Context) ([][]model.Cell, bool) {
	up, err := h.uploads.Get(c.Param("fileId"))
	if err != nil {
		errorResponse(c, 2001, "Fichier introuvable ou expiré")
		return nil, false
	}

	rows, err := up.Workbook.Rows(c.Query("sheet"))
	if err != nil {
		errorResponse(c, 2002, "Lecture de la feuille impossible: "+err.Error())
		return nil, false
	}
	return rows, true
}
