package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Sayed24/Employee-Management-System/internal/service/serviceutils"
	"github.com/Sayed24/Employee-Management-System/pkg/simpleexcel"
)

// ExportExcelHandler downloads the full collection as an Excel workbook.
// Like the JSON export it ignores filter and page state. When a YAML report
// config is set, the layout comes from there with the roster bound to the
// "roster" section; otherwise a default single-sheet layout is used.
func (h *RosterHandler) ExportExcelHandler(c echo.Context) error {
	records := h.svc.ExportAll()

	var exporter *simpleexcel.DataExporter
	if h.opts.ReportConfigPath != "" {
		var err error
		exporter, err = simpleexcel.NewDataExporterFromYamlFile(h.opts.ReportConfigPath)
		if err != nil {
			return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to read report config", err)
		}
		exporter.BindSectionData("roster", records)
	} else {
		exporter = simpleexcel.NewDataExporter()
		exporter.AddSheet("Employees").AddSection(&simpleexcel.SectionConfig{
			Title:      "Employee Roster",
			ShowHeader: true,
			Data:       records,
			Columns: []simpleexcel.ColumnConfig{
				{FieldName: "ID", Header: "ID", Width: 18},
				{FieldName: "FullName", Header: "Full Name", Width: 25},
				{FieldName: "Email", Header: "Email", Width: 30},
				{FieldName: "Phone", Header: "Phone", Width: 20},
				{FieldName: "Department", Header: "Department", Width: 18},
				{FieldName: "Position", Header: "Position", Width: 22},
				{FieldName: "Notes", Header: "Notes", Width: 35},
			},
		})
	}

	data, err := exporter.ToBytes()
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate excel file", err)
	}

	filename := fmt.Sprintf("employees_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().Header().Set("Content-Length", strconv.Itoa(len(data)))

	_, err = c.Response().Write(data)
	return err
}
