package simpleexcel

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type person struct {
	Name       string
	Department string
	Salary     float64
}

func samplePeople() []person {
	return []person{
		{Name: "Amina", Department: "Engineering", Salary: 90000},
		{Name: "Carlos", Department: "Sales", Salary: 75000},
	}
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestFluentExport(t *testing.T) {
	exporter := NewDataExporter()
	exporter.AddSheet("People").AddSection(&SectionConfig{
		Title:      "Team",
		ShowHeader: true,
		Data:       samplePeople(),
		Columns: []ColumnConfig{
			{FieldName: "Name", Header: "Full Name", Width: 20},
			{FieldName: "Department", Header: "Dept", Width: 15},
		},
	})

	data, err := exporter.ToBytes()
	require.NoError(t, err)

	f := openWorkbook(t, data)
	assert.Equal(t, []string{"People"}, f.GetSheetList())

	title, _ := f.GetCellValue("People", "A1")
	assert.Equal(t, "Team", title)
	header, _ := f.GetCellValue("People", "B2")
	assert.Equal(t, "Dept", header)
	cell, _ := f.GetCellValue("People", "A3")
	assert.Equal(t, "Amina", cell)
	cell, _ = f.GetCellValue("People", "B4")
	assert.Equal(t, "Sales", cell)
}

func TestExportInfersColumnsWhenNoneConfigured(t *testing.T) {
	exporter := NewDataExporter()
	exporter.AddSheet("People").AddSection(&SectionConfig{
		ShowHeader: true,
		Data:       samplePeople(),
	})

	data, err := exporter.ToBytes()
	require.NoError(t, err)

	f := openWorkbook(t, data)
	// Inferred columns are sorted by field name: Department, Name, Salary.
	header, _ := f.GetCellValue("People", "A1")
	assert.Equal(t, "Department", header)
	header, _ = f.GetCellValue("People", "B1")
	assert.Equal(t, "Name", header)
}

func TestYamlConfigExport(t *testing.T) {
	config := `
sheets:
  - name: Report
    sections:
      - id: roster
        title: Employee Roster
        show_header: true
        columns:
          - field_name: Name
            header: Full Name
            width: 20
          - field_name: Salary
            header: Salary
            width: 12
            format: currency
`
	exporter, err := NewDataExporterFromYamlConfig(config)
	require.NoError(t, err)

	exporter.RegisterFormatter("currency", func(v interface{}) interface{} {
		if val, ok := v.(float64); ok {
			return fmt.Sprintf("$%.2f", val)
		}
		return v
	})
	exporter.BindSectionData("roster", samplePeople())

	data, err := exporter.ToBytes()
	require.NoError(t, err)

	f := openWorkbook(t, data)
	assert.Equal(t, []string{"Report"}, f.GetSheetList())

	title, _ := f.GetCellValue("Report", "A1")
	assert.Equal(t, "Employee Roster", title)
	salary, _ := f.GetCellValue("Report", "B3")
	assert.Equal(t, "$90000.00", salary)
}

func TestYamlConfigRejectsGarbage(t *testing.T) {
	_, err := NewDataExporterFromYamlConfig("sheets: [whoops")
	assert.Error(t, err)
}

func TestGetSheet(t *testing.T) {
	exporter := NewDataExporter()
	exporter.AddSheet("One")
	exporter.AddSheet("Two")

	assert.NotNil(t, exporter.GetSheet("Two"))
	assert.Nil(t, exporter.GetSheet("Three"))
}

func TestMultipleSectionsAreSeparated(t *testing.T) {
	exporter := NewDataExporter()
	sheet := exporter.AddSheet("People")
	sheet.AddSection(&SectionConfig{
		Title: "First",
		Data:  samplePeople()[:1],
		Columns: []ColumnConfig{
			{FieldName: "Name"},
		},
	})
	sheet.AddSection(&SectionConfig{
		Title: "Second",
		Data:  samplePeople()[1:],
		Columns: []ColumnConfig{
			{FieldName: "Name"},
		},
	})

	data, err := exporter.ToBytes()
	require.NoError(t, err)

	f := openWorkbook(t, data)
	// First section: title row 1, data row 2, blank row 3; second starts at 4.
	second, _ := f.GetCellValue("People", "A4")
	assert.Equal(t, "Second", second)
	carlos, _ := f.GetCellValue("People", "A5")
	assert.Equal(t, "Carlos", carlos)
}
