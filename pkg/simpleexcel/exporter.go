// Package simpleexcel is a small section-based Excel exporter on top of
// excelize. Sheets are composed of sections; a section is a titled block of
// rows produced from a slice of structs or maps. Layouts can be built with
// the fluent API or loaded from a YAML report config and bound to data by
// section ID.
package simpleexcel

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// FormatterFunc transforms a cell value before it is written.
type FormatterFunc func(v interface{}) interface{}

// DataExporter is the entry point for exporting data.
type DataExporter struct {
	template   *ReportTemplate
	data       map[string]interface{} // section ID -> bound data (YAML flow)
	sheets     []*SheetBuilder        // programmatically added sheets
	formatters map[string]FormatterFunc
}

// ReportTemplate is the root of the YAML report config.
type ReportTemplate struct {
	Sheets []SheetTemplate `yaml:"sheets"`
}

// SheetTemplate is one sheet in the YAML report config.
type SheetTemplate struct {
	Name     string          `yaml:"name"`
	Sections []SectionConfig `yaml:"sections"`
}

// SectionConfig defines one block of data in a sheet.
type SectionConfig struct {
	ID         string         `yaml:"id"`
	Title      string         `yaml:"title"`
	ShowHeader bool           `yaml:"show_header"`
	Data       interface{}    `yaml:"-"` // bound at runtime
	Columns    []ColumnConfig `yaml:"columns"`
}

// ColumnConfig defines a column in a section.
type ColumnConfig struct {
	FieldName string  `yaml:"field_name"` // struct field name or map key
	Header    string  `yaml:"header"`
	Width     float64 `yaml:"width"`
	Format    string  `yaml:"format"` // name of a registered formatter
}

func NewDataExporter() *DataExporter {
	return &DataExporter{
		data:       make(map[string]interface{}),
		formatters: make(map[string]FormatterFunc),
	}
}

// NewDataExporterFromYamlConfig parses an inline YAML report config.
func NewDataExporterFromYamlConfig(config string) (*DataExporter, error) {
	var tmpl ReportTemplate
	if err := yaml.Unmarshal([]byte(config), &tmpl); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	e := NewDataExporter()
	e.template = &tmpl
	return e, nil
}

// NewDataExporterFromYamlFile reads a YAML report config from disk.
func NewDataExporterFromYamlFile(path string) (*DataExporter, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open yaml file: %w", err)
	}
	return NewDataExporterFromYamlConfig(string(raw))
}

// SheetBuilder accumulates sections for one sheet.
type SheetBuilder struct {
	name     string
	sections []*SectionConfig
}

// AddSheet starts a new sheet.
func (e *DataExporter) AddSheet(name string) *SheetBuilder {
	sb := &SheetBuilder{name: name}
	e.sheets = append(e.sheets, sb)
	return sb
}

// GetSheet returns a previously added sheet by name, or nil.
func (e *DataExporter) GetSheet(name string) *SheetBuilder {
	for _, sb := range e.sheets {
		if sb.name == name {
			return sb
		}
	}
	return nil
}

// AddSection appends a section to the sheet.
func (sb *SheetBuilder) AddSection(sec *SectionConfig) *SheetBuilder {
	sb.sections = append(sb.sections, sec)
	return sb
}

// BindSectionData binds data to a section ID from the YAML config.
func (e *DataExporter) BindSectionData(id string, data interface{}) *DataExporter {
	e.data[id] = data
	return e
}

// RegisterFormatter makes a named formatter available to column configs.
func (e *DataExporter) RegisterFormatter(name string, fn FormatterFunc) *DataExporter {
	e.formatters[name] = fn
	return e
}

// ToBytes renders the workbook into memory.
func (e *DataExporter) ToBytes() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetCount := 0
	addSheet := func(name string) error {
		if sheetCount == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}
		sheetCount++
		return nil
	}

	for _, sb := range e.sheets {
		if err := addSheet(sb.name); err != nil {
			return nil, err
		}
		if err := e.renderSections(f, sb.name, sb.sections); err != nil {
			return nil, err
		}
	}

	if e.template != nil {
		for i := range e.template.Sheets {
			tmpl := &e.template.Sheets[i]
			if err := addSheet(tmpl.Name); err != nil {
				return nil, err
			}
			sections := make([]*SectionConfig, len(tmpl.Sections))
			for j := range tmpl.Sections {
				sec := &tmpl.Sections[j]
				if data, ok := e.data[sec.ID]; ok {
					sec.Data = data
				}
				sections[j] = sec
			}
			if err := e.renderSections(f, tmpl.Name, sections); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *DataExporter) renderSections(f *excelize.File, sheet string, sections []*SectionConfig) error {
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	row := 1
	for _, sec := range sections {
		rows, err := normalizeRows(sec.Data)
		if err != nil {
			return fmt.Errorf("section %q: %w", sec.Title, err)
		}

		columns := sec.Columns
		if len(columns) == 0 {
			columns = inferColumns(rows)
		}

		if sec.Title != "" {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetCellValue(sheet, cell, sec.Title); err != nil {
				return err
			}
			_ = f.SetCellStyle(sheet, cell, cell, boldStyle)
			row++
		}

		if sec.ShowHeader {
			for ci, col := range columns {
				cell, _ := excelize.CoordinatesToCellName(ci+1, row)
				header := col.Header
				if header == "" {
					header = col.FieldName
				}
				if err := f.SetCellValue(sheet, cell, header); err != nil {
					return err
				}
				_ = f.SetCellStyle(sheet, cell, cell, boldStyle)
			}
			row++
		}

		for ci, col := range columns {
			if col.Width > 0 {
				name, _ := excelize.ColumnNumberToName(ci + 1)
				_ = f.SetColWidth(sheet, name, name, col.Width)
			}
		}

		for _, r := range rows {
			for ci, col := range columns {
				value := r[col.FieldName]
				if col.Format != "" {
					if fn, ok := e.formatters[col.Format]; ok {
						value = fn(value)
					}
				}
				cell, _ := excelize.CoordinatesToCellName(ci+1, row)
				if err := f.SetCellValue(sheet, cell, value); err != nil {
					return err
				}
			}
			row++
		}

		// One blank row between sections.
		row++
	}
	return nil
}

// inferColumns derives a stable column list from the first row's keys when
// the section config names none.
func inferColumns(rows []map[string]interface{}) []ColumnConfig {
	if len(rows) == 0 {
		return nil
	}
	keys := sortedKeys(rows[0])
	columns := make([]ColumnConfig, len(keys))
	for i, k := range keys {
		columns[i] = ColumnConfig{FieldName: k, Header: k}
	}
	return columns
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
