package export

import (
	"fmt"
	"strings"

	"gtm-crm-backend/internal/database/models"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the generated workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type column struct {
	field  string
	header string
	width  float64
}

var columns = map[models.EntityKind][]column{
	models.KindCompany: {
		{models.FieldName, "Name", 30},
		{models.FieldEmail, "Email", 30},
		{models.FieldPhone, "Phone", 18},
		{models.FieldWebsite, "Website", 30},
		{models.FieldIndustry, "Industry", 16},
		{models.FieldSize, "Size", 10},
		{models.FieldStage, "Stage", 12},
		{models.FieldType, "Type", 12},
		{models.FieldRevenue, "Revenue", 14},
	},
	models.KindContact: {
		{models.FieldName, "Name", 30},
		{models.FieldEmail, "Email", 30},
		{models.FieldPhone, "Phone", 18},
		{models.FieldTitle, "Title", 20},
		{models.FieldCompany, "Company", 24},
		{models.FieldRole, "Role", 16},
	},
	models.KindLead: {
		{models.FieldName, "Name", 30},
		{models.FieldEmail, "Email", 30},
		{models.FieldPhone, "Phone", 18},
		{models.FieldCompany, "Company", 24},
		{models.FieldStatus, "Status", 12},
		{models.FieldPriority, "Priority", 10},
		{models.FieldSource, "Source", 16},
	},
}

var sheetNameReplacer = strings.NewReplacer(
	"[", "", "]", "", ":", "", "*", "", "?", "", "/", "", "\\", "",
)

// sheetNameTrim holds characters a worksheet name may not start or end with
const sheetNameTrim = " '"

// SheetName turns a list name into a valid worksheet name
func SheetName(name string) string {
	name = strings.Trim(sheetNameReplacer.Replace(name), sheetNameTrim)
	if r := []rune(name); len(r) > 31 {
		name = strings.Trim(string(r[:31]), sheetNameTrim)
	}
	if name == "" {
		return "List"
	}
	return name
}

// FileName returns the attachment name for a list export
func FileName(list *models.List) string {
	return strings.ReplaceAll(SheetName(list.Name), " ", "_") + ".xlsx"
}

// ListMembersXLSX renders the resolved members of a list as a workbook: one sheet named
// after the list, a bold header row for the list's entity kind, one row per member.
func ListMembersXLSX(list *models.List, members []models.Entity) ([]byte, error) {
	cols, ok := columns[list.Type]
	if !ok {
		return nil, fmt.Errorf("no export layout for %s lists", list.Type)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(list.Name)
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("failed to remove default sheet: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E7FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col.header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, name, name, col.width); err != nil {
			return nil, err
		}
	}

	for r, member := range members {
		values := member.Fields()
		for i, col := range cols {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, values[col.field]); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
