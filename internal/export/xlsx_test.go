package export

import (
	"bytes"
	"strings"
	"testing"

	"gtm-crm-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestListMembersXLSX(t *testing.T) {
	list := &models.List{Name: "Q4: Targets", Type: models.KindContact}
	members := []models.Entity{
		&models.Contact{Name: "Jane Doe", Email: "jane@example.com", Role: "Champion"},
		&models.Contact{Name: "John Roe", Email: "john@example.com", Title: "CTO"},
	}

	data, err := ListMembersXLSX(list, members)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Q4 Targets"}, f.GetSheetList())

	rows, err := f.GetRows("Q4 Targets")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Email", "Phone", "Title", "Company", "Role"}, rows[0])
	assert.Equal(t, "Jane Doe", rows[1][0])
	assert.Equal(t, "Champion", rows[1][5])
	assert.Equal(t, "CTO", rows[2][3])
}

func TestListMembersXLSX_EmptyList(t *testing.T) {
	data, err := ListMembersXLSX(&models.List{Name: "Empty", Type: models.KindCompany}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Empty")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestListMembersXLSX_QuotedName(t *testing.T) {
	data, err := ListMembersXLSX(&models.List{Name: "'Q4 Targets'", Type: models.KindLead}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Q4 Targets"}, f.GetSheetList())
}

func TestListMembersXLSX_UnsupportedKind(t *testing.T) {
	_, err := ListMembersXLSX(&models.List{Name: "Deals", Type: models.KindDeal}, nil)
	assert.Error(t, err)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "List", SheetName("  "))
	assert.Equal(t, "ab", SheetName("a/b"))
	assert.Len(t, []rune(SheetName("a very long list name that exceeds the limit")), 31)
	assert.Equal(t, "Q4_Targets.xlsx", FileName(&models.List{Name: "Q4 Targets"}))
	assert.Equal(t, "Q4 Targets", SheetName("'Q4 Targets'"))
	assert.Equal(t, "List", SheetName("''"))
	assert.Equal(t, "it's", SheetName("it's"))
	// truncation must not leave a trailing quote
	assert.Equal(t, strings.Repeat("a", 30), SheetName(strings.Repeat("a", 30)+"' tail"))
}
