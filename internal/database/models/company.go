package models

import "strings"

// Company represents an account tracked by the workspace
type Company struct {
	WorkspaceModel
	Name        string   `json:"name" gorm:"not null;size:200;index"`
	Email       string   `json:"email" gorm:"size:255"`
	Phone       string   `json:"phone" gorm:"size:32"`
	Website     string   `json:"website" gorm:"size:500"`
	Linkedin    string   `json:"linkedin" gorm:"size:500"`
	Industry    string   `json:"industry" gorm:"size:50"`
	Size        string   `json:"size" gorm:"size:20"`
	Stage       string   `json:"stage" gorm:"size:20"`
	Type        string   `json:"type" gorm:"size:20"`
	Revenue     *float64 `json:"revenue,omitempty"`
	Description string   `json:"description" gorm:"type:text"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}

func (c *Company) Kind() EntityKind   { return KindCompany }
func (c *Company) DisplayName() string { return c.Name }

func (c *Company) Apply(fields map[string]string) {
	c.Name = strings.TrimSpace(fields[FieldName])
	c.Email = strings.TrimSpace(fields[FieldEmail])
	c.Phone = strings.TrimSpace(fields[FieldPhone])
	c.Website = strings.TrimSpace(fields[FieldWebsite])
	c.Linkedin = strings.TrimSpace(fields[FieldLinkedin])
	c.Industry = fields[FieldIndustry]
	c.Size = fields[FieldSize]
	c.Stage = fields[FieldStage]
	c.Type = fields[FieldType]
	c.Revenue = parseFloatPtr(fields[FieldRevenue])
	c.Description = fields[FieldDescription]
}

func (c *Company) Fields() map[string]string {
	return map[string]string{
		FieldName:        c.Name,
		FieldEmail:       c.Email,
		FieldPhone:       c.Phone,
		FieldWebsite:     c.Website,
		FieldLinkedin:    c.Linkedin,
		FieldIndustry:    c.Industry,
		FieldSize:        c.Size,
		FieldStage:       c.Stage,
		FieldType:        c.Type,
		FieldRevenue:     formatFloatPtr(c.Revenue),
		FieldDescription: c.Description,
	}
}
