package models

import "strings"

// Contact represents a person at a company
type Contact struct {
	WorkspaceModel
	Name        string `json:"name" gorm:"not null;size:200;index"`
	Email       string `json:"email" gorm:"not null;size:255;index"`
	Phone       string `json:"phone" gorm:"size:32"`
	Linkedin    string `json:"linkedin" gorm:"size:500"`
	Title       string `json:"title" gorm:"size:100"`
	CompanyName string `json:"company" gorm:"size:200"`
	Role        string `json:"role" gorm:"size:30"`
	Description string `json:"description" gorm:"type:text"`
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}

func (c *Contact) Kind() EntityKind   { return KindContact }
func (c *Contact) DisplayName() string { return c.Name }

func (c *Contact) Apply(fields map[string]string) {
	c.Name = strings.TrimSpace(fields[FieldName])
	c.Email = strings.TrimSpace(fields[FieldEmail])
	c.Phone = strings.TrimSpace(fields[FieldPhone])
	c.Linkedin = strings.TrimSpace(fields[FieldLinkedin])
	c.Title = strings.TrimSpace(fields[FieldTitle])
	c.CompanyName = strings.TrimSpace(fields[FieldCompany])
	c.Role = fields[FieldRole]
	c.Description = fields[FieldDescription]
}

func (c *Contact) Fields() map[string]string {
	return map[string]string{
		FieldName:        c.Name,
		FieldEmail:       c.Email,
		FieldPhone:       c.Phone,
		FieldLinkedin:    c.Linkedin,
		FieldTitle:       c.Title,
		FieldCompany:     c.CompanyName,
		FieldRole:        c.Role,
		FieldDescription: c.Description,
	}
}
