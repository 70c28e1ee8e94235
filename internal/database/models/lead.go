package models

import "strings"

// Lead represents an unqualified prospect
type Lead struct {
	WorkspaceModel
	Name        string `json:"name" gorm:"not null;size:200;index"`
	Email       string `json:"email" gorm:"not null;size:255;index"`
	Phone       string `json:"phone" gorm:"size:32"`
	Website     string `json:"website" gorm:"size:500"`
	Linkedin    string `json:"linkedin" gorm:"size:500"`
	CompanyName string `json:"company" gorm:"size:200"`
	Industry    string `json:"industry" gorm:"size:50"`
	Status      string `json:"status" gorm:"size:20;default:'New'"`
	Priority    string `json:"priority" gorm:"size:10"`
	Source      string `json:"source" gorm:"size:100"`
	Description string `json:"description" gorm:"type:text"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}

func (l *Lead) Kind() EntityKind   { return KindLead }
func (l *Lead) DisplayName() string { return l.Name }

func (l *Lead) Apply(fields map[string]string) {
	l.Name = strings.TrimSpace(fields[FieldName])
	l.Email = strings.TrimSpace(fields[FieldEmail])
	l.Phone = strings.TrimSpace(fields[FieldPhone])
	l.Website = strings.TrimSpace(fields[FieldWebsite])
	l.Linkedin = strings.TrimSpace(fields[FieldLinkedin])
	l.CompanyName = strings.TrimSpace(fields[FieldCompany])
	l.Industry = fields[FieldIndustry]
	l.Status = fields[FieldStatus]
	if l.Status == "" {
		l.Status = "New"
	}
	l.Priority = fields[FieldPriority]
	l.Source = strings.TrimSpace(fields[FieldSource])
	l.Description = fields[FieldDescription]
}

func (l *Lead) Fields() map[string]string {
	return map[string]string{
		FieldName:        l.Name,
		FieldEmail:       l.Email,
		FieldPhone:       l.Phone,
		FieldWebsite:     l.Website,
		FieldLinkedin:    l.Linkedin,
		FieldCompany:     l.CompanyName,
		FieldIndustry:    l.Industry,
		FieldStatus:      l.Status,
		FieldPriority:    l.Priority,
		FieldSource:      l.Source,
		FieldDescription: l.Description,
	}
}
