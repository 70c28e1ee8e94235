package models

import (
	"strings"
	"time"
)

// Deal represents an opportunity moving through a sales pipeline
type Deal struct {
	WorkspaceModel
	Name        string     `json:"name" gorm:"not null;size:200;index"`
	CompanyName string     `json:"company" gorm:"size:200"`
	Stage       string     `json:"stage" gorm:"size:30"`
	Pipeline    string     `json:"pipeline" gorm:"size:30"`
	Priority    string     `json:"priority" gorm:"size:10"`
	Revenue     *float64   `json:"revenue,omitempty"`
	CloseDate   *time.Time `json:"close_date,omitempty" gorm:"type:date"`
	Description string     `json:"description" gorm:"type:text"`
}

// TableName returns the table name for Deal
func (Deal) TableName() string {
	return "deals"
}

func (d *Deal) Kind() EntityKind   { return KindDeal }
func (d *Deal) DisplayName() string { return d.Name }

func (d *Deal) Apply(fields map[string]string) {
	d.Name = strings.TrimSpace(fields[FieldName])
	d.CompanyName = strings.TrimSpace(fields[FieldCompany])
	d.Stage = fields[FieldStage]
	d.Pipeline = fields[FieldPipeline]
	d.Priority = fields[FieldPriority]
	d.Revenue = parseFloatPtr(fields[FieldRevenue])
	d.CloseDate = parseDatePtr(fields[FieldCloseDate])
	d.Description = fields[FieldDescription]
}

func (d *Deal) Fields() map[string]string {
	return map[string]string{
		FieldName:        d.Name,
		FieldCompany:     d.CompanyName,
		FieldStage:       d.Stage,
		FieldPipeline:    d.Pipeline,
		FieldPriority:    d.Priority,
		FieldRevenue:     formatFloatPtr(d.Revenue),
		FieldCloseDate:   formatDatePtr(d.CloseDate),
		FieldDescription: d.Description,
	}
}
