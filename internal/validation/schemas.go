package validation

import "gtm-crm-backend/internal/database/models"

// FieldRule is one validator tag applied to one field, with the message shown when it fails
type FieldRule struct {
	Field   string
	Tag     string
	Message string
}

// Domains are the named value sets referenced by crm_enum
var Domains = map[string][]string{
	"industry":      models.Industries,
	"company_size":  models.CompanySizes,
	"company_stage": models.CompanyStages,
	"company_type":  models.CompanyTypes,
	"contact_role":  models.ContactRoles,
	"lead_status":   models.LeadStatuses,
	"priority":      models.Priorities,
	"deal_stage":    models.DealStages,
	"deal_pipeline": models.DealPipelines,
	"list_type":     models.ListableKinds,
	"list_access":   models.ListAccessLevels,
}

var (
	nameRule          = FieldRule{models.FieldName, "required_trim", "Name is required"}
	requiredEmailRule = FieldRule{models.FieldEmail, "required,crm_email", "A valid email is required"}
	optionalEmailRule = FieldRule{models.FieldEmail, "omitempty,crm_email", "Invalid email format"}
	phoneRule         = FieldRule{models.FieldPhone, "omitempty,crm_phone", "Invalid phone number"}
	websiteRule       = FieldRule{models.FieldWebsite, "omitempty,crm_website", "Invalid website URL"}
	linkedinRule      = FieldRule{models.FieldLinkedin, "omitempty,crm_linkedin", "Invalid LinkedIn URL"}
	revenueRule       = FieldRule{models.FieldRevenue, "omitempty,crm_float", "Revenue must be a number"}
	industryRule      = FieldRule{models.FieldIndustry, "omitempty,crm_enum=industry", "Invalid industry"}
	priorityRule      = FieldRule{models.FieldPriority, "omitempty,crm_enum=priority", "Priority must be low, medium or high"}
)

var schemas = map[models.EntityKind][]FieldRule{
	models.KindCompany: {
		nameRule,
		optionalEmailRule,
		phoneRule,
		websiteRule,
		linkedinRule,
		industryRule,
		{models.FieldSize, "omitempty,crm_enum=company_size", "Invalid company size"},
		{models.FieldStage, "omitempty,crm_enum=company_stage", "Invalid stage"},
		{models.FieldType, "omitempty,crm_enum=company_type", "Invalid company type"},
		revenueRule,
	},
	models.KindContact: {
		nameRule,
		requiredEmailRule,
		phoneRule,
		linkedinRule,
		{models.FieldRole, "omitempty,crm_enum=contact_role", "Invalid role"},
	},
	models.KindLead: {
		nameRule,
		requiredEmailRule,
		phoneRule,
		websiteRule,
		linkedinRule,
		industryRule,
		{models.FieldStatus, "omitempty,crm_enum=lead_status", "Invalid status"},
		priorityRule,
	},
	models.KindDeal: {
		nameRule,
		{models.FieldStage, "omitempty,crm_enum=deal_stage", "Invalid stage"},
		{models.FieldPipeline, "omitempty,crm_enum=deal_pipeline", "Invalid pipeline"},
		priorityRule,
		revenueRule,
		{models.FieldCloseDate, "omitempty,crm_date", "Close date must be a valid date"},
	},
	models.KindList: {
		nameRule,
		{models.FieldType, "required,crm_enum=list_type", "Type must be Company, Contact or Lead"},
		{models.FieldAccess, "required,crm_enum=list_access", "Access must be Public or Private"},
	},
}

// SchemaFor returns the ordered rules for kind
func SchemaFor(kind models.EntityKind) ([]FieldRule, bool) {
	schema, ok := schemas[kind]
	return schema, ok
}
