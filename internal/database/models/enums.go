package models

// EntityKind identifies a CRM record type
type EntityKind string

const (
	KindCompany EntityKind = "Company"
	KindContact EntityKind = "Contact"
	KindLead    EntityKind = "Lead"
	KindDeal    EntityKind = "Deal"
	KindList    EntityKind = "List"
)

// ListAccess controls who may resolve a list
type ListAccess string

const (
	ListAccessPublic  ListAccess = "Public"
	ListAccessPrivate ListAccess = "Private"
)

// MembershipOp is the explicit add/remove operation applied to a list
type MembershipOp string

const (
	MembershipAdd    MembershipOp = "add"
	MembershipRemove MembershipOp = "remove"
)

// IsValid checks if the EntityKind is valid
func (k EntityKind) IsValid() bool {
	switch k {
	case KindCompany, KindContact, KindLead, KindDeal, KindList:
		return true
	}
	return false
}

// IsListable reports whether lists may hold entities of this kind
func (k EntityKind) IsListable() bool {
	switch k {
	case KindCompany, KindContact, KindLead:
		return true
	}
	return false
}

// IsValid checks if the ListAccess is valid
func (a ListAccess) IsValid() bool {
	switch a {
	case ListAccessPublic, ListAccessPrivate:
		return true
	}
	return false
}

// IsValid checks if the MembershipOp is valid
func (o MembershipOp) IsValid() bool {
	switch o {
	case MembershipAdd, MembershipRemove:
		return true
	}
	return false
}

// Fixed value domains for enumerated fields
var (
	Industries       = []string{"Technology", "Finance", "Healthcare", "Manufacturing", "Retail", "Education", "Other"}
	CompanySizes     = []string{"1-10", "11-50", "51-200", "201-500", "501-1000", "1000+"}
	CompanyStages    = []string{"Prospect", "Lead", "Customer", "Churned"}
	CompanyTypes     = []string{"Customer", "Partner", "Vendor", "Competitor", "Other"}
	ContactRoles     = []string{"Decision Maker", "Influencer", "Champion", "User", "Other"}
	LeadStatuses     = []string{"New", "Contacted", "Qualified", "Unqualified", "Converted"}
	Priorities       = []string{"low", "medium", "high"}
	DealStages       = []string{"Qualification", "Proposal", "Negotiation", "Closed Won", "Closed Lost"}
	DealPipelines    = []string{"New Business", "Renewal", "Upsell"}
	ListableKinds    = []string{string(KindCompany), string(KindContact), string(KindLead)}
	ListAccessLevels = []string{string(ListAccessPublic), string(ListAccessPrivate)}
)
