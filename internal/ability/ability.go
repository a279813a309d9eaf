// Package ability computes the set of (action, subject) permissions a
// role holds. Rules are a pure function of the role tag: no state, no
// runtime rule building.
package ability

import "delivery_admin/internal/models"

type Action string

const (
	ActionManage Action = "manage" // wildcard over all actions
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Subject string

const (
	SubjectAll      Subject = "all" // wildcard over all subjects
	SubjectUser     Subject = "User"
	SubjectCustomer Subject = "Customer"
	SubjectDriver   Subject = "Driver"
	SubjectCheckin  Subject = "CheckinRecord"
)

// Rule is one permitted (action, subject) pair.
type Rule struct {
	Action  Action  `json:"action"`
	Subject Subject `json:"subject"`
}

var rulesByRole = map[string][]Rule{
	models.UserTypeAdmin: {
		{ActionManage, SubjectAll},
	},
	models.UserTypeDriver: {
		{ActionRead, SubjectDriver},
		{ActionUpdate, SubjectDriver},
		{ActionCreate, SubjectCheckin},
		{ActionRead, SubjectCheckin},
		{ActionUpdate, SubjectCheckin},
	},
	models.UserTypeSales: {
		{ActionCreate, SubjectCustomer},
		{ActionRead, SubjectCustomer},
		{ActionUpdate, SubjectCustomer},
		{ActionDelete, SubjectCustomer},
		{ActionRead, SubjectDriver},
		{ActionRead, SubjectCheckin},
	},
}

// RulesFor returns the rules granted to a role. Unknown roles get none.
func RulesFor(role string) []Rule {
	return rulesByRole[role]
}

// Can reports whether a role may perform action on subject. A rule with
// ActionManage covers every action on its subject, and SubjectAll covers
// every subject.
func Can(role string, action Action, subject Subject) bool {
	for _, r := range rulesByRole[role] {
		if r.Action != ActionManage && r.Action != action {
			continue
		}
		if r.Subject != SubjectAll && r.Subject != subject {
			continue
		}
		return true
	}
	return false
}
