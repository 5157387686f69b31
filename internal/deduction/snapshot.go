package deduction

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RuleKind is the closed set of rule slots payroll computation reads.
// Catalog rows are mapped onto these by name once, when the snapshot is
// built, instead of string lookups at computation time.
type RuleKind int

const (
	KindHousing RuleKind = iota
	KindTransport
	KindEmployeeTax
	KindPension
	KindMedicalInsurance
	KindOther

	kindCount
)

// canonical catalog names, matched case-insensitively
var kindNames = map[RuleKind]string{
	KindHousing:          "Housing",
	KindTransport:        "Transport",
	KindEmployeeTax:      "Employee Tax",
	KindPension:          "Pension",
	KindMedicalInsurance: "Medical Insurance",
	KindOther:            "Others",
}

// Snapshot freezes the catalog percentages for one payroll computation.
// A kind absent from the catalog stays at zero percent; payroll treats
// that as "rule contributes nothing", not as an error.
type Snapshot struct {
	percentages [kindCount]decimal.Decimal
}

func (s Snapshot) Percentage(kind RuleKind) decimal.Decimal {
	if kind < 0 || kind >= kindCount {
		return decimal.Zero
	}
	return s.percentages[kind]
}

// BuildSnapshot maps catalog rows onto the closed rule-kind set. Rows
// whose name matches no kind are logged: a misspelled rule would
// otherwise silently contribute 0% to every payslip.
func BuildSnapshot(rules []Deduction, logger *zap.Logger) Snapshot {
	byName := make(map[string]RuleKind, kindCount)
	for kind, name := range kindNames {
		byName[strings.ToLower(name)] = kind
	}

	var snap Snapshot
	for _, rule := range rules {
		kind, ok := byName[strings.ToLower(strings.TrimSpace(rule.Name))]
		if !ok {
			if logger != nil {
				logger.Warn("deduction rule matches no payroll rule kind",
					zap.String("code", rule.Code),
					zap.String("name", rule.Name),
				)
			}
			continue
		}
		snap.percentages[kind] = rule.Percentage
	}

	return snap
}
