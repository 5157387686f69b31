package deduction_test

import (
	"testing"

	"github.com/hrh2/erp/internal/deduction"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildSnapshot_MatchesNamesCaseInsensitively(t *testing.T) {
	rules := []deduction.Deduction{
		{Code: "DED001", Name: "employee tax", Percentage: decimal.RequireFromString("30.0")},
		{Code: "DED004", Name: "  HOUSING ", Percentage: decimal.RequireFromString("14.0")},
	}

	snap := deduction.BuildSnapshot(rules, nil)

	assert.True(t, snap.Percentage(deduction.KindEmployeeTax).Equal(decimal.RequireFromString("30.0")))
	assert.True(t, snap.Percentage(deduction.KindHousing).Equal(decimal.RequireFromString("14.0")))
}

func TestBuildSnapshot_UnmatchedNameContributesNothing(t *testing.T) {
	rules := []deduction.Deduction{
		{Code: "DED099", Name: "Union Dues", Percentage: decimal.RequireFromString("2.0")},
	}

	snap := deduction.BuildSnapshot(rules, nil)

	for kind := deduction.KindHousing; kind <= deduction.KindOther; kind++ {
		assert.True(t, snap.Percentage(kind).IsZero())
	}
}

func TestBuildSnapshot_MissingKindIsZero(t *testing.T) {
	snap := deduction.BuildSnapshot(nil, nil)

	assert.True(t, snap.Percentage(deduction.KindPension).IsZero())
	assert.True(t, snap.Percentage(deduction.RuleKind(99)).IsZero())
}
