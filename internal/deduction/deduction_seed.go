package deduction

import (
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

type seedBracket struct {
	Lower decimal.Decimal `yaml:"lower"`
	Upper decimal.Decimal `yaml:"upper"`
	Base  decimal.Decimal `yaml:"base"`
	Rate  decimal.Decimal `yaml:"rate"`
	Fixed decimal.Decimal `yaml:"fixed"`
}

type seedFile struct {
	SSS            []seedBracket `yaml:"sss"`
	PhilHealth     []seedBracket `yaml:"philhealth"`
	PagIbig        []seedBracket `yaml:"pagibig"`
	WithholdingTax []seedBracket `yaml:"withholding_tax"`
}

// ParseRules decodes a bracket file in the rules.yaml layout.
func ParseRules(data []byte) ([]DeductionRule, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse deduction rules: %w", err)
	}

	var rules []DeductionRule
	add := func(typeName string, brackets []seedBracket) error {
		for i, b := range brackets {
			if b.Upper.LessThan(b.Lower) {
				return fmt.Errorf("%s bracket %d: upper %s below lower %s", typeName, i, b.Upper, b.Lower)
			}
			rules = append(rules, DeductionRule{
				TypeName:    typeName,
				LowerLimit:  b.Lower,
				UpperLimit:  b.Upper,
				BaseTax:     b.Base,
				Rate:        b.Rate,
				FixedAmount: b.Fixed,
			})
		}
		return nil
	}

	for typeName, brackets := range map[string][]seedBracket{
		TypeSSS:            f.SSS,
		TypePhilHealth:     f.PhilHealth,
		TypePagIbig:        f.PagIbig,
		TypeWithholdingTax: f.WithholdingTax,
	} {
		if err := add(typeName, brackets); err != nil {
			return nil, err
		}
	}
	return rules, nil
}

func DefaultRules() ([]DeductionRule, error) {
	return ParseRules(defaultRules)
}
