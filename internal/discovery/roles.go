// Package discovery walks a deserialized quote payload to find the array of
// quote options, classify its fields into semantic roles, and suggest a
// reusable field mapping.
package discovery

import (
	"regexp"

	"github.com/fretemap/fretemap-cli/internal/document"
	"github.com/fretemap/fretemap-cli/internal/fields"
)

// Role is the semantic meaning detected for a document field.
type Role string

const (
	RoleNone        Role = ""
	RoleCarrierName Role = "carrier_name"
	RolePrice       Role = "price"
	RoleLeadTime    Role = "delivery_days"
	RoleCarrierID   Role = "carrier_id"
	RoleErrorFlag   Role = "error"
)

// Detection confidences per tier. Exact key matches are near-certain;
// substring matches need the sample value to back them up.
const (
	ConfidenceExact     = 0.95
	ConfidenceSubstring = 0.6
)

// roleRule is one ordered pattern group. Rules run in declaration order and
// the first accepted match wins, so the list order is part of the contract.
type roleRule struct {
	role  Role
	exact *regexp.Regexp
	broad *regexp.Regexp
	// wantNumeric gates substring matches on the sample value being a number
	// or a numeric-looking string. Exact matches bypass the gate.
	wantNumeric bool
}

var roleRules = []roleRule{
	{
		role:  RoleCarrierName,
		exact: regexp.MustCompile(`^(transportadora|carrier|carrier_name|shipping_company|empresa|servico|service|nome|name)$`),
		broad: regexp.MustCompile(`transportadora|carrier|servico|service|nome|name`),
	},
	{
		role:        RolePrice,
		exact:       regexp.MustCompile(`^(preco|price|valor|valor_frete|vlr_frete|frete|custo|cost|amount|total|tarifa)$`),
		broad:       regexp.MustCompile(`preco|price|valor|frete|custo|cost|tarifa|amount`),
		wantNumeric: true,
	},
	{
		role:        RoleLeadTime,
		exact:       regexp.MustCompile(`^(prazo|prazo_dias|prazo_entrega|delivery_days|delivery_time|dias|days|lead_time|eta)$`),
		broad:       regexp.MustCompile(`prazo|delivery|dias|days|lead`),
		wantNumeric: true,
	},
	{
		role:  RoleCarrierID,
		exact: regexp.MustCompile(`^(id|codigo|cod|code|sku|servico_id|service_id|carrier_id|service_code)$`),
		broad: regexp.MustCompile(`id|codigo|code`),
	},
	{
		role:  RoleErrorFlag,
		exact: regexp.MustCompile(`^(erro|error|msg_erro|error_message|mensagem_erro|falha|fault)$`),
		broad: regexp.MustCompile(`erro|error|falha|fail`),
	},
}

// DetectRole classifies a document key by its normalized spelling and sample
// value. The exact tier runs across all groups before any substring match is
// considered, so "carrier_id" lands on the identifier role rather than the
// carrier-name substring. Keys matching no rule come back as RoleNone with
// confidence 0.
func DetectRole(key string, sample document.Value) (Role, float64) {
	norm := fields.NormalizeHeader(key)
	for _, rule := range roleRules {
		if rule.exact.MatchString(norm) {
			return rule.role, ConfidenceExact
		}
	}
	for _, rule := range roleRules {
		if !rule.broad.MatchString(norm) {
			continue
		}
		if rule.wantNumeric && !numericLooking(sample) {
			continue
		}
		return rule.role, ConfidenceSubstring
	}
	return RoleNone, 0
}

func numericLooking(v document.Value) bool {
	switch v.Kind() {
	case document.KindNumber:
		return true
	case document.KindString:
		_, ok := fields.LooksNumeric(v.StringVal())
		return ok
	}
	return false
}
