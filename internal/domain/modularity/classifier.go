package modularity

import (
	"strings"

	"github.com/fatih/camelcase"
)

type domainKeyword struct {
	keyword string
	domain  string
}

// domainTable is matched in order; the first keyword found in a name wins.
// "price" precedes "pricing" so both resolve to Pricing.
var domainTable = []domainKeyword{
	{"category", "Category"},
	{"brand", "Brand"},
	{"product", "Product"},
	{"sku", "SKU"},
	{"spu", "SPU"},
	{"attribute", "Attribute"},
	{"price", "Pricing"},
	{"pricing", "Pricing"},
	{"dimension", "Dimension"},
	{"import", "Import"},
	{"export", "Export"},
	{"user", "User"},
	{"order", "Order"},
	{"payment", "Payment"},
	{"inventory", "Inventory"},
	{"stock", "Stock"},
}

// MiscGroup collects declarations without a resolved domain.
const MiscGroup = "misc"

const adminSuffix = "Admin"

// ClassifyDomain maps a declared name to a business domain by
// case-insensitive keyword match. ok is false when nothing matches.
func ClassifyDomain(name string) (domain string, ok bool) {
	lower := strings.ToLower(name)
	for _, kw := range domainTable {
		if strings.Contains(lower, kw.keyword) {
			return kw.domain, true
		}
	}
	return "", false
}

// Domains returns the closed set of domain tags in table order.
func Domains() []string {
	seen := make(map[string]bool, len(domainTable))
	var out []string
	for _, kw := range domainTable {
		if !seen[kw.domain] {
			seen[kw.domain] = true
			out = append(out, kw.domain)
		}
	}
	return out
}

// hasAdminSuffix reports whether the last CamelCase word of name is "Admin".
// "SKUAdmin" and "Brand_Admin" match; "BadminFoo" and "Administration" don't.
func hasAdminSuffix(name string) bool {
	words := camelcase.Split(strings.TrimRight(name, "_0123456789"))
	if len(words) == 0 {
		return false
	}
	return words[len(words)-1] == adminSuffix
}

// modelNameOf strips the Admin suffix so the model part can be classified.
func modelNameOf(name string) string {
	if !hasAdminSuffix(name) {
		return name
	}
	trimmed := strings.TrimRight(name, "_0123456789")
	return strings.TrimSuffix(strings.TrimSuffix(trimmed, adminSuffix), "_")
}
