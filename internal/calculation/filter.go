package calculation

import (
	"strings"

	"github.com/rpgo/deposit-interest/internal/domain"
)

// FilterByProperty keeps records whose property matches one of properties,
// ignoring case and surrounding space. An empty list keeps every record.
func FilterByProperty(records []domain.TenantDepositRecord, properties []string) []domain.TenantDepositRecord {
	if len(properties) == 0 {
		return records
	}
	want := make(map[string]struct{}, len(properties))
	for _, p := range properties {
		want[normalizeProperty(p)] = struct{}{}
	}
	kept := make([]domain.TenantDepositRecord, 0, len(records))
	for _, rec := range records {
		if _, ok := want[normalizeProperty(rec.Property)]; ok {
			kept = append(kept, rec)
		}
	}
	return kept
}

func normalizeProperty(p string) string {
	return strings.ToLower(strings.TrimSpace(p))
}
