package identity

import (
	"sort"
	"strings"

	"github.com/erp/erp-system/internal/domain/shared"
)

// Permission strings are flat, dot-namespaced capability identifiers.
// There is no inheritance between them.
const (
	PermContractsSales    = "contracts.sales"
	PermContractsPurchase = "contracts.purchase"

	PermInvoicesIssued   = "invoices.issued"
	PermInvoicesReceived = "invoices.received"

	PermPaymentsReceipts = "payments.receipts"
	PermPaymentsExpenses = "payments.expenses"

	PermProjects = "projects"

	PermClientsCustomers = "clients.customers"
	PermClientsSuppliers = "clients.suppliers"

	PermUsers = "users"
)

// AdminSentinel is the pseudo-permission used by navigation entries that only
// administrators may see. It is never granted to a user.
const AdminSentinel = "admin"

// AllPermissions lists the full vocabulary in display order
var AllPermissions = []string{
	PermContractsSales,
	PermContractsPurchase,
	PermInvoicesIssued,
	PermInvoicesReceived,
	PermPaymentsReceipts,
	PermPaymentsExpenses,
	PermProjects,
	PermClientsCustomers,
	PermClientsSuppliers,
	PermUsers,
}

// Permission groups used for bulk assignment
var (
	GroupContracts = []string{PermContractsSales, PermContractsPurchase}
	GroupInvoices  = []string{PermInvoicesIssued, PermInvoicesReceived}
	GroupPayments  = []string{PermPaymentsReceipts, PermPaymentsExpenses}
	GroupClients   = []string{PermClientsCustomers, PermClientsSuppliers}
)

// PermissionGroups maps group names to their members. ADMIN holds everything.
func PermissionGroups() map[string][]string {
	return map[string][]string{
		"CONTRACTS_ADMIN": append([]string(nil), GroupContracts...),
		"INVOICES_ADMIN":  append([]string(nil), GroupInvoices...),
		"PAYMENTS_ADMIN":  append([]string(nil), GroupPayments...),
		"CLIENTS_ADMIN":   append([]string(nil), GroupClients...),
		"ADMIN":           append([]string(nil), AllPermissions...),
	}
}

var knownPermissions = func() map[string]struct{} {
	m := make(map[string]struct{}, len(AllPermissions))
	for _, p := range AllPermissions {
		m[p] = struct{}{}
	}
	return m
}()

// IsValidPermission reports whether p belongs to the vocabulary
func IsValidPermission(p string) bool {
	_, ok := knownPermissions[p]
	return ok
}

// ErrInvalidPermission is returned when a permission outside the vocabulary is assigned
var ErrInvalidPermission = shared.NewDomainError("INVALID_PERMISSION", "无效的权限")

// NormalizePermissions validates perms against the vocabulary and returns them
// deduplicated and sorted. Unknown entries are reported together.
func NormalizePermissions(perms []string) ([]string, error) {
	seen := make(map[string]struct{}, len(perms))
	var invalid []string
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		p = strings.TrimSpace(p)
		if !IsValidPermission(p) {
			invalid = append(invalid, p)
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	if len(invalid) > 0 {
		return nil, ErrInvalidPermission.WithMessage("无效的权限: " + strings.Join(invalid, ", "))
	}
	sort.Strings(out)
	return out, nil
}
