package identity

// Permissions that touch customer-side and supplier-side records. Holding
// any of them lets a user look up the counterparties and contracts of that
// side, e.g. to pick a contract while entering an invoice.
var (
	SalesSide    = []string{PermClientsCustomers, PermContractsSales, PermInvoicesIssued, PermPaymentsReceipts}
	PurchaseSide = []string{PermClientsSuppliers, PermContractsPurchase, PermInvoicesReceived, PermPaymentsExpenses}
)

// NarrowKinds resolves which record kinds a listing may return.
// A non-zero requested kind must be visible to g, otherwise the result is
// ErrPermissionDenied. A zero requested kind expands to every kind in all
// that g can see.
func NarrowKinds[T comparable](g Grants, all []T, requested T, perms func(T) []string) ([]T, error) {
	var zero T
	if requested != zero {
		if !g.HasAny(perms(requested)...) {
			return nil, ErrPermissionDenied
		}
		return []T{requested}, nil
	}

	visible := make([]T, 0, len(all))
	for _, k := range all {
		if g.HasAny(perms(k)...) {
			visible = append(visible, k)
		}
	}
	if len(visible) == 0 {
		return nil, ErrPermissionDenied
	}
	return visible, nil
}

// CheckKind returns ErrPermissionDenied unless g holds one of the permissions
// guarding kind
func CheckKind[T any](g Grants, kind T, perms func(T) []string) error {
	if !g.HasAny(perms(kind)...) {
		return ErrPermissionDenied
	}
	return nil
}
