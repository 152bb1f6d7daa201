// Package navigation filters the static application menu down to what a
// caller is allowed to reach.
package navigation

import (
	"github.com/erp/erp-system/internal/domain/identity"
)

// Item is a menu entry. A leaf has a Path; a group has Children.
// Permissions is an any-of requirement; empty means always visible.
type Item struct {
	Key         string
	Label       string
	Path        string
	Permissions []string
	Children    []Item
}

// IsGroup reports whether the item holds children
func (it Item) IsGroup() bool {
	return len(it.Children) > 0
}

// DefaultMenu returns the application menu in display order
func DefaultMenu() []Item {
	return []Item{
		{Key: "home", Label: "首页", Path: "/"},
		{Key: "contracts", Label: "合同管理", Children: []Item{
			{Key: "contracts.sales", Label: "销售合同", Path: "/contracts/sales", Permissions: []string{identity.PermContractsSales}},
			{Key: "contracts.purchase", Label: "采购合同", Path: "/contracts/purchase", Permissions: []string{identity.PermContractsPurchase}},
		}},
		{Key: "invoices", Label: "发票管理", Children: []Item{
			{Key: "invoices.issued", Label: "开具发票", Path: "/invoices/issued", Permissions: []string{identity.PermInvoicesIssued}},
			{Key: "invoices.received", Label: "取得发票", Path: "/invoices/received", Permissions: []string{identity.PermInvoicesReceived}},
		}},
		{Key: "payments", Label: "收付款", Children: []Item{
			{Key: "payments.receipts", Label: "收款", Path: "/payments/receipts", Permissions: []string{identity.PermPaymentsReceipts}},
			{Key: "payments.expenses", Label: "付款", Path: "/payments/expenses", Permissions: []string{identity.PermPaymentsExpenses}},
		}},
		{Key: "clients", Label: "伙伴管理", Children: []Item{
			{Key: "clients.customers", Label: "客户列表", Path: "/clients/customers", Permissions: []string{identity.PermClientsCustomers}},
			{Key: "clients.suppliers", Label: "供应商列表", Path: "/clients/suppliers", Permissions: []string{identity.PermClientsSuppliers}},
		}},
		{Key: "projects", Label: "项目管理", Path: "/projects", Permissions: []string{identity.PermProjects}},
		{Key: "users", Label: "用户管理", Path: "/users", Permissions: []string{identity.PermUsers}},
		{Key: "settings", Label: "系统设置", Path: "/settings", Permissions: []string{identity.AdminSentinel}},
	}
}

// Filter returns the entries of menu visible to g, keeping group structure
// and order. A group survives only if at least one child does. Nothing is
// ever added, and menu itself is not modified.
func Filter(menu []Item, g identity.Grants) []Item {
	out := make([]Item, 0, len(menu))
	for _, it := range menu {
		if it.IsGroup() {
			children := make([]Item, 0, len(it.Children))
			for _, child := range it.Children {
				if visible(child, g) {
					children = append(children, child)
				}
			}
			if len(children) == 0 {
				continue
			}
			group := it
			group.Children = children
			out = append(out, group)
			continue
		}
		if visible(it, g) {
			out = append(out, it)
		}
	}
	return out
}

func visible(it Item, g identity.Grants) bool {
	if len(it.Permissions) == 0 {
		return true
	}
	return g.HasAny(it.Permissions...)
}

// Paths lists every reachable path in menu, depth first
func Paths(menu []Item) []string {
	var out []string
	for _, it := range menu {
		if it.Path != "" {
			out = append(out, it.Path)
		}
		out = append(out, Paths(it.Children)...)
	}
	return out
}

// Section is a home-page area and the permissions that unlock it
type Section struct {
	Key         string
	Permissions []string
}

// HomeSections lists the home-page areas in display order
func HomeSections() []Section {
	return []Section{
		{Key: "contracts", Permissions: identity.GroupContracts},
		{Key: "invoices", Permissions: identity.GroupInvoices},
		{Key: "payments", Permissions: identity.GroupPayments},
		{Key: "clients", Permissions: identity.GroupClients},
		{Key: "projects", Permissions: []string{identity.PermProjects}},
		{Key: "users", Permissions: []string{identity.PermUsers}},
	}
}

// VisibleSections returns the keys of the home-page areas g may open
func VisibleSections(g identity.Grants) []string {
	out := make([]string, 0, len(HomeSections()))
	for _, s := range HomeSections() {
		if g.HasAny(s.Permissions...) {
			out = append(out, s.Key)
		}
	}
	return out
}
