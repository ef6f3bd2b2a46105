package handlers

import (
	"streetadmin/table"
	"streetadmin/viewmodels"
)

func statusBadge(s viewmodels.Status) table.Cell {
	return table.Badge(s.Label(), s.Tone())
}

var statusFilter = filter{Key: "status", Label: "Status", Options: []option{
	{Value: "", Label: "All statuses"},
	{Value: "active", Label: "Active"},
	{Value: "inactive", Label: "Inactive"},
	{Value: "blocked", Label: "Blocked"},
}}

var orderStatusFilter = filter{Key: "status", Label: "Status", Options: []option{
	{Value: "", Label: "All statuses"},
	{Value: "pending", Label: "Pending"},
	{Value: "confirmed", Label: "Confirmed"},
	{Value: "preparing", Label: "Preparing"},
	{Value: "ready_for_pickup", Label: "Ready for pickup"},
	{Value: "out_for_delivery", Label: "Out for delivery"},
	{Value: "delivered", Label: "Delivered"},
	{Value: "cancelled", Label: "Cancelled"},
}}

func userColumns() []table.Column[viewmodels.User] {
	return []table.Column[viewmodels.User]{
		{ID: "firstName", Header: "Customer", Sortable: true, Cell: func(u viewmodels.User) table.Cell {
			return table.Avatar(u.Initials, u.DisplayName, u.Phone)
		}},
		{ID: "email", Header: "Email", Sortable: true, Cell: func(u viewmodels.User) table.Cell {
			if u.Email == viewmodels.NoEmail {
				return table.Muted(u.Email)
			}
			return table.Copy(u.Email, u.Email)
		}},
		{ID: "status", Header: "Status", Cell: func(u viewmodels.User) table.Cell { return statusBadge(u.Status) }},
		{ID: "ordersCount", Header: "Orders", Align: "right", Cell: func(u viewmodels.User) table.Cell { return table.Text(u.OrdersCount) }},
		{ID: "walletBalance", Header: "Wallet", Align: "right", Cell: func(u viewmodels.User) table.Cell { return table.Text(u.WalletBalance) }},
		{ID: "createdAt", Header: "Joined", Sortable: true, Cell: func(u viewmodels.User) table.Cell { return table.Muted(u.JoinedAt) }},
	}
}

func retailerColumns() []table.Column[viewmodels.Retailer] {
	return []table.Column[viewmodels.Retailer]{
		{ID: "storeName", Header: "Retailer", Sortable: true, Cell: func(r viewmodels.Retailer) table.Cell {
			return table.Avatar(viewmodels.Initials(r.Name), r.Name, r.OwnerName)
		}},
		{ID: "category", Header: "Category", Cell: func(r viewmodels.Retailer) table.Cell { return table.Text(r.Category) }},
		{ID: "location", Header: "Location", Cell: func(r viewmodels.Retailer) table.Cell { return table.Muted(r.Location) }},
		{ID: "status", Header: "Status", Cell: func(r viewmodels.Retailer) table.Cell { return statusBadge(r.Status) }},
		{ID: "rating", Header: "Rating", Sortable: true, Align: "right", Cell: func(r viewmodels.Retailer) table.Cell { return table.Text(r.Rating) }},
		{ID: "totalOrders", Header: "Orders", Align: "right", Cell: func(r viewmodels.Retailer) table.Cell { return table.Text(r.TotalOrders) }},
		{ID: "createdAt", Header: "Joined", Sortable: true, Cell: func(r viewmodels.Retailer) table.Cell { return table.Muted(r.JoinedAt) }},
	}
}

func courierColumns() []table.Column[viewmodels.Courier] {
	return []table.Column[viewmodels.Courier]{
		{ID: "firstName", Header: "Courier", Sortable: true, Cell: func(r viewmodels.Courier) table.Cell {
			return table.Avatar(viewmodels.Initials(r.Name), r.Name, r.Phone)
		}},
		{ID: "vehicleType", Header: "Vehicle", Cell: func(r viewmodels.Courier) table.Cell { return table.Text(r.Vehicle) }},
		{ID: "status", Header: "Status", Cell: func(r viewmodels.Courier) table.Cell { return statusBadge(r.Status) }},
		{ID: "rating", Header: "Rating", Sortable: true, Align: "right", Cell: func(r viewmodels.Courier) table.Cell { return table.Text(r.Rating) }},
		{ID: "completedDeliveries", Header: "Deliveries", Sortable: true, Align: "right", Cell: func(r viewmodels.Courier) table.Cell {
			return table.Text(r.CompletedDeliveries)
		}},
		{ID: "lastSeenAt", Header: "Last seen", Cell: func(r viewmodels.Courier) table.Cell { return table.Muted(r.LastSeenAt) }},
	}
}

func orderColumns() []table.Column[viewmodels.Order] {
	return []table.Column[viewmodels.Order]{
		{ID: "orderNumber", Header: "Order", Sortable: true, Cell: func(o viewmodels.Order) table.Cell { return table.Copy(o.Number, o.Number) }},
		{ID: "status", Header: "Status", Sortable: true, Cell: func(o viewmodels.Order) table.Cell { return table.Badge(o.StatusLabel, o.StatusTone) }},
		{ID: "user", Header: "Customer", Cell: func(o viewmodels.Order) table.Cell {
			if o.CustomerID == "" {
				return table.Text(o.Customer)
			}
			return table.Link(o.Customer, "/users/"+o.CustomerID)
		}},
		{ID: "vendor", Header: "Retailer", Cell: func(o viewmodels.Order) table.Cell {
			if o.RetailerID == "" {
				return table.Text(o.Retailer)
			}
			return table.Link(o.Retailer, "/retailers/"+o.RetailerID)
		}},
		{ID: "courier", Header: "Courier", Cell: func(o viewmodels.Order) table.Cell { return table.Muted(o.Courier) }},
		{ID: "totalAmount", Header: "Total", Sortable: true, Align: "right", Cell: func(o viewmodels.Order) table.Cell { return table.Text(o.Total) }},
		{ID: "createdAt", Header: "Placed", Sortable: true, Cell: func(o viewmodels.Order) table.Cell { return table.Muted(o.PlacedAt) }},
	}
}

func referralColumns() []table.Column[viewmodels.ReferralCode] {
	return []table.Column[viewmodels.ReferralCode]{
		{ID: "code", Header: "Code", Sortable: true, Cell: func(r viewmodels.ReferralCode) table.Cell { return table.Copy(r.Code, r.Code) }},
		{ID: "owner", Header: "Owner", Cell: func(r viewmodels.ReferralCode) table.Cell {
			if r.OwnerID == "" {
				return table.Text(r.OwnerName)
			}
			return table.Link(r.OwnerName, "/users/"+r.OwnerID)
		}},
		{ID: "status", Header: "Status", Cell: func(r viewmodels.ReferralCode) table.Cell { return statusBadge(r.Status) }},
		{ID: "usageCount", Header: "Usage", Sortable: true, Cell: func(r viewmodels.ReferralCode) table.Cell { return table.Text(r.Usage) }},
		{ID: "rewardAmount", Header: "Reward", Align: "right", Cell: func(r viewmodels.ReferralCode) table.Cell { return table.Text(r.Reward) }},
		{ID: "expiresAt", Header: "Expires", Sortable: true, Cell: func(r viewmodels.ReferralCode) table.Cell { return table.Muted(r.ExpiresAt) }},
		{ID: "actions", Header: "", Align: "right", Cell: func(r viewmodels.ReferralCode) table.Cell {
			if r.IsActive {
				return table.Cell{Kind: table.CellAction, Text: "Deactivate", Href: "/referral-codes/" + r.ID + "/status?active=false"}
			}
			return table.Cell{Kind: table.CellAction, Text: "Activate", Href: "/referral-codes/" + r.ID + "/status?active=true"}
		}},
	}
}

func adminUserColumns() []table.Column[viewmodels.AdminUser] {
	return []table.Column[viewmodels.AdminUser]{
		{ID: "firstName", Header: "Name", Sortable: true, Cell: func(a viewmodels.AdminUser) table.Cell {
			return table.Avatar(viewmodels.Initials(a.Name), a.Name, a.Email)
		}},
		{ID: "role", Header: "Role", Sortable: true, Cell: func(a viewmodels.AdminUser) table.Cell { return table.Badge(a.RoleLabel, "info") }},
		{ID: "status", Header: "Status", Cell: func(a viewmodels.AdminUser) table.Cell { return statusBadge(a.Status) }},
		{ID: "lastLoginAt", Header: "Last login", Sortable: true, Cell: func(a viewmodels.AdminUser) table.Cell { return table.Muted(a.LastLoginAt) }},
	}
}
