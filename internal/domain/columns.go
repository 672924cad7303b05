package domain

// Column names expected in uploaded product tables. Customer and supplier
// numeric columns are named by the segmentation attribute constants.
const (
	ColItem        = "Item"
	ColDemand      = "Demand"
	ColUnitCost    = "UnitCost"
	ColLeadTime    = "LeadTime"
	ColCriticality = "Criticality"

	ColCustomer = "Customer"
	ColSupplier = "Supplier"
)
