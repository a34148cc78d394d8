package domain

// SeedState is the dataset used on first run and whenever the stored
// snapshot cannot be read.
func SeedState() State {
	return State{
		Departments: []Department{
			{ID: "1", Name: "Electronics", Notes: "Electronic components and devices"},
			{ID: "2", Name: "Office Supplies", Notes: "General office supplies"},
			{ID: "3", Name: "Tools", Notes: "Hardware and maintenance tools"},
		},
		Items: []InventoryItem{
			{
				SKU: "ELEC001", Name: "Arduino Uno", DepartmentID: "1", Department: "Electronics",
				Unit: "pcs", Quantity: 15, ReorderPoint: 10, Condition: ConditionNew,
				Description: "Microcontroller board", BillName: "TechSupply Co", BillNumber: "INV-2024-001",
			},
			{
				SKU: "OFF001", Name: "A4 Paper", DepartmentID: "2", Department: "Office Supplies",
				Unit: "reams", Quantity: 5, ReorderPoint: 20, Condition: ConditionNew,
				Description: "White copy paper", BillName: "Office Depot", BillNumber: "INV-2024-002",
			},
			{
				SKU: "TOOL001", Name: "Screwdriver Set", DepartmentID: "3", Department: "Tools",
				Unit: "sets", Quantity: 3, ReorderPoint: 5, Condition: ConditionGood,
				Description: "Phillips and flathead set", BillName: "Hardware Store", BillNumber: "INV-2024-003",
			},
		},
		Transactions: []Transaction{},
	}
}
