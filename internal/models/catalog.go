package models

// DefaultCatalog returns the built-in building kinds with their production
// methods and staffing tables.
func DefaultCatalog() *KindCatalog {
	return NewKindCatalog(
		&BuildingKind{
			Name:        "logging_camp",
			DisplayName: "Logging Camp",
			BuildCost:   200,
			Methods: []ProductionMethod{
				{
					Name:        "SimpleForestry",
					Production:  map[GoodType]float64{Wood: 30},
					Consumption: map[GoodType]float64{Tools: 5},
					Employees: []EmployeeRole{
						{Name: "shopkeeper", Wage: 1.0, Count: 500},
						{Name: "laborer", Wage: 1.0, Count: 4500},
					},
				},
				{
					Name:        "SawMills",
					Production:  map[GoodType]float64{Wood: 50},
					Consumption: map[GoodType]float64{Tools: 10},
					Employees: []EmployeeRole{
						{Name: "shopkeeper", Wage: 1.0, Count: 500},
						{Name: "laborer", Wage: 1.0, Count: 4000},
						{Name: "machinist", Wage: 1.0, Count: 500},
					},
				},
			},
			DefaultMethod: "SimpleForestry",
		},
		&BuildingKind{
			Name:        "coal_mine",
			DisplayName: "Coal Mine",
			BuildCost:   400,
			Methods: []ProductionMethod{
				{
					Name:        "PicksShovels",
					Production:  map[GoodType]float64{Coal: 25},
					Consumption: map[GoodType]float64{Tools: 5},
					Employees: []EmployeeRole{
						{Name: "shopkeeper", Wage: 1.0, Count: 500},
						{Name: "miner", Wage: 1.0, Count: 3000},
					},
				},
				{
					Name:        "AtmosphericEnginePump",
					Production:  map[GoodType]float64{Coal: 40},
					Consumption: map[GoodType]float64{Tools: 10},
					Employees: []EmployeeRole{
						{Name: "shopkeeper", Wage: 1.0, Count: 500},
						{Name: "miner", Wage: 1.0, Count: 3000},
					},
				},
			},
			DefaultMethod: "PicksShovels",
		},
		&BuildingKind{
			Name:        "tool_workshop",
			DisplayName: "Tool Workshop",
			BuildCost:   500,
			Methods: []ProductionMethod{
				{
					Name:        "CrudeTools",
					Production:  map[GoodType]float64{Tools: 15},
					Consumption: map[GoodType]float64{Wood: 5},
					Employees: []EmployeeRole{
						{Name: "shopkeeper", Wage: 1.0, Count: 500},
						{Name: "artisan", Wage: 1.0, Count: 1500},
					},
				},
				{
					Name:        "WroughtIronTools",
					Production:  map[GoodType]float64{Tools: 30},
					Consumption: map[GoodType]float64{Iron: 10, Wood: 5},
					Employees: []EmployeeRole{
						{Name: "shopkeeper", Wage: 1.0, Count: 500},
						{Name: "machinist", Wage: 1.0, Count: 2500},
					},
				},
			},
			DefaultMethod: "CrudeTools",
		},
		&BuildingKind{
			Name:        "wheat_farm",
			DisplayName: "Wheat Farm",
			BuildCost:   200,
			Methods: []ProductionMethod{
				{
					Name:       "OxPoweredPlows",
					Production: map[GoodType]float64{Wheat: 25},
					Employees: []EmployeeRole{
						{Name: "farmer", Wage: 1.0, Count: 1000},
						{Name: "laborer", Wage: 1.0, Count: 4000},
					},
				},
				{
					Name:        "HarvestingTools",
					Production:  map[GoodType]float64{Wheat: 35},
					Consumption: map[GoodType]float64{Tools: 2},
					Employees: []EmployeeRole{
						{Name: "farmer", Wage: 1.0, Count: 1000},
						{Name: "laborer", Wage: 1.0, Count: 3000},
					},
				},
			},
			DefaultMethod: "OxPoweredPlows",
		},
		&BuildingKind{
			Name:        "iron_mine",
			DisplayName: "Iron Mine",
			BuildCost:   400,
			Methods: []ProductionMethod{
				{
					Name:        "PicksShovels",
					Production:  map[GoodType]float64{Iron: 20},
					Consumption: map[GoodType]float64{Tools: 5},
					Employees: []EmployeeRole{
						{Name: "shopkeeper", Wage: 1.0, Count: 500},
						{Name: "miner", Wage: 1.0, Count: 3000},
					},
				},
				{
					Name:        "AtmosphericEnginePump",
					Production:  map[GoodType]float64{Iron: 40},
					Consumption: map[GoodType]float64{Tools: 10, Coal: 5},
					Employees: []EmployeeRole{
						{Name: "shopkeeper", Wage: 1.0, Count: 500},
						{Name: "miner", Wage: 1.0, Count: 3000},
					},
				},
			},
			DefaultMethod: "PicksShovels",
		},
		&BuildingKind{
			Name:        "construction_sector",
			DisplayName: "Construction Sector",
			BuildCost:   500,
			Methods: []ProductionMethod{
				{
					Name:        "NoConstruction",
					Production:  map[GoodType]float64{Construction: 0},
					Consumption: map[GoodType]float64{Wood: 0},
					Employees: []EmployeeRole{
						{Name: "carpenter", Wage: 1.0, Count: 0},
						{Name: "laborer", Wage: 1.0, Count: 0},
					},
				},
				{
					Name:        "WoodenBuilding",
					Production:  map[GoodType]float64{Construction: 20},
					Consumption: map[GoodType]float64{Wood: 10},
					Employees: []EmployeeRole{
						{Name: "carpenter", Wage: 1.0, Count: 1000},
						{Name: "laborer", Wage: 1.0, Count: 2000},
					},
				},
				{
					Name:        "IronBuilding",
					Production:  map[GoodType]float64{Construction: 30},
					Consumption: map[GoodType]float64{Iron: 15},
					Employees: []EmployeeRole{
						{Name: "ironworker", Wage: 1.2, Count: 1200},
						{Name: "laborer", Wage: 1.0, Count: 1800},
					},
				},
			},
			DefaultMethod: "WoodenBuilding",
		},
	)
}
