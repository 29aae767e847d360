package country

import (
	"fmt"

	"github.com/tmorvan/statesim/internal/encode"
	"github.com/tmorvan/statesim/internal/models"
)

// DailyRecord flattens the whole economy into named numeric fields, one
// snapshot per day, suitable for append-only logging and for feeding numeric
// policies. Field names are deterministic; encode.RecordVector defines the
// canonical ordering.
func (c *Country) DailyRecord(reg *encode.Registry) map[string]float64 {
	record := make(map[string]float64)

	if c.project != nil {
		record["under_construction"] = 1
		record["construction_progress"] = c.project.Progress
		record["construction_target"] = float64(reg.BuildingIndex(c.project.StateID, c.project.BuildingName))
	} else {
		record["under_construction"] = 0
		record["construction_progress"] = 0
		record["construction_target"] = encode.UnknownIndex
	}

	for _, id := range c.order {
		state := c.states[id]
		for _, b := range state.Buildings {
			prefix := fmt.Sprintf("%s_%s", id, b.Name)

			record[prefix+"_building_level"] = float64(b.Level)
			record[prefix+"_building_max_level"] = float64(b.MaxLevel)
			record[prefix+"_cash_reserve"] = b.CashReserve
			record[prefix+"_production_method_index"] = float64(b.ActiveMethodIndex())
			record[prefix+"_shortage_penalty"] = b.ShortagePenalty
			record[prefix+"_wage_cost"] = b.Wages()
			record[prefix+"_input_cost"] = b.ConsumptionCost(state.Ledger)
			record[prefix+"_output_value"] = b.ProductionValue(state.Ledger)

			production := b.DailyProduction()
			consumption := b.DailyConsumption()
			for _, good := range models.AllGoodTypes() {
				record[fmt.Sprintf("%s_production_%s", prefix, good)] = production[good]
				record[fmt.Sprintf("%s_consumption_%s", prefix, good)] = consumption[good]
			}
		}
	}

	return record
}
