package collections

import (
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/services"
)

// ── Definition structs ───────────────────────────────────────────────────

type revenueDef struct {
	description string
	quantity    float64
	unitPrice   float64
}

type costDef struct {
	description string
	amount      float64
}

type quotationDef struct {
	customerName        string
	status              services.Status
	marketType          string
	complexityScore     float64
	requiresEngineering bool
	engineeringStatus   services.EngineeringStatus
	origin              string
	destination         string
	cargoDescription    string
	estimatedShipments  int
	revenue             []revenueDef
	costs               []costDef
	pursuit             []costDef
	convert             bool
}

// Seed populates the collections with realistic freight quotation data.
// It is safe to call on every startup because it returns early if any
// quotation records already exist.
func Seed(app *pocketbase.PocketBase) error {
	quotationsCol, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		return fmt.Errorf("seed: could not find quotations collection: %w", err)
	}
	existing, err := app.FindAllRecords(quotationsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query quotations: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: quotations collection is empty – inserting seed data …")

	customersCol, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		return fmt.Errorf("seed: could not find customers collection: %w", err)
	}
	revenueCol, err := app.FindCollectionByNameOrId("revenue_items")
	if err != nil {
		return fmt.Errorf("seed: could not find revenue_items collection: %w", err)
	}
	costCol, err := app.FindCollectionByNameOrId("cost_items")
	if err != nil {
		return fmt.Errorf("seed: could not find cost_items collection: %w", err)
	}
	pursuitCol, err := app.FindCollectionByNameOrId("pursuit_cost_items")
	if err != nil {
		return fmt.Errorf("seed: could not find pursuit_cost_items collection: %w", err)
	}
	pjoCol, err := app.FindCollectionByNameOrId("proforma_job_orders")
	if err != nil {
		return fmt.Errorf("seed: could not find proforma_job_orders collection: %w", err)
	}

	customerIDs := make(map[string]string)
	ensureCustomer := func(name string) (string, error) {
		if id, ok := customerIDs[name]; ok {
			return id, nil
		}
		r := core.NewRecord(customersCol)
		r.Set("name", name)
		if err := app.Save(r); err != nil {
			return "", fmt.Errorf("seed: save customer %q: %w", name, err)
		}
		customerIDs[name] = r.Id
		return r.Id, nil
	}

	quotations := []quotationDef{
		{
			customerName:        "Meridian Offshore BV",
			status:              services.StatusSubmitted,
			marketType:          "project_cargo",
			complexityScore:     28,
			requiresEngineering: true,
			engineeringStatus:   services.EngineeringCompleted,
			origin:              "Rotterdam",
			destination:         "Jakarta",
			cargoDescription:    "Wind turbine nacelles",
			estimatedShipments:  3,
			revenue: []revenueDef{
				{"Ocean freight", 3, 42000},
				{"Heavy-lift surcharge", 3, 6500},
			},
			costs: []costDef{
				{"Vessel charter", 96000},
				{"Port handling", 14500},
			},
			pursuit: []costDef{
				{"Route survey", 4200},
				{"Engineering estimate", 2800},
			},
		},
		{
			customerName:       "Sunway Agri Exports",
			status:             services.StatusDraft,
			marketType:         "general_cargo",
			complexityScore:    6,
			engineeringStatus:  services.EngineeringNotRequired,
			origin:             "Santos",
			destination:        "Shanghai",
			cargoDescription:   "Bagged soybean meal",
			estimatedShipments: 1,
			revenue: []revenueDef{
				{"Ocean freight", 1, 18500},
			},
			costs: []costDef{
				{"Slot cost", 12200},
			},
		},
		{
			customerName:        "Meridian Offshore BV",
			status:              services.StatusWon,
			marketType:          "heavy_lift",
			complexityScore:     41,
			requiresEngineering: true,
			engineeringStatus:   services.EngineeringCompleted,
			origin:              "Antwerp",
			destination:         "Mombasa",
			cargoDescription:    "Gantry crane sections",
			estimatedShipments:  2,
			revenue: []revenueDef{
				{"Ocean freight", 2, 61000},
			},
			costs: []costDef{
				{"Vessel charter", 88000},
			},
			pursuit: []costDef{
				{"Lift plan engineering", 5000},
			},
			convert: true,
		},
	}

	seq := 0
	now := time.Now()
	for _, def := range quotations {
		customerID, err := ensureCustomer(def.customerName)
		if err != nil {
			return err
		}

		number := services.GenerateQuotationNumber(seq, now)
		seq++

		revenue := make([]services.RevenueItem, 0, len(def.revenue))
		for _, d := range def.revenue {
			revenue = append(revenue, services.RevenueItem{
				Description: d.description,
				Quantity:    d.quantity,
				UnitPrice:   d.unitPrice,
			})
		}
		costs := make([]services.CostItem, 0, len(def.costs))
		for _, d := range def.costs {
			costs = append(costs, services.CostItem{
				Description:     d.description,
				EstimatedAmount: d.amount,
			})
		}
		pursuit := make([]services.PursuitCostItem, 0, len(def.pursuit))
		for _, d := range def.pursuit {
			pursuit = append(pursuit, services.PursuitCostItem{
				Description: d.description,
				Amount:      d.amount,
			})
		}
		snapshot := services.CalcFinancials(revenue, costs, pursuit, def.estimatedShipments)

		q := core.NewRecord(quotationsCol)
		q.Set("quotation_number", number)
		q.Set("customer", customerID)
		q.Set("status", string(def.status))
		q.Set("market_type", def.marketType)
		q.Set("complexity_score", def.complexityScore)
		q.Set("requires_engineering", def.requiresEngineering)
		q.Set("engineering_status", string(def.engineeringStatus))
		q.Set("origin", def.origin)
		q.Set("destination", def.destination)
		q.Set("cargo_description", def.cargoDescription)
		q.Set("estimated_shipments", def.estimatedShipments)
		q.Set("total_revenue", snapshot.TotalRevenue)
		q.Set("total_cost", snapshot.TotalCost)
		q.Set("gross_profit", snapshot.GrossProfit)
		q.Set("profit_margin", snapshot.ProfitMargin)
		q.Set("total_pursuit_cost", snapshot.TotalPursuitCost)
		q.Set("pursuit_cost_per_shipment", snapshot.PursuitCostPerShipment)
		q.Set("converted", def.convert)
		if err := app.Save(q); err != nil {
			return fmt.Errorf("seed: save quotation %s: %w", number, err)
		}

		for _, d := range def.revenue {
			r := core.NewRecord(revenueCol)
			r.Set("quotation", q.Id)
			r.Set("description", d.description)
			r.Set("quantity", d.quantity)
			r.Set("unit_price", d.unitPrice)
			if err := app.Save(r); err != nil {
				return fmt.Errorf("seed: save revenue item: %w", err)
			}
		}
		for _, d := range def.costs {
			r := core.NewRecord(costCol)
			r.Set("quotation", q.Id)
			r.Set("description", d.description)
			r.Set("estimated_amount", d.amount)
			if err := app.Save(r); err != nil {
				return fmt.Errorf("seed: save cost item: %w", err)
			}
		}
		for _, d := range def.pursuit {
			r := core.NewRecord(pursuitCol)
			r.Set("quotation", q.Id)
			r.Set("description", d.description)
			r.Set("amount", d.amount)
			if err := app.Save(r); err != nil {
				return fmt.Errorf("seed: save pursuit cost item: %w", err)
			}
		}

		if def.convert {
			quotation, err := services.QuotationFromRecord(q)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			seeds, err := services.SplitShipments(quotation, revenue, costs, snapshot.PursuitCostPerShipment)
			if err != nil {
				return fmt.Errorf("seed: split %s: %w", number, err)
			}
			for _, seed := range seeds {
				r := services.PJOSeedToRecord(pjoCol, seed)
				if err := app.Save(r); err != nil {
					return fmt.Errorf("seed: save proforma job order: %w", err)
				}
			}
		}
	}

	log.Println("seed: done")
	return nil
}
