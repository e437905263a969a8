package services

// Quotation is the engine's view of a quotation record: identity,
// classification, route/cargo descriptors and workflow state. Financial
// figures live in the item collections and FinancialSnapshot, not here.
type Quotation struct {
	ID                  string
	QuotationNumber     string
	CustomerID          string
	Status              Status
	MarketType          string
	ComplexityScore     float64
	Origin              string
	Destination         string
	CargoDescription    string
	RequiresEngineering bool
	EngineeringStatus   EngineeringStatus
	EstimatedShipments  int
}

// SeedItem is a per-shipment slice of a quotation item carried on a
// proforma job order draft.
type SeedItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// PJOSeed is a proforma job order draft derived from a won quotation.
// One seed is created per estimated shipment.
type PJOSeed struct {
	QuotationID            string
	CustomerID             string
	ShipmentNumber         int
	MarketType             string
	ComplexityScore        float64
	CargoDescription       string
	POL                    string
	POD                    string
	RequiresEngineering    bool
	EngineeringStatus      EngineeringStatus
	RevenueItems           []SeedItem
	CostItems              []SeedItem
	RevenueAmount          float64
	CostAmount             float64
	PursuitCostPerShipment float64
}

// MapToPJOSeed projects a quotation into a job order seed. Every field
// carries over verbatim except origin and destination, which become POL
// and POD, and the engineering fields, which are always reset: a job
// order never re-runs engineering review, whatever the quotation went
// through. Item slices and amounts are filled in by SplitShipments.
func MapToPJOSeed(q Quotation) PJOSeed {
	return PJOSeed{
		QuotationID:         q.ID,
		CustomerID:          q.CustomerID,
		MarketType:          q.MarketType,
		ComplexityScore:     q.ComplexityScore,
		CargoDescription:    q.CargoDescription,
		POL:                 q.Origin,
		POD:                 q.Destination,
		RequiresEngineering: false,
		EngineeringStatus:   EngineeringNotRequired,
	}
}
