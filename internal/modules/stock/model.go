package stock

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Commodity identifies a rationed commodity tracked by the system.
type Commodity string

const (
	CommodityRice  Commodity = "rice"
	CommodityWheat Commodity = "wheat"
)

// Commodities lists every commodity in a fixed order.
var Commodities = []Commodity{CommodityRice, CommodityWheat}

// Display returns the human-readable commodity label.
func (c Commodity) Display() string {
	if c == "" {
		return "Unknown"
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// PoolID identifies a location holding commodity stock.
type PoolID string

const (
	PoolWarehouse PoolID = "warehouse"
	PoolShop      PoolID = "shop"
)

// Unit is the measurement unit of a commodity quantity.
type Unit string

const UnitKilogram Unit = "kg"

// Quantity is a typed commodity amount. Quantities are carried as numbers
// end to end; the display string ("30kg") is derived, never parsed back.
type Quantity struct {
	Amount float64 `json:"amount"`
	Unit   Unit    `json:"unit"`
}

// Kg builds a kilogram quantity.
func Kg(amount float64) Quantity {
	return Quantity{Amount: amount, Unit: UnitKilogram}
}

func (q Quantity) String() string {
	return strconv.FormatFloat(q.Amount, 'f', -1, 64) + string(q.Unit)
}

// ParseAmount converts raw numeric input to a kg magnitude. Invalid or
// non-numeric input coerces to 0, matching the dashboard's form handling.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// WarehouseStock is one commodity row of the warehouse_stock collection.
type WarehouseStock struct {
	ID            uuid.UUID `json:"id"`
	CommodityType Commodity `json:"commodity_type"`
	TotalQuantity Quantity  `json:"total_quantity_kg"`
}

// Shop is the ration shop record with its current stock levels.
type Shop struct {
	ID           uuid.UUID `json:"id"`
	CurrentRice  Quantity  `json:"current_stock_rice"`
	CurrentWheat Quantity  `json:"current_stock_wheat"`
	CreatedAt    time.Time `json:"created_at"`
}

// Counts summarizes registered facilities for the admin overview.
type Counts struct {
	Warehouses int `json:"warehouses"`
	Shops      int `json:"shops"`
}
