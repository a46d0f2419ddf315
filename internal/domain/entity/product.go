package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario de la tienda.
// El barcode es la clave de búsqueda de cara al exterior (escáner o entrada
// manual); el modelo no garantiza unicidad, los lookups toman la primera
// coincidencia. CompanyID puede quedar colgando si el proveedor se borra:
// las rutas de lectura lo muestran como "desconocido", nunca fallan.
type Product struct {
	ID           string          `json:"id" bson:"id"` // libre, típicamente derivado de un timestamp o uuid
	Barcode      string          `json:"barcode" bson:"barcode"`
	Name         string          `json:"name" bson:"name"`
	CompanyID    string          `json:"companyId" bson:"companyId"`
	CostPrice    decimal.Decimal `json:"costPrice" bson:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice" bson:"sellingPrice"`
	Stock        int             `json:"stock" bson:"stock"`
	Description  string          `json:"description,omitempty" bson:"description,omitempty"`
	Unit         string          `json:"unit,omitempty" bson:"unit,omitempty"`
	Category     string          `json:"category,omitempty" bson:"category,omitempty"`
}
