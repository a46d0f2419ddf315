package state

import "github.com/tu-usuario/supermercado-pro/internal/domain/entity"

// Patch describe un merge superficial sobre el documento: cada campo no-nil
// reemplaza la colección (o los settings) completa. Las operaciones de
// dominio construyen un Patch con las colecciones que recalcularon y el
// resto queda intacto.
//
// El usuario de sesión no es parcheable a propósito: se maneja solo vía
// Store.SetCurrentUser y nunca forma parte del documento publicado.
type Patch struct {
	Users     *[]entity.User
	Companies *[]entity.Company
	Products  *[]entity.Product
	Sales     *[]entity.Sale
	Orders    *[]entity.Order
	Settings  *entity.GlobalSettings
}

func (p Patch) apply(d *entity.Document) {
	if p.Users != nil {
		d.Users = *p.Users
	}
	if p.Companies != nil {
		d.Companies = *p.Companies
	}
	if p.Products != nil {
		d.Products = *p.Products
	}
	if p.Sales != nil {
		d.Sales = *p.Sales
	}
	if p.Orders != nil {
		d.Orders = *p.Orders
	}
	if p.Settings != nil {
		d.Settings = *p.Settings
	}
}
