package entity

// Document es el payload compartido completo: todo lo que se publica al
// almacén remoto y todo lo que llega de vuelta en cada emisión. El usuario
// autenticado NO forma parte de este tipo a propósito: la lista de campos
// locales a la sesión vive en AppState y el sistema de tipos garantiza que
// ningún publish pueda filtrarla.
type Document struct {
	Users     []User         `json:"users" bson:"users"`
	Companies []Company      `json:"companies" bson:"companies"`
	Products  []Product      `json:"products" bson:"products"`
	Sales     []Sale         `json:"sales" bson:"sales"`
	Orders    []Order        `json:"orders" bson:"orders"`
	Settings  GlobalSettings `json:"settings" bson:"settings"`
}

// AppState es el snapshot local: el documento compartido más los campos
// locales a la sesión. CurrentUser nunca se publica y las fusiones remotas
// nunca lo tocan.
type AppState struct {
	Document
	CurrentUser *User
}

// Clone devuelve una copia profunda del documento. Los slices anidados
// (permisos de usuario, líneas de pedido) tampoco se comparten.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := Document{Settings: d.Settings}

	c.Users = make([]User, len(d.Users))
	for i := range d.Users {
		c.Users[i] = *d.Users[i].Clone()
	}
	c.Companies = append([]Company(nil), d.Companies...)
	c.Products = append([]Product(nil), d.Products...)
	c.Sales = append([]Sale(nil), d.Sales...)
	c.Orders = make([]Order, len(d.Orders))
	for i := range d.Orders {
		c.Orders[i] = *d.Orders[i].Clone()
	}
	return &c
}

// FindUserByID busca un usuario por id. Devuelve nil si no existe.
func (d *Document) FindUserByID(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// FindCompanyByID busca un proveedor por id. Devuelve nil si no existe
// (las referencias colgando son legales, el llamador decide el placeholder).
func (d *Document) FindCompanyByID(id string) *Company {
	for i := range d.Companies {
		if d.Companies[i].ID == id {
			return &d.Companies[i]
		}
	}
	return nil
}

// FindProductByBarcode busca un producto por barcode; primera coincidencia gana.
func (d *Document) FindProductByBarcode(barcode string) *Product {
	for i := range d.Products {
		if d.Products[i].Barcode == barcode {
			return &d.Products[i]
		}
	}
	return nil
}

// FindProductByID busca un producto por id. Devuelve nil si no existe.
func (d *Document) FindProductByID(id string) *Product {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}
	return nil
}

// FindOrderByID busca un pedido por id. Devuelve nil si no existe.
func (d *Document) FindOrderByID(id string) *Order {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return &d.Orders[i]
		}
	}
	return nil
}
