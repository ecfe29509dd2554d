package entity

// PagePermission indica si un rol tiene acceso a una página del SPA
// (inventory, suppliers, transactions, reports...). El middleware RequirePage
// consulta estas filas después de validar el JWT.
type PagePermission struct {
	Role    string
	Page    string
	Allowed bool
}
