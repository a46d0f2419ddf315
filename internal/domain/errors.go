package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrCompanyMissing = errors.New("pedido sin proveedor seleccionado")
	ErrEmptyItems     = errors.New("pedido sin líneas")

	// ErrDebtConfirmationRequired: el proveedor arrastra saldo impago y la
	// operación exige confirmación explícita antes de continuar. No se
	// muta nada hasta recibirla.
	ErrDebtConfirmationRequired = errors.New("proveedor con saldo impago: se requiere confirmación")
)
