package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los handlers HTTP los mapean a códigos de estado; los mensajes se muestran
// tal cual al operador de la caja.
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrEmptyCart     = errors.New("el carrito está vacío")
	ErrOutOfStock    = errors.New("producto sin stock")
	ErrStockExceeded = errors.New("la cantidad supera el stock disponible")
	ErrMissingPhone  = errors.New("falta el número de teléfono del cliente")
	ErrCheckoutBusy  = errors.New("hay una venta en proceso")
)
