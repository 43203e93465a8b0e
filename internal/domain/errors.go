package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrValidation             = errors.New("entrada inválida")
	ErrInvalidTransactionType = errors.New("tipo de transacción desconocido")
	ErrReferential            = errors.New("producto o ubicación no existe")
	ErrDuplicate              = errors.New("recurso duplicado")
)
