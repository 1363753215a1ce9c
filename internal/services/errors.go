package services

import "errors"

var (
	// ErrCustomerUnresolvable means no identity link exists and the request
	// carried too little data to auto-provision one.
	ErrCustomerUnresolvable = errors.New("no se pudo resolver el cliente")

	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrProductUnavailable = errors.New("producto no disponible")
)
