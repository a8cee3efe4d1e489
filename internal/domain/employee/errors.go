package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCedulaExists     = errors.New("cedula already registered")
	ErrInvalidCedula    = errors.New("cedula must be 6-12 digits")
	ErrEmployeeInactive = errors.New("employee is inactive")
	ErrAlreadyActive    = errors.New("employee is already active")
	ErrAlreadyInactive  = errors.New("employee is already inactive")
)
