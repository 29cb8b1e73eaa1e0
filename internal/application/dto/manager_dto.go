package dto

import "github.com/jhoicas/Employees-api/pkg/hal"

// RelManager y RelManagers relaciones de enlaces de managers.
const (
	RelManager  = "manager"
	RelManagers = "managers"
)

// ManagerResource salida HAL de un manager.
type ManagerResource struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Links hal.Links `json:"_links"`
}

// ManagerCollection colección HAL de managers.
type ManagerCollection = hal.Collection[ManagerResource]

// RootResource punto de entrada de la API con enlaces a las colecciones.
type RootResource struct {
	Links hal.Links `json:"_links"`
}
