package entity

// Manager representa un responsable de equipo. Los empleados lo referencian por ID.
type Manager struct {
	ID   int64
	Name string
}
