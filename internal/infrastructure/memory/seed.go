package memory

import "github.com/jhoicas/Employees-api/internal/domain/entity"

// Datos de demostración; coinciden con la migración de seed de Postgres.
var (
	seedManagers = []entity.Manager{
		{ID: 1, Name: "Gandalf"},
		{ID: 2, Name: "Saruman"},
	}
	seedEmployees = []struct {
		ID        int64
		Name      string
		Role      string
		ManagerID int64
	}{
		{1, "Frodo Baggins", "ring bearer", 1},
		{2, "Bilbo Baggins", "burglar", 1},
		{3, "Samwise Gamgee", "gardener", 1},
		{4, "Grima Wormtongue", "advisor", 2},
	}
)

// NewSeededStore construye un store con los datos de demostración.
func NewSeededStore() *Store {
	s := NewStore()
	for _, m := range seedManagers {
		s.PutManager(m)
	}
	for _, e := range seedEmployees {
		managerID := e.ManagerID
		// el seed es consistente: PutEmployee no puede fallar
		_ = s.PutEmployee(entity.Employee{ID: e.ID, Name: e.Name, Role: e.Role, ManagerID: &managerID})
	}
	return s
}
