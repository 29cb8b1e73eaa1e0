package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Employees-api/internal/domain"
	"github.com/jhoicas/Employees-api/internal/domain/entity"
	"github.com/jhoicas/Employees-api/internal/infrastructure/memory"
)

func ptr(v int64) *int64 { return &v }

func TestSeededStore_FindAllOrdenadoPorID(t *testing.T) {
	s := memory.NewSeededStore()

	list, err := s.Employees().FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 4)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
	assert.Equal(t, "Frodo Baggins", list[0].Name)

	managers, err := s.Managers().FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, managers, 2)
}

func TestEmployeeRepo_FindByID(t *testing.T) {
	s := memory.NewSeededStore()

	e, err := s.Employees().FindByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "Samwise Gamgee", e.Name)
	require.NotNil(t, e.ManagerID)
	assert.Equal(t, int64(1), *e.ManagerID)

	missing, err := s.Employees().FindByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEmployeeRepo_FindByIDDevuelveCopia(t *testing.T) {
	s := memory.NewSeededStore()

	e, err := s.Employees().FindByID(context.Background(), 1)
	require.NoError(t, err)
	*e.ManagerID = 2
	e.Name = "otro"

	again, err := s.Employees().FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Frodo Baggins", again.Name)
	assert.Equal(t, int64(1), *again.ManagerID)
}

func TestEmployeeRepo_FindByManagerID(t *testing.T) {
	s := memory.NewSeededStore()

	gandalf, err := s.Employees().FindByManagerID(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, gandalf, 3)
	for _, e := range gandalf {
		assert.Equal(t, int64(1), *e.ManagerID)
	}

	none, err := s.Employees().FindByManagerID(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_PutEmployeeManagerInexistente(t *testing.T) {
	s := memory.NewStore()

	err := s.PutEmployee(entity.Employee{ID: 1, Name: "Frodo", Role: "ring bearer", ManagerID: ptr(5)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, s.PutEmployee(entity.Employee{ID: 2, Name: "Tom Bombadil", Role: "wanderer"}))
}

func TestStore_AccesoConcurrente(t *testing.T) {
	s := memory.NewSeededStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			_ = s.PutEmployee(entity.Employee{ID: 100 + id, Name: "extra", Role: "extra", ManagerID: ptr(2)})
		}(int64(i))
		go func() {
			defer wg.Done()
			_, _ = s.Employees().FindAll(ctx)
		}()
	}
	wg.Wait()

	list, err := s.Employees().FindByManagerID(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, list, 21)
	assert.NoError(t, s.Ping(ctx))
}
