package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/correduria-api/internal/application/access"
	"github.com/jhoicas/correduria-api/internal/application/dto"
	"github.com/jhoicas/correduria-api/internal/domain"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
)

func newEmployeeFixture() (*EmployeeUseCase, *stubEmployees) {
	employees := &stubEmployees{byID: map[string]*entity.Employee{
		"e1": {
			ID:        "e1",
			Code:      "EMP-001",
			FirstName: "Laura",
			LastName:  "Mendoza",
			Email:     "laura@correduria.co",
			Phone:     "3001234567",
			Position:  "Gestora senior",
			Active:    true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}}
	return NewEmployeeUseCase(employees), employees
}

// ──────────────────────────────────────────────────────────────────────────────
// Gates por rol: escritura solo admin, lectura admin y gestor
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployeeList_GestorPuedeLeer(t *testing.T) {
	uc, _ := newEmployeeFixture()
	caller := access.Caller{UserID: "u1", Role: entity.RoleGestor}

	_, err := uc.List(context.Background(), caller, ListEmployeesQuery{}, dto.PageRequest{Page: 1, Limit: 20})

	assert.NoError(t, err)
}

func TestEmployeeList_AnalistaNoPuedeLeer(t *testing.T) {
	uc, _ := newEmployeeFixture()
	caller := access.Caller{UserID: "u1", Role: entity.RoleAnalistaSiniestros}

	_, err := uc.List(context.Background(), caller, ListEmployeesQuery{}, dto.PageRequest{Page: 1, Limit: 20})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEmployeeCreate_GestorProhibido(t *testing.T) {
	uc, _ := newEmployeeFixture()
	caller := access.Caller{UserID: "u1", Role: entity.RoleGestor}

	_, err := uc.Create(context.Background(), caller, dto.CreateEmployeeRequest{
		Code: "EMP-002", FirstName: "Pedro", LastName: "Rojas", Email: "pedro@correduria.co",
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: edición parcial
// ──────────────────────────────────────────────────────────────────────────────

// Un PATCH sin campos se rechaza como entrada inválida.
func TestEmployeeUpdate_SinCampos(t *testing.T) {
	uc, _ := newEmployeeFixture()
	admin := access.Caller{UserID: "u-admin", Role: entity.RoleAdmin}

	_, err := uc.Update(context.Background(), admin, "e1", dto.UpdateEmployeeRequest{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La edición de un campo no pisa los demás; repetirla es idempotente.
func TestEmployeeUpdate_ParcialEIdempotente(t *testing.T) {
	uc, employees := newEmployeeFixture()
	admin := access.Caller{UserID: "u-admin", Role: entity.RoleAdmin}

	newName := "Laura Sofía"
	in := dto.UpdateEmployeeRequest{FirstName: &newName}

	out, err := uc.Update(context.Background(), admin, "e1", in)
	require.NoError(t, err)
	assert.Equal(t, newName, out.FirstName)
	assert.Equal(t, "Mendoza", out.LastName)
	assert.Equal(t, "laura@correduria.co", out.Email)
	assert.Equal(t, "3001234567", out.Phone)
	assert.True(t, out.Active)

	again, err := uc.Update(context.Background(), admin, "e1", in)
	require.NoError(t, err)
	assert.Equal(t, out.FirstName, again.FirstName)
	assert.Equal(t, out.LastName, again.LastName)
	assert.Equal(t, out.Phone, again.Phone)

	stored := employees.byID["e1"]
	assert.Equal(t, newName, stored.FirstName)
	assert.Equal(t, "Gestora senior", stored.Position)
}

// phone: null limpia el teléfono sin tocar el resto.
func TestEmployeeUpdate_NullExplicitoLimpiaCampo(t *testing.T) {
	uc, employees := newEmployeeFixture()
	admin := access.Caller{UserID: "u-admin", Role: entity.RoleAdmin}

	in := dto.UpdateEmployeeRequest{Phone: dto.Optional[string]{Set: true, Null: true}}

	out, err := uc.Update(context.Background(), admin, "e1", in)
	require.NoError(t, err)
	assert.Empty(t, out.Phone)
	assert.Equal(t, "Laura", employees.byID["e1"].FirstName)
}
