package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/correduria-api/internal/application/access"
	"github.com/jhoicas/correduria-api/internal/application/dto"
	"github.com/jhoicas/correduria-api/internal/domain"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
)

// ListUsersQuery filtros del listado de usuarios.
type ListUsersQuery struct {
	Role   string
	Status string
	Search string
}

// UserUseCase administración de cuentas de usuario (solo admin).
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// List lista cuentas de usuario.
func (uc *UserUseCase) List(ctx context.Context, caller access.Caller, q ListUsersQuery, page dto.PageRequest) (*dto.UserListResponse, error) {
	if caller.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	f := repository.UserFilter{Role: entity.Role(q.Role), Status: q.Status, Search: q.Search}
	total, err := uc.users.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	rows, err := uc.users.List(ctx, f, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(rows))
	for _, u := range rows {
		out = append(out, ToUserResponse(u))
	}
	return &dto.UserListResponse{Users: out, Pagination: dto.NewPagination(total, page)}, nil
}

// Get obtiene una cuenta de usuario.
func (uc *UserUseCase) Get(ctx context.Context, caller access.Caller, id string) (*dto.UserResponse, error) {
	if caller.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	u, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToUserResponse(u)
	return &resp, nil
}

// Update edición parcial de cuenta. El último admin no puede degradarse ni
// suspenderse a sí mismo vía esta ruta.
func (uc *UserUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if caller.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if !in.HasChanges() {
		return nil, domain.NewValidationError("_", "al menos un campo debe estar presente")
	}
	u, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if caller.UserID == id {
		if in.Role != nil && entity.Role(*in.Role) != entity.RoleAdmin {
			return nil, domain.NewValidationError("role", "un admin no puede degradar su propia cuenta")
		}
		if in.Status != nil && *in.Status != entity.UserStatusActive {
			return nil, domain.NewValidationError("status", "un admin no puede desactivar su propia cuenta")
		}
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Role != nil {
		u.Role = entity.Role(*in.Role)
	}
	if in.Status != nil {
		u.Status = *in.Status
	}
	u.UpdatedAt = time.Now()
	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}
	resp := ToUserResponse(u)
	return &resp, nil
}

// Delete elimina una cuenta (solo admin, nunca la propia).
func (uc *UserUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	if caller.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if caller.UserID == id {
		return domain.NewValidationError("id", "un admin no puede eliminar su propia cuenta")
	}
	u, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	return uc.users.Delete(ctx, id)
}

// ToUserResponse mapea la entidad a su DTO sin exponer el hash de contraseña.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        string(u.Role),
		AffiliateID: u.AffiliateID,
		Status:      u.Status,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
