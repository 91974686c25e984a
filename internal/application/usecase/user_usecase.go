// internal/application/usecase/user_usecase.go
package usecase

import (
	"context"
	"log"
	"strings"

	common "flyadmin/internal/domain/common"
	userdom "flyadmin/internal/domain/user"
)

type UserUsecase struct {
	userRepo userdom.Repository
}

func NewUserUsecase(userRepo userdom.Repository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

func (u *UserUsecase) Watch(ctx context.Context) (*common.Subscription[[]userdom.User], error) {
	return u.userRepo.Watch(ctx)
}

func (u *UserUsecase) WatchLegacy(ctx context.Context) (*common.Subscription[[]userdom.User], error) {
	return u.userRepo.WatchLegacy(ctx)
}

func (u *UserUsecase) GetByID(ctx context.Context, id string) (userdom.User, error) {
	return u.userRepo.GetByID(ctx, strings.TrimSpace(id))
}

func (u *UserUsecase) SearchByEmail(ctx context.Context, prefix string) ([]userdom.User, error) {
	return u.userRepo.SearchByEmail(ctx, prefix)
}

func (u *UserUsecase) ListByRole(ctx context.Context, role string) ([]userdom.User, error) {
	parsed, err := userdom.ParseRole(role)
	if err != nil {
		return nil, err
	}
	return u.userRepo.ListByRole(ctx, parsed)
}

// SetRole patches the role field only. An operator cannot demote
// themselves; losing the last admin locks everyone out.
func (u *UserUsecase) SetRole(ctx context.Context, id, role string) error {
	id = strings.TrimSpace(id)
	parsed, err := userdom.ParseRole(role)
	if err != nil {
		return err
	}
	if parsed != userdom.RoleAdmin && id == UIDFromContext(ctx) {
		return userdom.ErrSelfDemotion
	}
	if err := u.userRepo.UpdateRole(ctx, id, parsed); err != nil {
		return err
	}
	log.Printf("[user] id=%s role=%s by=%s", id, parsed, UIDFromContext(ctx))
	return nil
}

func (u *UserUsecase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == UIDFromContext(ctx) {
		return userdom.ErrSelfDeletion
	}
	return u.userRepo.Delete(ctx, id)
}
