package repository

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/staff/model"
	"bookstore-storefront/pkg/apiclient"
)

type Repository interface {
	List(ctx context.Context, req model.ListStaffRequest) (*model.StaffPage, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role model.Role) error
	UpdateStatus(ctx context.Context, id uuid.UUID, active bool) error
}

type apiRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) Repository {
	return &apiRepository{client: client}
}

// List gọi GET /admin/users; không lọc role thì chỉ lấy các role nhân viên
func (r *apiRepository) List(ctx context.Context, req model.ListStaffRequest) (*model.StaffPage, error) {
	query := url.Values{}
	if req.Role != "" {
		query.Set("role", string(req.Role))
	} else {
		roles := make([]string, 0, len(model.StaffRoles))
		for _, role := range model.StaffRoles {
			roles = append(roles, string(role))
		}
		query.Set("roles", strings.Join(roles, ","))
	}
	if req.IsActive != nil {
		query.Set("is_active", strconv.FormatBool(*req.IsActive))
	}
	if req.Search != "" {
		query.Set("search", req.Search)
	}
	query.Set("page", strconv.Itoa(req.Page))
	query.Set("limit", strconv.Itoa(req.Size))

	var out model.StaffPage
	if err := r.client.Get(ctx, "/admin/users", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *apiRepository) UpdateRole(ctx context.Context, id uuid.UUID, role model.Role) error {
	body := map[string]string{"role": string(role)}
	return r.client.Put(ctx, "/admin/users/"+id.String()+"/role", body, nil)
}

func (r *apiRepository) UpdateStatus(ctx context.Context, id uuid.UUID, active bool) error {
	body := map[string]bool{"is_active": active}
	return r.client.Put(ctx, "/admin/users/"+id.String()+"/status", body, nil)
}
