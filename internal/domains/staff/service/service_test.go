package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-storefront/internal/domains/staff/model"
	"bookstore-storefront/internal/domains/staff/repository"
	"bookstore-storefront/pkg/apiclient/apitest"
)

func setup(t *testing.T) (*apitest.Server, ServiceInterface) {
	t.Helper()
	srv := apitest.NewServer(t)
	return srv, NewStaffService(repository.NewAPIRepository(srv.Client()))
}

func boolPtr(v bool) *bool { return &v }

func TestStaffService_ListDefaultsToStaffRoles(t *testing.T) {
	srv, svc := setup(t)
	srv.OK(http.MethodGet, "/admin/users", model.StaffPage{Page: 1, Size: 20})

	page, err := svc.List(context.Background(), model.ListStaffRequest{Search: "  lan ", Size: 1000})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)

	calls := srv.Calls(http.MethodGet, "/admin/users")
	require.Len(t, calls, 1)
	assert.Equal(t, "limit=20&page=1&roles=admin%2Cwarehouse%2Ccskh&search=lan", calls[0].RawQuery)
}

func TestStaffService_ListWithFilters(t *testing.T) {
	srv, svc := setup(t)
	srv.OK(http.MethodGet, "/admin/users", model.StaffPage{
		Items: []model.Staff{{ID: uuid.New(), Email: "kho@bookstore.vn", Role: model.RoleWarehouse, IsActive: true}},
		Page:  2,
		Size:  10,
		Total: 11,
	})

	page, err := svc.List(context.Background(), model.ListStaffRequest{Role: "Warehouse", IsActive: boolPtr(true), Page: 2, Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].Role.IsStaff())

	calls := srv.Calls(http.MethodGet, "/admin/users")
	require.Len(t, calls, 1)
	assert.Equal(t, "is_active=true&limit=10&page=2&role=warehouse", calls[0].RawQuery)

	_, err = svc.List(context.Background(), model.ListStaffRequest{Role: model.RoleUser})
	assert.Error(t, err, "customers are not staff")
	assert.Len(t, srv.Calls(http.MethodGet, "/admin/users"), 1)
}

func TestStaffService_UpdateRole(t *testing.T) {
	srv, svc := setup(t)
	actor, target := uuid.New(), uuid.New()
	path := "/admin/users/" + target.String() + "/role"
	srv.OK(http.MethodPut, path, nil)

	err := svc.UpdateRole(context.Background(), actor, actor, model.UpdateRoleRequest{Role: model.RoleUser})
	assert.ErrorIs(t, err, model.ErrSelfUpdate)

	err = svc.UpdateRole(context.Background(), actor, target, model.UpdateRoleRequest{Role: "root"})
	assert.Error(t, err)
	assert.Empty(t, srv.Calls(http.MethodPut, path))

	require.NoError(t, svc.UpdateRole(context.Background(), actor, target, model.UpdateRoleRequest{Role: model.RoleCSKH}))
	calls := srv.Calls(http.MethodPut, path)
	require.Len(t, calls, 1)
	var sent map[string]string
	require.NoError(t, calls[0].Decode(&sent))
	assert.Equal(t, "cskh", sent["role"])
}

func TestStaffService_UpdateStatus(t *testing.T) {
	srv, svc := setup(t)
	actor, target, missing := uuid.New(), uuid.New(), uuid.New()
	path := "/admin/users/" + target.String() + "/status"
	srv.OK(http.MethodPut, path, nil)
	srv.Fail(http.MethodPut, "/admin/users/"+missing.String()+"/status", http.StatusNotFound, "User not found")

	err := svc.UpdateStatus(context.Background(), actor, target, model.UpdateStatusRequest{})
	assert.Error(t, err, "isActive is required")

	err = svc.UpdateStatus(context.Background(), actor, actor, model.UpdateStatusRequest{IsActive: boolPtr(false)})
	assert.ErrorIs(t, err, model.ErrSelfUpdate)

	require.NoError(t, svc.UpdateStatus(context.Background(), actor, target, model.UpdateStatusRequest{IsActive: boolPtr(false)}))
	calls := srv.Calls(http.MethodPut, path)
	require.Len(t, calls, 1)
	var sent map[string]bool
	require.NoError(t, calls[0].Decode(&sent))
	active, ok := sent["is_active"]
	require.True(t, ok)
	assert.False(t, active)

	err = svc.UpdateStatus(context.Background(), actor, missing, model.UpdateStatusRequest{IsActive: boolPtr(true)})
	assert.ErrorIs(t, err, model.ErrNotFound)
}
