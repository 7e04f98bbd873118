package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

var (
	ErrSelfUpdate = errors.New("you cannot change your own role or status")
	ErrNotFound   = errors.New("staff member not found")
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Role string

const (
	RoleUser      Role = "user"      // khách hàng
	RoleAdmin     Role = "admin"     // toàn quyền
	RoleWarehouse Role = "warehouse" // quản lý kho
	RoleCSKH      Role = "cskh"      // chăm sóc khách hàng
)

// StaffRoles are the back-office roles listed by default
var StaffRoles = []Role{RoleAdmin, RoleWarehouse, RoleCSKH}

func (r Role) IsStaff() bool {
	for _, s := range StaffRoles {
		if r == s {
			return true
		}
	}
	return false
}

// Staff is a back-office account as returned by GET /admin/users
type Staff struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	Phone       string     `json:"phone,omitempty"`
	Role        Role       `json:"role"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// StaffPage is one page of the staff list
type StaffPage struct {
	Items []Staff `json:"items"`
	Page  int     `json:"page"`
	Size  int     `json:"size"`
	Total int     `json:"total"`
}

// ListStaffRequest - GET /admin/staff?role&isActive&search&page&size
type ListStaffRequest struct {
	Role     Role   `form:"role"`
	IsActive *bool  `form:"isActive"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	Size     int    `form:"size"`
}

func (r ListStaffRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role, validation.When(r.Role != "",
			validation.In(RoleAdmin, RoleWarehouse, RoleCSKH).Error("role must be a staff role"),
		)),
		validation.Field(&r.Search, validation.Length(0, 100)),
	)
}

// SetDefaults clamps paging
func (r *ListStaffRequest) SetDefaults() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Size < 1 || r.Size > MaxPageSize {
		r.Size = DefaultPageSize
	}
}

// UpdateRoleRequest - PUT /admin/staff/:id/role
type UpdateRoleRequest struct {
	Role Role `json:"role"`
}

func (r UpdateRoleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role,
			validation.Required,
			validation.In(RoleUser, RoleAdmin, RoleWarehouse, RoleCSKH),
		),
	)
}

// UpdateStatusRequest - PUT /admin/staff/:id/status
type UpdateStatusRequest struct {
	IsActive *bool `json:"isActive"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IsActive, validation.NotNil),
	)
}
