// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// Role identifies a tenant user's function within a school. The
// backend issues roles in upper case; the console treats them as
// opaque beyond routing and display.
type Role string

const (
	// RoleAdmin is a school administrator.
	RoleAdmin Role = "ADMIN"
	// RoleTeacher is a teaching staff member.
	RoleTeacher Role = "TEACHER"
	// RoleParent is a student guardian.
	RoleParent Role = "PARENT"
	// RoleSecurity is a gate security guard.
	RoleSecurity Role = "SECURITY"
	// RoleStudent exists for future student-facing access.
	RoleStudent Role = "STUDENT"
)

// UserStatus is the lifecycle state of a tenant user account.
type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserInactive  UserStatus = "INACTIVE"
	UserPending   UserStatus = "PENDING"
	UserSuspended UserStatus = "SUSPENDED"
)

// User is the tenant API's user record, as returned by /users and
// embedded in the login response.
type User struct {
	ID         int        `json:"id"`
	Email      string     `json:"email"`
	Username   string     `json:"username,omitempty"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	FullName   string     `json:"full_name"`
	Phone      string     `json:"phone,omitempty"`
	Role       Role       `json:"role"`
	Status     UserStatus `json:"status"`
	EmployeeID string     `json:"employee_id,omitempty"`
	Department string     `json:"department,omitempty"`
	HireDate   string     `json:"hire_date,omitempty"`
	IsActive   bool       `json:"is_active"`
	IsVerified bool       `json:"is_verified"`
	CreatedAt  string     `json:"created_at"`
}

// UserCreate is the request body for POST /users.
type UserCreate struct {
	Email      string `json:"email"`
	Username   string `json:"username,omitempty"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone,omitempty"`
	Role       Role   `json:"role"`
	EmployeeID string `json:"employee_id,omitempty"`
	Department string `json:"department,omitempty"`
	HireDate   string `json:"hire_date,omitempty"`
	Password   string `json:"password"`
}

// UserUpdate is the request body for PUT /users/{id}. Nil fields are
// omitted so the backend applies a partial update.
type UserUpdate struct {
	Email      *string     `json:"email,omitempty"`
	Username   *string     `json:"username,omitempty"`
	FirstName  *string     `json:"first_name,omitempty"`
	LastName   *string     `json:"last_name,omitempty"`
	Phone      *string     `json:"phone,omitempty"`
	Role       *Role       `json:"role,omitempty"`
	EmployeeID *string     `json:"employee_id,omitempty"`
	Department *string     `json:"department,omitempty"`
	IsActive   *bool       `json:"is_active,omitempty"`
	Status     *UserStatus `json:"status,omitempty"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by POST /auth/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        User   `json:"user"`
}

// PasswordChange is the body for POST /auth/change-password.
type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
