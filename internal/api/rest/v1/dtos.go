package v1

import (
	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/domain/audit"
	"github.com/wisskirchenj/account-reactive/internal/domain/payroll"
	"github.com/wisskirchenj/account-reactive/internal/pkg/validators"
)

// SignupRequest is the body of POST /api/auth/signup
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Lastname string `json:"lastname" validate:"required"`
	Email    string `json:"email" validate:"corporate_email"`
	Password string `json:"password" validate:"required"`
}

var signupMessages = map[string]string{
	"name.required":         "Name must not be empty!",
	"lastname.required":     "Lastname must not be empty!",
	"email.corporate_email": payroll.MsgInvalidEmployee,
	"password.required":     "Password must not be empty!",
}

// Validate returns the violations of the request, empty if there are none
func (r *SignupRequest) Validate() ([]string, error) {
	return validators.Messages(r, signupMessages)
}

// ToSignup converts the request into its domain command
func (r *SignupRequest) ToSignup() *accounts.Signup {
	return &accounts.Signup{
		Name:     r.Name,
		Lastname: r.Lastname,
		Email:    r.Email,
		Password: r.Password,
	}
}

// ChangePasswordRequest is the body of POST /api/auth/changepass
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// SalaryRecordRequest is one salary of an accountant upload
type SalaryRecordRequest struct {
	Employee string `json:"employee"`
	Period   string `json:"period"`
	Salary   int64  `json:"salary"`
}

// ToSalaryRecord converts the request into its domain record. Validation
// happens on the record so that uploads can report it per index.
func (r *SalaryRecordRequest) ToSalaryRecord() *payroll.SalaryRecord {
	return &payroll.SalaryRecord{
		Employee: r.Employee,
		Period:   r.Period,
		Salary:   r.Salary,
	}
}

// RoleChangeRequest is the body of PUT /api/admin/user/role
type RoleChangeRequest struct {
	User      string `json:"user" validate:"corporate_email"`
	Role      string `json:"role" validate:"required"`
	Operation string `json:"operation" validate:"role_operation"`
}

var roleChangeMessages = map[string]string{
	"user.corporate_email":     payroll.MsgInvalidEmployee,
	"role.required":            "Role must not be empty!",
	"operation.role_operation": "operation needs 'grant' or 'remove'",
}

// Validate returns the violations of the request, empty if there are none
func (r *RoleChangeRequest) Validate() ([]string, error) {
	return validators.Messages(r, roleChangeMessages)
}

// AccessChangeRequest is the body of PUT /api/admin/user/access
type AccessChangeRequest struct {
	User      string `json:"user" validate:"corporate_email"`
	Operation string `json:"operation" validate:"access_operation"`
}

var accessChangeMessages = map[string]string{
	"user.corporate_email":       payroll.MsgInvalidEmployee,
	"operation.access_operation": "operation must be 'lock' or 'unlock'",
}

// Validate returns the violations of the request, empty if there are none
func (r *AccessChangeRequest) Validate() ([]string, error) {
	return validators.Messages(r, accessChangeMessages)
}

// LoginResponse presents a login with its roles
type LoginResponse struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Lastname string   `json:"lastname"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

func newLoginResponse(login *accounts.Login) LoginResponse {
	roles := login.Roles
	if roles == nil {
		roles = []string{}
	}
	return LoginResponse{
		ID:       login.ID,
		Name:     login.Name,
		Lastname: login.Lastname,
		Email:    login.Email,
		Roles:    roles,
	}
}

// PasswordChangedResponse confirms a password change
type PasswordChangedResponse struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

// StatusResponse carries a plain status message
type StatusResponse struct {
	Status string `json:"status"`
}

// UserDeletedResponse confirms the removal of a user
type UserDeletedResponse struct {
	User   string `json:"user"`
	Status string `json:"status"`
}

// PayslipResponse is one month of an employee's payroll
type PayslipResponse struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Period   string `json:"period"`
	Salary   string `json:"salary"`
}

// SecurityEventResponse is one entry of the audit log
type SecurityEventResponse struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Action  string `json:"action"`
	Subject string `json:"subject"`
	Object  string `json:"object"`
	Path    string `json:"path"`
}

func newSecurityEventResponse(event *audit.SecurityEvent) SecurityEventResponse {
	return SecurityEventResponse{
		ID:      event.ID,
		Date:    event.Date.Format(audit.DateLayout),
		Action:  event.Action,
		Subject: event.Subject,
		Object:  event.Object,
		Path:    event.Path,
	}
}
