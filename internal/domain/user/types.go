package user

// Role is the account tier ("tipo"). Approval of an owner request promotes a user to RoleAdmin.
type Role string

const (
	RoleComum     Role = "comum"
	RoleAssociado Role = "associado"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleComum, RoleAssociado, RoleAdmin:
		return true
	default:
		return false
	}
}

// Display is the human-readable label shown in API payloads and the back-office.
func (r Role) Display() string {
	switch r {
	case RoleComum:
		return "Comum"
	case RoleAssociado:
		return "Associado"
	case RoleAdmin:
		return "Administrador"
	default:
		return string(r)
	}
}

// SelfAssignable reports whether a user may pick this tier at registration.
func (r Role) SelfAssignable() bool {
	return r == RoleComum || r == RoleAssociado
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func AllRoles() []Role {
	return []Role{RoleComum, RoleAssociado, RoleAdmin}
}
