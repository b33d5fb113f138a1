package entities

// Scope is the visibility predicate derived from a caller's role and identity.
//
// senior and coordinador see every activity. lider sees only its own. Unknown
// roles fail safe: they get the same restriction as lider, never full access.
type Scope struct {
	Unrestricted bool
	Lider        string
}

func ScopeFor(rol, usuario string) Scope {
	switch rol {
	case RoleSenior, RoleCoordinador:
		return Scope{Unrestricted: true}
	default:
		return Scope{Lider: usuario}
	}
}

// Allows reports whether the scope permits seeing the given activity.
func (s Scope) Allows(a Activity) bool {
	return s.Unrestricted || a.Lider == s.Lider
}
