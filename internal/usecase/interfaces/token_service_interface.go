package interfaces

import "seguimiento_actividades/internal/domain/entities"

// Claims is the verified identity extracted from a bearer credential.
type Claims struct {
	Usuario string
	Nombre  string
	Rol     string
}

// ITokenService abstracts credential issuance and verification (JWT in the
// default implementation). The core trusts its output as-is.
type ITokenService interface {
	Issue(user entities.User) (string, error)
	Verify(token string) (Claims, error)
}
