package entities

// Roles conocidos. Cualquier otro valor se trata como lider (scoped).
const (
	RoleLider       = "lider"
	RoleSenior      = "senior"
	RoleCoordinador = "coordinador"
)

// User is an authenticated principal. After login only Usuario and Rol matter:
// visibility scoping depends on nothing else.
type User struct {
	Usuario      string `json:"usuario"`
	Nombre       string `json:"nombre"`
	PasswordHash string `json:"-"`
	Rol          string `json:"rol"`
}
