package response

import "seguimiento_actividades/internal/usecase"

type LoginResponse struct {
	Token   string `json:"token"`
	Usuario string `json:"usuario"`
	Nombre  string `json:"nombre"`
	Rol     string `json:"rol"`
}

func FromLoginResult(res usecase.LoginResult) LoginResponse {
	return LoginResponse{
		Token:   res.Token,
		Usuario: res.User.Usuario,
		Nombre:  res.User.Nombre,
		Rol:     res.User.Rol,
	}
}
