package servidor

// ===============================
// Servidor Status
// ===============================

type Status int

const (
	StatusDesconhecido Status = 0
	StatusOnline       Status = 1
	StatusOffline      Status = 2
	StatusErro         Status = 3
)

func IsValid(s int) bool {
	switch Status(s) {
	case StatusDesconhecido, StatusOnline, StatusOffline, StatusErro:
		return true
	}
	return false
}

func Label(s int) string {
	switch Status(s) {
	case StatusOnline:
		return "Online"
	case StatusOffline:
		return "Offline"
	case StatusErro:
		return "Erro"
	default:
		return "Desconhecido"
	}
}
