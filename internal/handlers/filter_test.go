package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VaultSyncBR/backup-console/internal/models"
)

func filterFixture() ([]models.Agendamento, []models.Cliente) {
	agendamentos := []models.Agendamento{
		{ClientID: "acme", ScheduleName: "backup diário", RcloneCommand: "rclone sync /srv remote:acme", CronExpression: "0 2 * * *"},
		{ClientID: "globex", ScheduleName: "backup semanal", RcloneCommand: "rclone copy /var remote:globex", CronExpression: "0 3 * * 0"},
		{ClientID: "acme", ScheduleName: "banco de dados", RcloneCommand: "rclone sync /pg remote:acme/pg", CronExpression: "30 1 * * *"},
	}
	clientes := []models.Cliente{
		{ClientID: "acme", NomeEmpresa: "Acme Corp"},
		{ClientID: "globex", NomeEmpresa: "Globex Ltda"},
	}
	return agendamentos, clientes
}

func TestFilterAgendamentosTermoVazioDevolveOriginal(t *testing.T) {
	agendamentos, clientes := filterFixture()

	assert.Equal(t, agendamentos, FilterAgendamentos(agendamentos, clientes, ""))
	assert.Equal(t, agendamentos, FilterAgendamentos(agendamentos, clientes, "   "))
}

func TestFilterAgendamentosPorCampos(t *testing.T) {
	agendamentos, clientes := filterFixture()

	porNome := FilterAgendamentos(agendamentos, clientes, "semanal")
	assert.Len(t, porNome, 1)
	assert.Equal(t, "globex", porNome[0].ClientID)

	porComando := FilterAgendamentos(agendamentos, clientes, "remote:acme")
	assert.Len(t, porComando, 2)

	porCron := FilterAgendamentos(agendamentos, clientes, "30 1")
	assert.Len(t, porCron, 1)
	assert.Equal(t, "banco de dados", porCron[0].ScheduleName)
}

func TestFilterAgendamentosPorNomeDoCliente(t *testing.T) {
	agendamentos, clientes := filterFixture()

	got := FilterAgendamentos(agendamentos, clientes, "Acme Corp")
	assert.Len(t, got, 2)
	for _, item := range got {
		assert.Equal(t, "acme", item.ClientID)
	}
}

func TestFilterAgendamentosCaseInsensitive(t *testing.T) {
	agendamentos, clientes := filterFixture()

	assert.Equal(t,
		FilterAgendamentos(agendamentos, clientes, "GLOBEX"),
		FilterAgendamentos(agendamentos, clientes, "globex"),
	)
}

func TestFilterAgendamentosIdempotente(t *testing.T) {
	agendamentos, clientes := filterFixture()

	once := FilterAgendamentos(agendamentos, clientes, "backup")
	twice := FilterAgendamentos(once, clientes, "backup")
	assert.Equal(t, once, twice)
}

func TestFilterAgendamentosSemResultado(t *testing.T) {
	agendamentos, clientes := filterFixture()

	got := FilterAgendamentos(agendamentos, clientes, "nao existe")
	assert.Empty(t, got)
}

func TestFilterPlaybookCommands(t *testing.T) {
	commands := []models.PlaybookCommand{
		{Titulo: "Reiniciar agente", Descricao: "restart do serviço", Comando: "systemctl restart backup-agent"},
		{Titulo: "Limpar cache", Descricao: "remove temporários", Comando: "rm -rf /tmp/backup-*"},
	}

	assert.Equal(t, commands, FilterPlaybookCommands(commands, ""))

	got := FilterPlaybookCommands(commands, "systemctl")
	assert.Len(t, got, 1)
	assert.Equal(t, "Reiniciar agente", got[0].Titulo)

	assert.Equal(t,
		FilterPlaybookCommands(commands, "cache"),
		FilterPlaybookCommands(FilterPlaybookCommands(commands, "cache"), "cache"),
	)
}
