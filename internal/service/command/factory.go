package command

import (
	"github.com/Jayani-123/tasbot/internal/core"
)

func NewCommands(
	cfg core.ProviderConfig,
	provider ModelSwitcher,
	sessions SessionResetter,
) []core.Command {
	cmds := []core.Command{
		NewResetCommand(sessions),
		NewModelCommand(cfg, provider),
	}
	return append(cmds, NewHelpCommand(cmds))
}
