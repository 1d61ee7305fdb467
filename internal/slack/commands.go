package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdSchedule CommandType = "schedule"
	CmdStop     CommandType = "stop"
	CmdStatus   CommandType = "status"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "schedule", "set":
		cmd.Type = CmdSchedule
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "stop", "cancel":
		cmd.Type = CmdStop
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "status", "show":
		cmd.Type = CmdStatus
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Schedule:*
• ` + "`/dailypost schedule dua #channel 2:30 pm`" + ` - Post a random dua every day at the given UTC time
• ` + "`/dailypost schedule hadith #channel 14:30 arabic`" + ` - Post a random hadith daily, in Arabic when possible

Accepted time formats: ` + "`2:04 pm`, `2:04pm`, `2 pm`, `2pm`, `14:04`" + ` (all UTC).

*Control:*
• ` + "`/dailypost stop dua`" + ` - Stop the daily dua post
• ` + "`/dailypost status`" + ` - Show the schedules configured for this workspace`
}
