package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "Should parse a schedule command with args",
			text:     "schedule dua <#C123|general> 2:04 pm",
			wantType: CmdSchedule,
			wantArgs: []string{"dua", "<#C123|general>", "2:04", "pm"},
		},
		{
			name:     "Should accept set as a schedule alias",
			text:     "set hadith <#C123|general> 14:00",
			wantType: CmdSchedule,
			wantArgs: []string{"hadith", "<#C123|general>", "14:00"},
		},
		{
			name:     "Should parse a stop command",
			text:     "stop dua",
			wantType: CmdStop,
			wantArgs: []string{"dua"},
		},
		{
			name:     "Should accept cancel as a stop alias",
			text:     "cancel hadith",
			wantType: CmdStop,
			wantArgs: []string{"hadith"},
		},
		{
			name:     "Should parse a status command",
			text:     "status",
			wantType: CmdStatus,
		},
		{
			name:     "Should parse a help command",
			text:     "help",
			wantType: CmdHelp,
		},
		{
			name:     "Should default to help on empty text",
			text:     "   ",
			wantType: CmdHelp,
		},
		{
			name:    "Should reject an unknown command",
			text:    "frobnicate",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()

	assert.Contains(t, help, "/dailypost schedule dua")
	assert.Contains(t, help, "/dailypost stop dua")
	assert.Contains(t, help, "/dailypost status")
}
