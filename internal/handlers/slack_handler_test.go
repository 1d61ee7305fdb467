package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qattan/daily-post-bot/internal/domain"
	"github.com/qattan/daily-post-bot/internal/domain/entity"
	"github.com/qattan/daily-post-bot/internal/handlers/test"
)

const testSigningSecret = "test-signing-secret"

func TestSlackHandler_HandleSlashCommand_Schedule(t *testing.T) {
	type args struct {
		command   string
		text      string
		channelID string
		teamID    string
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should schedule a daily dua successfully",
			args: args{
				command:   "/dailypost",
				text:      "schedule dua <#C123456789|general> 2:04 pm",
				channelID: "C987654321",
				teamID:    "T123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.DailyPostServiceMock.EXPECT().
					Schedule(args.teamID, "dua", "C123456789", "2:04 pm", false).
					Return(&entity.ScheduleResult{
						ChannelID:    "C123456789",
						DailyTime:    "14:04",
						MinutesUntil: 125,
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "every day at 14:04 UTC")
				assert.Contains(t, response.Text, "Next post in 2h 5m.")
			},
		},
		{
			name: "Should schedule an Arabic hadith",
			args: args{
				command:   "/dailypost",
				text:      "schedule hadith <#C123456789|general> 14:00 arabic",
				channelID: "C987654321",
				teamID:    "T123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.DailyPostServiceMock.EXPECT().
					Schedule(args.teamID, "hadith", "C123456789", "14:00", true).
					Return(&entity.ScheduleResult{
						ChannelID: "C123456789",
						DailyTime: "14:00",
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Contains(t, response.Text, "The first post will be sent soon")
			},
		},
		{
			name: "Should report an invalid time format",
			args: args{
				command:   "/dailypost",
				text:      "schedule dua <#C123456789|general> 25:99",
				channelID: "C987654321",
				teamID:    "T123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.DailyPostServiceMock.EXPECT().
					Schedule(args.teamID, "dua", "C123456789", "25:99", false).
					Return(nil, fmt.Errorf("%w: %q", domain.ErrUnparsableTime, "25:99")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Invalid time format")
			},
		},
		{
			name: "Should report an inaccessible channel",
			args: args{
				command:   "/dailypost",
				text:      "schedule dua <#C123456789|general> 2pm",
				channelID: "C987654321",
				teamID:    "T123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.DailyPostServiceMock.EXPECT().
					Schedule(args.teamID, "dua", "C123456789", "2pm", false).
					Return(nil, fmt.Errorf("%w: C123456789", domain.ErrChannelNotFound)).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Contains(t, response.Text, "invite the bot to the channel")
			},
		},
		{
			name: "Should require a channel mention",
			args: args{
				command:   "/dailypost",
				text:      "schedule dua somewhere 2pm",
				channelID: "C987654321",
				teamID:    "T123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				var response slack.Msg
				err := json.Unmarshal(resp.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Contains(t, response.Text, "mention the destination channel")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m, tt.args)

			req := test.CreateSlackRequest(t, tt.args.command, tt.args.text,
				tt.args.channelID, "test-channel", "U123456789", tt.args.teamID, testSigningSecret)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)
			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Stop(t *testing.T) {
	t.Run("Should stop an existing schedule", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		m.DailyPostServiceMock.EXPECT().
			Stop("T123456789", "dua").
			Return(true, nil).Times(1)

		req := test.CreateSlackRequest(t, "/dailypost", "stop dua",
			"C987654321", "test-channel", "U123456789", "T123456789", testSigningSecret)
		resp := test.CreateTestRecorder()

		handler.HandleSlashCommand(resp, req)

		var response slack.Msg
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
		assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
		assert.Contains(t, response.Text, "Successfully canceled the daily dua post schedule.")
	})

	t.Run("Should report when nothing was scheduled", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		m.DailyPostServiceMock.EXPECT().
			Stop("T123456789", "hadith").
			Return(false, nil).Times(1)

		req := test.CreateSlackRequest(t, "/dailypost", "stop hadith",
			"C987654321", "test-channel", "U123456789", "T123456789", testSigningSecret)
		resp := test.CreateTestRecorder()

		handler.HandleSlashCommand(resp, req)

		var response slack.Msg
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
		assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
		assert.Contains(t, response.Text, "No daily hadith post was scheduled.")
	})

	t.Run("Should surface storage failures to the requester", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		m.DailyPostServiceMock.EXPECT().
			Stop("T123456789", "dua").
			Return(true, errors.New("database is locked")).Times(1)

		req := test.CreateSlackRequest(t, "/dailypost", "stop dua",
			"C987654321", "test-channel", "U123456789", "T123456789", testSigningSecret)
		resp := test.CreateTestRecorder()

		handler.HandleSlashCommand(resp, req)

		var response slack.Msg
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
		assert.Contains(t, response.Text, "Failed to cancel the schedule")
	})
}

func TestSlackHandler_HandleSlashCommand_Status(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	m.DailyPostServiceMock.EXPECT().
		Status("T123456789").
		Return([]entity.DailyPost{
			{ServerID: "T123456789", PostType: "dua", ChannelID: "C123456789", DailyTime: "09:00", LastSendDate: "2024-01-01"},
			{ServerID: "T123456789", PostType: "hadith", ChannelID: "C123456789", DailyTime: "14:00", LastSendDate: domain.NeverSent, UseArabic: true},
		}).Times(1)

	req := test.CreateSlackRequest(t, "/dailypost", "status",
		"C987654321", "test-channel", "U123456789", "T123456789", testSigningSecret)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	var response slack.Msg
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Contains(t, response.Text, "dua in <#C123456789> at 09:00 UTC, last sent 2024-01-01")
	assert.Contains(t, response.Text, "hadith in <#C123456789> at 14:00 UTC (Arabic)")
}

func TestSlackHandler_HandleSlashCommand_Help(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/dailypost", "help",
		"C987654321", "test-channel", "U123456789", "T123456789", testSigningSecret)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	var response slack.Msg
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Contains(t, response.Text, "Available commands")
}

func TestSlackHandler_HandleSlashCommand_BadSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/dailypost", "status",
		"C987654321", "test-channel", "U123456789", "T123456789", "wrong-secret")
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
