package okcapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Client{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
		log:        logrus.NewEntry(l),
	}
}

func TestChatVQFilterFlattensQueueTree(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/genesys/ntp/get-vq-chat-filter", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"ntp_nck": {
				"title": "НТП/НЦК",
				"unitId": 7,
				"queues": [
					{"title": "Web", "vqList": ["vq_chat_web_1", "vq_chat_web_2"]},
					{"title": "Mobile", "vqList": ["vq_chat_mobile_1"]}
				]
			}
		}`))
	})

	api := NewSLAPI(testClient(t, mux))
	filter, err := api.ChatVQFilter(context.Background())
	require.NoError(t, err)

	require.Equal(t, 7, filter.NTPNCK.UnitID)
	require.Equal(t,
		[]string{"vq_chat_web_1", "vq_chat_web_2", "vq_chat_mobile_1"},
		filter.ChatQueues(),
	)
}

func TestSLDecodesDetailRows(t *testing.T) {
	var gotPayload map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/genesys/ntp/get-chat-sl-report", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_, _ = w.Write([]byte(`{
			"totalData": [{"text": "SL", "value": 0.93}],
			"detailData": {
				"headers": [{"title": "Период", "key": "HALF_HOUR_TEXT"}],
				"data": [{
					"HALF_HOUR_TEXT": "10:00 - 10:30",
					"TOTAL_ENTERED": 42,
					"TOTAL_ANSWERED": 40,
					"TOTAL_ABANDONED": 2,
					"TOTAL_TO_NCK_TECH": 1,
					"AVERAGE_RELEASE_TIME": 210,
					"AVERAGE_ANSWER_TIME": 12,
					"SL": 0.93
				}, {
					"HALF_HOUR_TEXT": "10:30 - 11:00",
					"TOTAL_ENTERED": 0,
					"TOTAL_ANSWERED": 0,
					"TOTAL_ABANDONED": 0,
					"TOTAL_TO_NCK_TECH": 0,
					"AVERAGE_RELEASE_TIME": null,
					"AVERAGE_ANSWER_TIME": null,
					"SL": null
				}]
			}
		}`))
	})

	api := NewSLAPI(testClient(t, mux))
	report, err := api.SL(context.Background(), "09.12.2025", "10.12.2025", []int{7}, []string{"vq_chat_web_1"})
	require.NoError(t, err)

	require.Equal(t, "09.12.2025", gotPayload["startDate"])
	require.Equal(t, "10.12.2025", gotPayload["stopDate"])
	require.Equal(t, []any{float64(7)}, gotPayload["units"])
	require.Equal(t, []any{"vq_chat_web_1"}, gotPayload["queues"])

	require.Len(t, report.TotalData, 1)
	require.Equal(t, 0.93, report.TotalData[0].Value)

	require.Len(t, report.DetailData.Data, 2)
	row := report.DetailData.Data[0]
	require.Equal(t, "10:00 - 10:30", row.HalfHourText)
	require.Equal(t, int64(42), row.TotalEntered)
	require.Equal(t, int64(40), row.TotalAnswered)
	require.Equal(t, int64(2), row.TotalAbandoned)
	require.Equal(t, int64(1), row.TotalToNCKTech)
	require.NotNil(t, row.AverageReleaseTime)
	require.Equal(t, int64(210), *row.AverageReleaseTime)
	require.NotNil(t, row.AverageAnswerTime)
	require.Equal(t, int64(12), *row.AverageAnswerTime)
	require.NotNil(t, row.SL)
	require.Equal(t, 0.93, *row.SL)

	empty := report.DetailData.Data[1]
	require.Nil(t, empty.AverageReleaseTime)
	require.Nil(t, empty.AverageAnswerTime)
	require.Nil(t, empty.SL)
}
