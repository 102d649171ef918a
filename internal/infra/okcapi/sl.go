package okcapi

import "context"

// slServiceURL is the path prefix of the service-level report endpoints.
const slServiceURL = "genesys/ntp"

// SLAPI wraps the service-level report endpoints.
type SLAPI struct {
	client *Client
}

func NewSLAPI(c *Client) *SLAPI {
	return &SLAPI{client: c}
}

// VQChatFilter is the virtual-queue filter tree for the chat channels.
type VQChatFilter struct {
	NTPNCK struct {
		Title  string `json:"title"`
		UnitID int    `json:"unitId"`
		Queues []struct {
			Title  string   `json:"title"`
			VQList []string `json:"vqList"`
		} `json:"queues"`
	} `json:"ntp_nck"`
}

// ChatQueues flattens the filter tree into the queue id list the SL report
// expects.
func (f *VQChatFilter) ChatQueues() []string {
	var queues []string
	for _, q := range f.NTPNCK.Queues {
		queues = append(queues, q.VQList...)
	}
	return queues
}

// SLRow is one half-hour bucket of the detailed service-level report.
type SLRow struct {
	HalfHourText       string   `json:"HALF_HOUR_TEXT"`
	TotalEntered       int64    `json:"TOTAL_ENTERED"`
	TotalAnswered      int64    `json:"TOTAL_ANSWERED"`
	TotalAbandoned     int64    `json:"TOTAL_ABANDONED"`
	TotalToNCKTech     int64    `json:"TOTAL_TO_NCK_TECH"`
	AverageReleaseTime *int64   `json:"AVERAGE_RELEASE_TIME"`
	AverageAnswerTime  *int64   `json:"AVERAGE_ANSWER_TIME"`
	SL                 *float64 `json:"SL"`
}

// SLReport is the service-level report envelope: summary figures plus the
// half-hour detail rows.
type SLReport struct {
	TotalData []struct {
		Text  string  `json:"text"`
		Value float64 `json:"value"`
	} `json:"totalData"`
	DetailData struct {
		Headers []struct {
			Title string `json:"title"`
			Key   string `json:"key"`
		} `json:"headers"`
		Data []SLRow `json:"data"`
	} `json:"detailData"`
}

// ChatVQFilter fetches the virtual-queue filter used to scope SL requests.
func (a *SLAPI) ChatVQFilter(ctx context.Context) (*VQChatFilter, error) {
	var filter VQChatFilter
	if err := a.client.postJSON(ctx, slServiceURL+"/get-vq-chat-filter", map[string]any{}, &filter); err != nil {
		return nil, err
	}
	return &filter, nil
}

// SL fetches the service-level report for the "dd.mm.yyyy" date window,
// scoped to the given units and virtual queues.
func (a *SLAPI) SL(ctx context.Context, startDate, stopDate string, units []int, queues []string) (*SLReport, error) {
	var report SLReport
	err := a.client.postJSON(ctx, slServiceURL+"/get-chat-sl-report", map[string]any{
		"startDate": startDate,
		"stopDate":  stopDate,
		"units":     units,
		"queues":    queues,
	}, &report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}
