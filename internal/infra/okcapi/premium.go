package okcapi

import (
	"context"
	"fmt"

	"okc_stats_sync/internal/domain/division"
)

// PremiumAPI wraps the monthly premium calculation endpoints.
type PremiumAPI struct {
	client *Client
}

func NewPremiumAPI(c *Client) *PremiumAPI {
	return &PremiumAPI{client: c}
}

// SpecPremiumRow is the validated premium payload for one specialist, as
// returned by the API. Period is the "dd.mm.yyyy" anchor the row belongs to.
type SpecPremiumRow struct {
	UserFullname string `json:"USER_FIO"`
	Period       string `json:"PERIOD"`
	TotalChats   *int64 `json:"TOTAL_CHATS"`
	TotalCalls   *int64 `json:"TOTAL_CALLS"`

	CSI                      float64  `json:"CSI"`
	CSINormative             *float64 `json:"CSI_NORMATIVE"`
	CSINormativeRate         *float64 `json:"NORM_CSI"`
	CSIPremium               int64    `json:"PERC_CSI"`
	CSIResponse              *float64 `json:"CSI_RESPONSE"`
	CSIResponseNormative     *float64 `json:"CSI_RESPONSE_NORMATIVE"`
	CSIResponseNormativeRate *float64 `json:"NORM_CSI_RESPONSE"`

	FLR              float64  `json:"FLR"`
	FLRNormative     *float64 `json:"FLR_NORMATIVE"`
	FLRNormativeRate *float64 `json:"NORM_FLR"`
	FLRPremium       int64    `json:"PERC_FLR"`

	GOK              float64  `json:"GOK"`
	GOKNormative     *float64 `json:"GOK_NORMATIVE"`
	GOKNormativeRate *float64 `json:"NORM_GOK"`
	GOKPremium       int64    `json:"PERC_GOK"`

	Target                    *float64 `json:"PERS_FACT"`
	TargetType                *string  `json:"PERS_TARGET_TYPE_NAME"`
	TargetNormativeFirst      *float64 `json:"PERS_PLAN_1"`
	TargetNormativeSecond     *float64 `json:"PERS_PLAN_2"`
	TargetNormativeRateFirst  *float64 `json:"PERS_RESULT_1"`
	TargetNormativeRateSecond *float64 `json:"PERS_RESULT_2"`
	TargetPremium             *int64   `json:"PERS_PERCENT"`
	PersTargetManual          *int64   `json:"PERS_TARGET_MANUAL"`

	DisciplinePremium int64   `json:"PERC_DISCIPLINE"`
	TestsPremium      int64   `json:"PERC_TESTING"`
	ThanksPremium     int64   `json:"PERC_THANKS"`
	TutorsPremium     float64 `json:"PERC_TUTORS"`

	HeadAdjustPremium *float64 `json:"HEAD_ADJUST"`
	TotalPremium      float64  `json:"TOTAL_PREMIUM"`
}

// TotalContacts returns the contact denominator, whichever of the chat or
// call counters the division reports.
func (r SpecPremiumRow) TotalContacts() int64 {
	n, _ := firstInt(r.TotalChats, r.TotalCalls)
	return n
}

// HeadPremiumRow is the validated premium payload for one manager.
type HeadPremiumRow struct {
	UserFullname string `json:"USER_FIO"`
	Period       string `json:"PERIOD"`

	FLR              float64  `json:"FLR"`
	FLRNormative     *float64 `json:"FLR_NORMATIVE"`
	FLRNormativeRate *float64 `json:"NORM_FLR"`
	FLRPremium       int64    `json:"PERC_FLR"`

	GOK              float64  `json:"GOK"`
	GOKNormative     *float64 `json:"GOK_NORMATIVE"`
	GOKNormativeRate *float64 `json:"NORM_GOK"`
	GOKPremium       int64    `json:"PERC_GOK"`

	Target                    *float64 `json:"PERS_FACT"`
	TargetType                *string  `json:"PERS_TARGET_TYPE_NAME"`
	TargetNormativeFirst      *float64 `json:"PERS_PLAN_1"`
	TargetNormativeSecond     *float64 `json:"PERS_PLAN_2"`
	TargetNormativeRateFirst  *float64 `json:"PERS_RESULT_1"`
	TargetNormativeRateSecond *float64 `json:"PERS_RESULT_2"`
	TargetPremium             *int64   `json:"PERS_PERCENT"`
	PersTargetManual          *int64   `json:"PERS_TARGET_MANUAL"`

	SL                    float64  `json:"SL"`
	SLNormativeFirst      *float64 `json:"SL_PLAN_1"`
	SLNormativeSecond     *float64 `json:"SL_PLAN_2"`
	SLNormativeRateFirst  *float64 `json:"SL_RESULT_1"`
	SLNormativeRateSecond *float64 `json:"SL_RESULT_2"`
	SLPremium             int64    `json:"PERC_SL"`

	HeadAdjustPremium *float64 `json:"HEAD_ADJUST"`
	TotalPremium      float64  `json:"TOTAL_PREMIUM"`
}

// SpecialistPremium fetches the premium calculation for every specialist in
// the division for the given "dd.mm.yyyy" period.
func (a *PremiumAPI) SpecialistPremium(ctx context.Context, period string, div division.Division) ([]SpecPremiumRow, error) {
	slug, err := divisionSlug(div)
	if err != nil {
		return nil, err
	}

	var rows []SpecPremiumRow
	err = a.client.postJSON(ctx, fmt.Sprintf("premium/%s/get-premium-spec-month", slug), map[string]any{
		"period":        period,
		"subdivisionId": []int{},
		"headsId":       []int{},
		"employeesId":   []int{},
	}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// HeadPremium fetches the premium calculation for the division's managers
// for the given "dd.mm.yyyy" period.
func (a *PremiumAPI) HeadPremium(ctx context.Context, period string, div division.Division) ([]HeadPremiumRow, error) {
	slug, err := divisionSlug(div)
	if err != nil {
		return nil, err
	}

	// Head responses wrap the rows in a "premium" envelope.
	var resp struct {
		Premium []HeadPremiumRow `json:"premium"`
	}
	err = a.client.postJSON(ctx, fmt.Sprintf("premium/%s/get-premium-head-month", slug), map[string]any{
		"period": period,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Premium, nil
}
