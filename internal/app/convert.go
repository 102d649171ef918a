package app

import (
	"database/sql"
	"fmt"
	"time"

	"okc_stats_sync/internal/domain/premium"
	"okc_stats_sync/internal/infra/okcapi"
)

// periodLayout is the "dd.mm.yyyy" calendar anchor format used by the
// reporting API.
const periodLayout = "02.01.2006"

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

// specialistRowFromAPI converts one API premium row into its storage row.
// A malformed period is a hard failure: the row cannot be anchored to a
// month, so the whole cycle escalates rather than writing a bad snapshot.
func specialistRowFromAPI(r okcapi.SpecPremiumRow) (*premium.SpecialistRow, error) {
	extracted, err := time.Parse(periodLayout, r.Period)
	if err != nil {
		return nil, fmt.Errorf("error parsing premium period %q: %w", r.Period, err)
	}

	return &premium.SpecialistRow{
		Fullname:      r.UserFullname,
		ContactsCount: r.TotalContacts(),

		CSI:                      r.CSI,
		CSINormative:             nullFloat(r.CSINormative),
		CSINormativeRate:         nullFloat(r.CSINormativeRate),
		CSIPremium:               r.CSIPremium,
		CSIResponse:              nullFloat(r.CSIResponse),
		CSIResponseNormative:     nullFloat(r.CSIResponseNormative),
		CSIResponseNormativeRate: nullFloat(r.CSIResponseNormativeRate),

		FLR:              r.FLR,
		FLRNormative:     nullFloat(r.FLRNormative),
		FLRNormativeRate: nullFloat(r.FLRNormativeRate),
		FLRPremium:       r.FLRPremium,

		GOK:              r.GOK,
		GOKNormative:     nullFloat(r.GOKNormative),
		GOKNormativeRate: nullFloat(r.GOKNormativeRate),
		GOKPremium:       r.GOKPremium,

		Target:                    nullFloat(r.Target),
		TargetType:                nullString(r.TargetType),
		TargetNormativeFirst:      nullFloat(r.TargetNormativeFirst),
		TargetNormativeSecond:     nullFloat(r.TargetNormativeSecond),
		TargetNormativeRateFirst:  nullFloat(r.TargetNormativeRateFirst),
		TargetNormativeRateSecond: nullFloat(r.TargetNormativeRateSecond),
		TargetPremium:             nullInt(r.TargetPremium),
		PersTargetManual:          nullInt(r.PersTargetManual),

		DisciplinePremium: r.DisciplinePremium,
		TestsPremium:      r.TestsPremium,
		ThanksPremium:     r.ThanksPremium,
		TutorsPremium:     r.TutorsPremium,

		HeadAdjustPremium: nullFloat(r.HeadAdjustPremium),
		TotalPremium:      r.TotalPremium,

		ExtractionPeriod: extracted,
	}, nil
}

// headRowFromAPI converts one API head premium row into its storage row.
func headRowFromAPI(r okcapi.HeadPremiumRow) (*premium.HeadRow, error) {
	extracted, err := time.Parse(periodLayout, r.Period)
	if err != nil {
		return nil, fmt.Errorf("error parsing head premium period %q: %w", r.Period, err)
	}

	return &premium.HeadRow{
		Fullname: r.UserFullname,

		FLR:              r.FLR,
		FLRNormative:     nullFloat(r.FLRNormative),
		FLRNormativeRate: nullFloat(r.FLRNormativeRate),
		FLRPremium:       r.FLRPremium,

		GOK:              r.GOK,
		GOKNormative:     nullFloat(r.GOKNormative),
		GOKNormativeRate: nullFloat(r.GOKNormativeRate),
		GOKPremium:       r.GOKPremium,

		Target:                    nullFloat(r.Target),
		TargetType:                nullString(r.TargetType),
		TargetNormativeFirst:      nullFloat(r.TargetNormativeFirst),
		TargetNormativeSecond:     nullFloat(r.TargetNormativeSecond),
		TargetNormativeRateFirst:  nullFloat(r.TargetNormativeRateFirst),
		TargetNormativeRateSecond: nullFloat(r.TargetNormativeRateSecond),
		TargetPremium:             nullInt(r.TargetPremium),
		PersTargetManual:          nullInt(r.PersTargetManual),

		SL:                    r.SL,
		SLNormativeFirst:      nullFloat(r.SLNormativeFirst),
		SLNormativeSecond:     nullFloat(r.SLNormativeSecond),
		SLNormativeRateFirst:  nullFloat(r.SLNormativeRateFirst),
		SLNormativeRateSecond: nullFloat(r.SLNormativeRateSecond),
		SLPremium:             r.SLPremium,

		HeadAdjustPremium: nullFloat(r.HeadAdjustPremium),
		TotalPremium:      r.TotalPremium,

		ExtractionPeriod: extracted,
	}, nil
}
