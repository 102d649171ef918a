package premium

import (
	"database/sql"
	"time"
)

// SpecialistRow is one employee row in the spec_premium snapshot table.
// It is derived 1:1 from a reporting API premium row plus the parsed
// extraction period.
type SpecialistRow struct {
	Fullname      string
	ContactsCount int64

	CSI                      float64
	CSINormative             sql.NullFloat64
	CSINormativeRate         sql.NullFloat64
	CSIPremium               int64
	CSIResponse              sql.NullFloat64
	CSIResponseNormative     sql.NullFloat64
	CSIResponseNormativeRate sql.NullFloat64

	FLR              float64
	FLRNormative     sql.NullFloat64
	FLRNormativeRate sql.NullFloat64
	FLRPremium       int64

	GOK              float64
	GOKNormative     sql.NullFloat64
	GOKNormativeRate sql.NullFloat64
	GOKPremium       int64

	Target                    sql.NullFloat64
	TargetType                sql.NullString
	TargetNormativeFirst      sql.NullFloat64
	TargetNormativeSecond     sql.NullFloat64
	TargetNormativeRateFirst  sql.NullFloat64
	TargetNormativeRateSecond sql.NullFloat64
	TargetPremium             sql.NullInt64
	PersTargetManual          sql.NullInt64

	DisciplinePremium int64
	TestsPremium      int64
	ThanksPremium     int64
	TutorsPremium     float64

	HeadAdjustPremium sql.NullFloat64
	TotalPremium      float64

	ExtractionPeriod time.Time
}

// HeadRow is one manager row in the head_premium snapshot table.
type HeadRow struct {
	Fullname string

	FLR              float64
	FLRNormative     sql.NullFloat64
	FLRNormativeRate sql.NullFloat64
	FLRPremium       int64

	GOK              float64
	GOKNormative     sql.NullFloat64
	GOKNormativeRate sql.NullFloat64
	GOKPremium       int64

	Target                    sql.NullFloat64
	TargetType                sql.NullString
	TargetNormativeFirst      sql.NullFloat64
	TargetNormativeSecond     sql.NullFloat64
	TargetNormativeRateFirst  sql.NullFloat64
	TargetNormativeRateSecond sql.NullFloat64
	TargetPremium             sql.NullInt64
	PersTargetManual          sql.NullInt64

	SL                    float64
	SLNormativeFirst      sql.NullFloat64
	SLNormativeSecond     sql.NullFloat64
	SLNormativeRateFirst  sql.NullFloat64
	SLNormativeRateSecond sql.NullFloat64
	SLPremium             int64

	HeadAdjustPremium sql.NullFloat64
	TotalPremium      float64

	ExtractionPeriod time.Time
}
